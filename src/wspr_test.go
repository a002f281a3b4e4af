package wspr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func messageFromDigits(t *testing.T, digits string) Message {
	t.Helper()

	require.Len(t, digits, SYMBOL_COUNT)

	var m Message
	for i := range m {
		m[i] = digits[i] - '0'
	}

	return m
}

// Reference sequences.  K1ABC FN42 37 is the worked example in G4JNT's
// "The WSPR Coding Process"; the others come from K6HX's genwspr.c.
var goldenMessages = []struct {
	callsign string
	grid     string
	power    int
	fields   Fields
	symbols  string
}{
	{
		"K1ABC", "FN42", 37,
		Fields{259047992, 22632, 101},
		"330020001020131222100323133220200032012322002232110233210221321222033030301210212032132003323032203020201023021112330231212221332000010320132222202332323320031222",
	},
	{
		"K6HX", "CN85", 30,
		Fields{259152128, 27315, 94},
		"332200221000313022320103113200200030210120022212132211230003323020231230301232032030330201101212223220001021003110312231012023112200032320330002202110323300213220",
	},
	{
		"AB1CDE", "FN42", 37,
		Fields{73045156, 22632, 101},
		"110000003220113202302303333200202232030300202232132233210201321222233010303230010032312001121032223022003223223110332211012221130220010302330022220330121100233202",
	},
	{
		"G4JNT", "IO90", 30,
		Fields{258326623, 16340, 94},
		"332200001222333022100121133220200030012100002012112033030201121020213010301012032010110221123012223200023201001112112031230003312222012120310022222130121320031222",
	},
}

func TestEncodeGolden(t *testing.T) {
	for _, g := range goldenMessages {
		t.Run(g.callsign, func(t *testing.T) {
			var f, err = Pack(g.callsign, g.grid, g.power)
			require.NoError(t, err)
			assert.Equal(t, g.fields, f)

			var msg, encErr = Encode(g.callsign, g.grid, g.power)
			require.NoError(t, encErr)
			assert.Equal(t, messageFromDigits(t, g.symbols), msg)
		})
	}
}

func TestEncodeTrailingBlankAndCase(t *testing.T) {
	var want, err = Encode("K6HX", "CN85", 30)
	require.NoError(t, err)

	var got, err2 = Encode("k6hx ", "cn85", 30)
	require.NoError(t, err2)

	assert.Equal(t, want, got)
}

func TestEncodeAllZeroFieldsIsSyncVector(t *testing.T) {
	var msg Message

	require.NoError(t, EncodeFields(&msg, Fields{}))

	var sync = SyncVector()
	for i := range msg {
		assert.Equal(t, sync[i], msg[i], "symbol %d", i)
	}
}

func TestEncodeErrors(t *testing.T) {
	var tests = []struct {
		name     string
		callsign string
		grid     string
		power    int
		want     error
	}{
		{"no digit", "1234", "FN42", 37, ErrInvalidCallsign},
		{"letters only", "ABCD", "FN42", 37, ErrInvalidCallsign},
		{"non-ASCII letter", "K1ıBC", "FN42", 37, ErrInvalidCallsign},
		{"non-ASCII grid", "K1ABC", "ıA0", 37, ErrInvalidGrid},
		{"bad grid letter", "K1ABC", "SN42", 37, ErrInvalidGrid},
		{"six character grid", "K1ABC", "FN42MA", 37, ErrInvalidGrid},
		{"power too high", "K1ABC", "FN42", 64, ErrInvalidPower},
		{"power too low", "K1ABC", "FN42", -65, ErrInvalidPower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg, err = Encode(tt.callsign, tt.grid, tt.power)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, Message{}, msg)
		})
	}
}

func TestEncodeIntoLeavesBufferOnError(t *testing.T) {
	var msg Message
	require.NoError(t, EncodeInto(&msg, "K1ABC", "FN42", 37))

	var before = msg

	require.ErrorIs(t, EncodeInto(&msg, "1234", "FN42", 37), ErrInvalidCallsign)
	assert.Equal(t, before, msg)
}

func TestEncodeIntoReusedBuffer(t *testing.T) {
	var msg Message

	require.NoError(t, EncodeInto(&msg, "K6HX", "CN85", 30))
	assert.Equal(t, messageFromDigits(t, goldenMessages[1].symbols), msg)

	// Nothing from the first message may survive into the second.
	require.NoError(t, EncodeInto(&msg, "K1ABC", "FN42", 37))
	assert.Equal(t, messageFromDigits(t, goldenMessages[0].symbols), msg)
}

func TestEncodeFieldsOverflow(t *testing.T) {
	var msg Message

	assert.ErrorIs(t, EncodeFields(&msg, Fields{Callsign: 1 << CALLSIGN_BITS}), ErrFieldOverflow)
	assert.ErrorIs(t, EncodeFields(&msg, Fields{Grid: 1 << GRID_BITS}), ErrFieldOverflow)
	assert.ErrorIs(t, EncodeFields(&msg, Fields{Power: 1 << POWER_BITS}), ErrFieldOverflow)
	assert.Equal(t, Message{}, msg)
}

func genFields(t *rapid.T) Fields {
	return Fields{
		Callsign: rapid.Uint32Range(0, 1<<CALLSIGN_BITS-1).Draw(t, "callsign"),
		Grid:     rapid.Uint32Range(0, 1<<GRID_BITS-1).Draw(t, "grid"),
		Power:    rapid.Uint32Range(0, 1<<POWER_BITS-1).Draw(t, "power"),
	}
}

func TestEncodeFieldsProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var f = genFields(t)

		var a, b Message
		require.NoError(t, EncodeFields(&a, f))
		require.NoError(t, EncodeFields(&b, f))

		assert.Equal(t, a, b, "encoding is deterministic")
		assert.Len(t, a, SYMBOL_COUNT)

		for i, s := range a {
			assert.LessOrEqual(t, s, byte(3), "symbol %d out of range", i)
			assert.Equal(t, syncVector[i], s&1, "sync bit of symbol %d", i)
		}
	})
}

func TestEncodeConcurrent(t *testing.T) {
	var want = messageFromDigits(t, goldenMessages[0].symbols)

	var done = make(chan Message)
	for range 8 {
		go func() {
			var msg, _ = Encode("K1ABC", "FN42", 37)
			done <- msg
		}()
	}

	for range 8 {
		assert.Equal(t, want, <-done)
	}
}
