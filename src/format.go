package wspr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Format selects how a Message is rendered as text.
type Format int

const (
	FORMAT_ROWS    Format = iota // 9 lines of 18, space separated
	FORMAT_LIST                  // "n," tokens wrapped at 72 columns
	FORMAT_COMPACT               // 162 digits, no separators
)

const LIST_WIDTH = 72

var formatNames = map[string]Format{
	"rows":    FORMAT_ROWS,
	"list":    FORMAT_LIST,
	"compact": FORMAT_COMPACT,
}

func ParseFormat(s string) (Format, error) {
	var f, ok = formatNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown output format %q, expected rows, list or compact", s)
	}

	return f, nil
}

func (f Format) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}

	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Render returns the message in the given format, ending with a newline.
func (m *Message) Render(f Format) string {
	switch f {
	case FORMAT_LIST:
		return m.List()
	case FORMAT_COMPACT:
		return m.Compact()
	default:
		return m.Rows()
	}
}

// Rows is the traditional layout consumed by signal generators.
func (m *Message) Rows() string {
	var sb strings.Builder

	for row := range SYMBOL_ROWS {
		for j := range SYMBOLS_PER_ROW {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + m[row*SYMBOLS_PER_ROW+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// List renders "3, 3, 0, ..." wrapped for pasting into C or Python source.
func (m *Message) List() string {
	var tokens = make([]string, len(m))
	for i, s := range m {
		tokens[i] = strconv.Itoa(int(s)) + ","
	}

	var wrapped = ansi.Wordwrap(strings.Join(tokens, " "), LIST_WIDTH, "")

	var sb strings.Builder
	for line := range strings.SplitSeq(wrapped, "\n") {
		sb.WriteString(strings.TrimSpace(line))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (m *Message) Compact() string {
	var b = make([]byte, 0, len(m)+1)
	for _, s := range m {
		b = append(b, '0'+s)
	}

	return string(append(b, '\n'))
}
