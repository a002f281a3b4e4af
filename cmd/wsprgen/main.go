package main

import (
	wspr "github.com/doismellburning/wsprgen/src"
)

/*-------------------------------------------------------------------
 *
 * Name:        main
 *
 * Purpose:     Print the tone sequence for a WSPR Type 1 beacon.
 *
 *--------------------------------------------------------------------*/

func main() {
	wspr.WsprGenMain()
}
