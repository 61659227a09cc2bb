// Command gentable derives the Stream VByte decode tables and prints them as
// a Go source file to stdout.
//
// It is the definition of tables.go: both the length table (total
// data-stream bytes per control byte) and the SSSE3 shuffle-mask table
// (source byte index per output byte, with the high bit set standing in for
// "write zero") are pure functions of the control byte, so this program must
// produce byte-for-byte identical output on every host.
//
//	go run ./internal/gentable > tables.go
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w *os.File) error {
	fmt.Fprintln(w, "// Code generated by internal/gentable; DO NOT EDIT.")
	fmt.Fprintln(w, "//")
	fmt.Fprintln(w, "// Regenerate with: go run ./internal/gentable > tables.go")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package streamvbyte")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// decodeLengthTable[ctrl] is the total number of data-stream bytes consumed")
	fmt.Fprintln(w, "// by a quad whose control byte is ctrl: the sum of its four (length) fields,")
	fmt.Fprintln(w, "// ranging from 4 (all 1-byte values) to 16 (all 4-byte values).")
	fmt.Fprintln(w, "var decodeLengthTable = [256]uint8{")
	for ctrl := 0; ctrl < 256; ctrl++ {
		l0, l1, l2, l3 := lengthsForControlByte(byte(ctrl))
		fmt.Fprintf(w, "\t%d, // 0x%02X: lengths %d,%d,%d,%d\n", l0+l1+l2+l3, ctrl, l0, l1, l2, l3)
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// decodeShuffleTable[ctrl] gives, for each of the 16 output bytes of a")
	fmt.Fprintln(w, "// decoded quad, the source index to pull from a 16-byte payload window. A")
	fmt.Fprintln(w, "// source index with the high bit set (0x80) means \"write zero\" rather than")
	fmt.Fprintln(w, "// reading payload: the SSSE3 PSHUFB instruction treats any index >= 0x80 that")
	fmt.Fprintln(w, "// way.")
	fmt.Fprintln(w, "var decodeShuffleTable = [256][16]uint8{")
	for ctrl := 0; ctrl < 256; ctrl++ {
		l0, l1, l2, l3 := lengthsForControlByte(byte(ctrl))
		row := shuffleRow(l0, l1, l2, l3)
		fmt.Fprintf(w, "\t{")
		for i, b := range row {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "0x%02X", b)
		}
		fmt.Fprintf(w, "}, // 0x%02X: lengths %d,%d,%d,%d\n", ctrl, l0, l1, l2, l3)
	}
	fmt.Fprintln(w, "}")
	return nil
}

// lengthsForControlByte decodes the four 2-bit length codes of ctrl, low
// field first, into byte lengths in [1,4].
func lengthsForControlByte(ctrl byte) (l0, l1, l2, l3 int) {
	l0 = int(ctrl&0x03) + 1
	l1 = int((ctrl>>2)&0x03) + 1
	l2 = int((ctrl>>4)&0x03) + 1
	l3 = int((ctrl>>6)&0x03) + 1
	return
}

// shuffleRow builds the 16-byte PSHUFB mask for one control byte's four
// decoded lengths: each decoded u32 pulls its low `length` bytes from the
// running payload offset and gets its remaining high bytes zeroed.
func shuffleRow(l0, l1, l2, l3 int) [16]byte {
	lens := [4]int{l0, l1, l2, l3}
	var row [16]byte
	off := 0
	start := 0
	for i, length := range lens {
		for j := 0; j < 4; j++ {
			if j < length {
				row[start+j] = byte(off + j)
			} else {
				row[start+j] = 0x80
			}
		}
		off += length
		start += 4
		_ = i
	}
	return row
}
