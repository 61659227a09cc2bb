//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var (
	component = flag.String("component", "all", "component to generate")
)

// main emits the decode kernel so go:generate stays simple.
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/Akron/streamvbyte")
	ConstraintExpr("amd64")
	ConstraintExpr("!purego")

	if comp == "decode" || comp == "all" {
		genDecodeQuadKernel()
	}

	Generate()
}
