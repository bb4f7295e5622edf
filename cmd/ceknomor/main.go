// Package main provides the ceknomor command line client.
//
// Usage:
//
//	ceknomor scan 0812-3456-7890
//	ceknomor history --format markdown
//
// See --help for all available options.
package main

import (
	_ "time/tzdata"
)

func main() {
	Execute()
}
