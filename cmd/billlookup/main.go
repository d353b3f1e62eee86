// Command billlookup looks up and prints the bill of a purchase transaction
// from the command line.
//
// Usage:
//
//	billlookup lookup T100
//	billlookup --config ./billlookup.yaml print T100
//	billlookup version
package main

import (
	"os"

	"billlookup/cmd/billlookup/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
