// Command tickenc encodes, decodes and validates TickEncoded text.
//
// Usage:
//
//	tickenc encode ./blob.bin
//	echo -n AAH_ | tickenc decode --hex
//	tickenc schema
//	tickenc validate ./document.yaml --schema ./document.schema.json
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
