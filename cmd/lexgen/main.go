// Command lexgen is the CLI entrypoint: a thin wrapper around package
// cliapp, mirroring teacher's own thin root nex.go calling into package
// nex.
package main

import (
	"os"

	"lexgen/internal/cliapp"
)

func main() {
	os.Exit(cliapp.Execute())
}
