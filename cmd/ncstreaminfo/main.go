// Command ncstreaminfo inspects ncStream frames on disk and reports a
// structural health summary: node counts by kind, dimension kinds, and
// dimension resolution status. It is a diagnostic
// tool, not a pretty-printer — it never reproduces the decoded data
// itself.
package main

import (
	"fmt"
	"os"

	"github.com/kungfusheep/ncstream/cmd/ncstreaminfo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
