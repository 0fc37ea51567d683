// Command graphseq sequences a dependency graph with priority groups.
//
// The input is a YAML or JSON document:
//
//	graph:
//	  app:  [http, db]
//	  http: [log]
//	  db:   [log]
//	  log:  []
//	groups:
//	  - [log]
//	  - [app, http, db]
//
// Usage:
//
//	graphseq deps.yaml
//	graphseq --format json < deps.json
//	graphseq --strict --simple-cycles deps.yaml
//
// Exit status is 0 on success, 1 for unreadable or invalid input, and 2 when
// --strict is set and the ordering is unsafe.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphseq:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, errUnsafeOrder) {
		return 2
	}
	return 1
}
