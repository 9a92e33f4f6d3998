// Package main provides the CLI entrypoint for attrcodec.
//
// attrcodec converts span attribute documents between their flat, dotted
// form and nested trees:
//   - unflatten: rebuild the nested tree from flat attributes
//   - flatten: turn a nested tree into flat attributes
//   - get: look up a single value by dotted key
//   - check: report collisions and invalid keys in flat attributes
//
// Usage errors exit with status 2, every other failure with status 1.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		code, msg := exitStatus(err)
		if msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}

		os.Exit(code)
	}
}

// exitStatus maps an error from run to the process exit code and the
// message to print. Errors other than exitError are plain failures.
func exitStatus(err error) (int, string) {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code, exitErr.msg
	}

	return exitFailure, "attrcodec: " + err.Error()
}
