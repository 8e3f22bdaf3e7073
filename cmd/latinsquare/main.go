// Command latinsquare solves and plays Latin-square completion puzzles
// stored in the plain-text gridfile format.
//
// Exit status: 0 solved (or game finished), 1 unsolvable, 2 structural or
// input error, 3 search aborted by budget or timeout.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Process exit codes, the CLI's half of the outcome contract.
const (
	exitSolved     = 0
	exitUnsolvable = 1
	exitInputError = 2
	exitAborted    = 3
)

// exitError carries a process exit code through cobra's error return.
// A nil-message exitError terminates silently with its code.
type exitError struct {
	code int
	msg  string
}

// Error implements the error interface.
func (e *exitError) Error() string { return e.msg }

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitInputError)
	}
}
