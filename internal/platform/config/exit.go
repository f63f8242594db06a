package config

import (
	"fmt"
	"os"
)

// Exitf reports an unrecoverable startup failure on stderr and
// terminates the process with status 1. Callers must release any open
// ledger handles first; deferred closers do not run past os.Exit.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
