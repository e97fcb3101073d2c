// Package export serializes password batches into the plain-text report
// format consumed by downstream tooling.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	header        = "Generated Secure Passwords"
	separatorRune = "="
	separatorLen  = 30
)

// Write serializes the batch: a header line, a separator rule, a blank line,
// then one "Password N: ..." line per password, 1-based in generation order.
func Write(w io.Writer, passwords []string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, strings.Repeat(separatorRune, separatorLen))
	fmt.Fprintln(bw)

	for i, password := range passwords {
		fmt.Fprintf(bw, "Password %d: %s\n", i+1, password)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing password export: %w", err)
	}
	return nil
}

// WriteFile writes the batch to the named file, creating or truncating it.
// Failures are reported to the caller; the passwords remain usable in memory.
func WriteFile(filename string, passwords []string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := Write(f, passwords); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
