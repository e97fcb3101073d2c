package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/export"
)

// cliConfig holds the options collected from flags or interactive prompts.
type cliConfig struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Special   bool
	Count     int
	OutFile   string
}

// parseFlags registers and parses command-line flags on the given FlagSet so
// tests can run it without touching global flag state.
func parseFlags(fs *flag.FlagSet, args []string) cliConfig {
	var cfg cliConfig

	fs.IntVar(&cfg.Length, "length", 16, "Password length (4-128)")
	fs.BoolVar(&cfg.Lowercase, "lower", true, "Include lowercase letters")
	fs.BoolVar(&cfg.Uppercase, "upper", true, "Include uppercase letters")
	fs.BoolVar(&cfg.Digits, "digits", true, "Include digits (0-9)")
	fs.BoolVar(&cfg.Special, "special", true, "Include special characters")
	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")
	fs.StringVar(&cfg.OutFile, "out", "", "Write passwords to this file")

	_ = fs.Parse(args)
	return cfg
}

// runInteractive prompts for options via stdin. The reader/writer parameters
// allow testing without real stdin/stdout.
func runInteractive(r io.Reader, w io.Writer) cliConfig {
	scanner := bufio.NewScanner(r)
	cfg := cliConfig{Length: 16, Count: 1}

	fmt.Fprintln(w, "=== PassForge (interactive mode) ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Password length [16]: ")
	if scanner.Scan() {
		if v, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil && v > 0 {
			cfg.Length = v
		}
	}

	fmt.Fprintf(w, "Include lowercase letters? [Y/n]: ")
	cfg.Lowercase = promptYesDefault(scanner)

	fmt.Fprintf(w, "Include uppercase letters? [Y/n]: ")
	cfg.Uppercase = promptYesDefault(scanner)

	fmt.Fprintf(w, "Include digits? [Y/n]: ")
	cfg.Digits = promptYesDefault(scanner)

	fmt.Fprintf(w, "Include special characters? [Y/n]: ")
	cfg.Special = promptYesDefault(scanner)

	fmt.Fprintf(w, "How many passwords? [1]: ")
	if scanner.Scan() {
		if v, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil && v > 0 {
			cfg.Count = v
		}
	}

	fmt.Fprintf(w, "Save to file (blank to skip): ")
	if scanner.Scan() {
		cfg.OutFile = strings.TrimSpace(scanner.Text())
	}

	fmt.Fprintln(w)
	return cfg
}

// promptYesDefault reads one answer, defaulting to yes on blank input.
func promptYesDefault(scanner *bufio.Scanner) bool {
	if !scanner.Scan() {
		return true
	}
	s := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return s != "n" && s != "no"
}

// run generates the requested batch.
func run(cfg cliConfig) ([]string, error) {
	opts := crypto.Options{
		Length:    cfg.Length,
		Lowercase: cfg.Lowercase,
		Uppercase: cfg.Uppercase,
		Digits:    cfg.Digits,
		Special:   cfg.Special,
	}
	return crypto.GenerateMany(opts, cfg.Count)
}

func main() {
	var cfg cliConfig

	// No arguments switches to interactive mode.
	if len(os.Args) < 2 {
		cfg = runInteractive(os.Stdin, os.Stdout)
	} else {
		cfg = parseFlags(flag.CommandLine, os.Args[1:])
	}

	passwords, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i, pw := range passwords {
		fmt.Printf("Password %d: %s\n", i+1, pw)
	}

	if cfg.OutFile != "" {
		// A failed write is a warning; the passwords above are still usable.
		if err := export.WriteFile(cfg.OutFile, passwords); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			return
		}
		fmt.Printf("Passwords saved to %q\n", cfg.OutFile)
	}
}
