// Command strengthcheck scores passwords offline with the same rules as the
// server. Passwords come from the arguments, or one per line on stdin when no
// arguments are given.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	httphandler "github.com/Aman-pandey-5909/shield-my-keys/internal/adapter/driving/http"
	"github.com/Aman-pandey-5909/shield-my-keys/internal/application"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("strengthcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	asJSON := fs.Bool("json", false, "print one JSON object per password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	report := reportText
	if *asJSON {
		report = reportJSON
	}

	if fs.NArg() > 0 {
		for i, pw := range fs.Args() {
			if err := report(stdout, i+1, pw); err != nil {
				return err
			}
		}
		return nil
	}

	// Lines are unbounded: a password of any length is valid input.
	reader := bufio.NewReader(stdin)
	for n := 1; ; n++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read stdin: %w", readErr)
		}
		if readErr != nil && line == "" {
			return nil
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if err := report(stdout, n, line); err != nil {
			return err
		}
		if readErr != nil {
			return nil
		}
	}
}

func reportText(w io.Writer, n int, password string) error {
	res := application.EvaluateStrength(password)
	if _, err := fmt.Fprintf(w, "#%d: %s (score %d)\n", n, res.Level.Label(), res.Score); err != nil {
		return err
	}
	for _, f := range res.Feedback {
		if _, err := fmt.Fprintf(w, "  - %s\n", f); err != nil {
			return err
		}
	}
	return nil
}

func reportJSON(w io.Writer, _ int, password string) error {
	return json.NewEncoder(w).Encode(httphandler.ToStrengthResponse(application.EvaluateStrength(password)))
}
