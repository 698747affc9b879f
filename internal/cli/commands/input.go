package commands

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests it can be replaced with a stub to avoid touching the terminal.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// promptPassword asks for a password without echoing it. A newline is
// printed after the read to keep the output tidy.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(Out, prompt)
	b, err := readPassword()
	fmt.Fprintln(Out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
