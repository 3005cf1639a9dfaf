// Command hash-password prints a bcrypt hash for each password read from
// stdin, one per line, so operators can provision accounts directly in the
// users table.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor (4-31)")
	flag.Parse()

	if err := hashPasswords(os.Stdin, os.Stdout, *cost); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// hashPasswords writes one hash line per non-empty input line.
func hashPasswords(in io.Reader, out io.Writer, cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		password := scanner.Text()
		if password == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := fmt.Fprintln(out, string(hash)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
