// Command hashpw prints bcrypt hashes for seeding users directly in the
// database.
//
//	go run ./cmd/hashpw 'first-password' 'second-password'
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"cv-manager-backend/pkg/auth"
)

func main() {
	passwords := os.Args[1:]
	if len(passwords) == 0 {
		// One password per line on stdin
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				passwords = append(passwords, line)
			}
		}
	}
	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>...")
		os.Exit(2)
	}

	for _, pass := range passwords {
		hash, err := auth.HashPassword(pass)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println(hash)
	}
}
