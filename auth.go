package main

import (
	"bufio"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// Admin credentials, loaded from ADMIN_USER / ADMIN_PASSWORD_HASH at startup.
// An empty hash disables the admin endpoints entirely.
var (
	adminUser         = "admin"
	adminPasswordHash []byte
)

func loadAdminCredentials() {
	if user := os.Getenv("ADMIN_USER"); user != "" {
		adminUser = user
	}
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		slog.Info("admin endpoints disabled (ADMIN_PASSWORD_HASH not set)")
		return
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		slog.Error("ADMIN_PASSWORD_HASH is not a bcrypt hash, admin endpoints disabled", "error", err)
		return
	}
	adminPasswordHash = []byte(hash)
	slog.Info("admin endpoints enabled", "user", adminUser)
}

// requireAdmin wraps a handler with HTTP Basic auth against the bcrypt hash
func requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(adminPasswordHash) == 0 {
			http.NotFound(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(adminUser)) == 1
		if !ok || !userOK || bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(pass)) != nil {
			slog.WarnContext(r.Context(), "admin authentication failed", "remote_addr", r.RemoteAddr)
			w.Header().Set("WWW-Authenticate", `Basic realm="webinars admin"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

// hashPassword returns the bcrypt hash used for ADMIN_PASSWORD_HASH
func hashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// runHashPassword implements the hash-password subcommand. On a terminal
// the password is read twice without echo; otherwise one line from stdin.
func runHashPassword(stdin *os.File, stdout, stderr io.Writer) int {
	var password string

	fd := int(stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(stderr, "Enter password:   ")
		first, err := term.ReadPassword(fd)
		fmt.Fprintln(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading password: %v\n", err)
			return 1
		}
		fmt.Fprint(stderr, "Confirm password: ")
		second, err := term.ReadPassword(fd)
		fmt.Fprintln(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading password confirmation: %v\n", err)
			return 1
		}
		if string(first) != string(second) {
			fmt.Fprintln(stderr, "Passwords do not match")
			return 1
		}
		password = string(first)
	} else {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(stderr, "Error reading password: %v\n", err)
			return 1
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := hashPassword(password)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, hash)
	return 0
}
