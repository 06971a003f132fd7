// Package invite generates the codes doctors use to join a hospital.
package invite

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	Length   = 6
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generate returns a random code of Length characters from Alphabet.
// Uniqueness is enforced by the store, not here.
func Generate() (string, error) {
	max := big.NewInt(int64(len(Alphabet)))
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate invite code: %w", err)
		}
		b.WriteByte(Alphabet[n.Int64()])
	}
	return b.String(), nil
}

// Normalize folds user input to the stored form.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code has the shape of an invite code.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(Alphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
