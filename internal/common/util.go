package common

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var generatedPasswordRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// RandomAlphanumeric returns a string of n characters drawn uniformly from
// [A-Za-z0-9].
func RandomAlphanumeric(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphanumeric[idx.Int64()]
	}
	return string(out), nil
}

// LooksGenerated reports whether password has the shape of a generated
// password: exactly GeneratedPasswordLength alphanumeric characters.
//
// A user-chosen password of the same shape is indistinguishable and is
// reported as generated too.
func LooksGenerated(password string) bool {
	return len(password) == GeneratedPasswordLength && generatedPasswordRe.MatchString(password)
}
