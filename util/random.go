package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// NewAPIKey generates a bearer API key together with the bcrypt hash to be
// stored in API_KEY_HASH. The 8-character prefix before the dot identifies
// the key without revealing it.
func NewAPIKey() (key, hash string, err error) {
	key = fmt.Sprintf("%s.%s", RandomString(8), RandomString(24))
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return key, string(h), nil
}

// RandomSeed returns a seed for reproducible simulator runs in tests.
func RandomSeed() uint64 {
	return rand.Uint64()
}
