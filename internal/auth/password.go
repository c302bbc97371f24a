package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for stored hashes.
const PasswordCost = 10

// MaxPasswordBytes is bcrypt's input limit; longer passwords are refused
// rather than silently truncated.
const MaxPasswordBytes = 72

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	return string(b), err
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var (
	dummyOnce sync.Once
	dummy     string
)

// dummyHash is compared against when a login names an unknown email, so
// both miss paths cost one bcrypt comparison at PasswordCost.
func dummyHash() string {
	dummyOnce.Do(func() {
		dummy, _ = HashPassword("storefront-no-such-account")
	})
	return dummy
}
