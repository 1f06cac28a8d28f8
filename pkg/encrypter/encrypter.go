package encrypter

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the bcrypt cost existing password hashes were created with.
const DefaultCost = 10

// Encrypter hashes and checks passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	CompareHashAndPassword(hash, password string) bool
}

type implEncrypter struct {
	cost int
}

// New returns a bcrypt Encrypter. A cost outside bcrypt's range uses DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &implEncrypter{cost: cost}
}

func (e *implEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("encrypter: hash password: %w", err)
	}
	return string(hash), nil
}

func (e *implEncrypter) CompareHashAndPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
