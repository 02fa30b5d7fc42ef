package users

import (
	"database/sql/driver"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credential stores a password as a salted bcrypt hash. The plaintext is
// never retained and the hash never leaves the type: it is excluded from
// JSON and only Set and Verify touch it.
type Credential struct {
	hash string
}

// Set hashes the plaintext and replaces the stored hash.
func (c *Credential) Set(plain string) error {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.hash = string(h)
	return nil
}

// Verify compares the plaintext against the stored hash.
func (c Credential) Verify(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(plain)) == nil
}

func (c Credential) Value() (driver.Value, error) {
	return c.hash, nil
}

func (c *Credential) Scan(v any) error {
	switch s := v.(type) {
	case string:
		c.hash = s
	case []byte:
		c.hash = string(s)
	case nil:
		c.hash = ""
	default:
		return fmt.Errorf("unsupported credential column type %T", v)
	}
	return nil
}
