// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a stored account. PII columns hold ciphertext plus a
// deterministic lookup digest; the plaintext never reaches storage.
type User struct {
	ID             uuid.UUID // PK
	UsernameEnc    []byte    // AEAD ciphertext of the username
	EmailEnc       []byte    // AEAD ciphertext of the email
	UsernameLookup string    // keyed digest of the normalized username
	EmailLookup    string    // keyed digest of the normalized email, unique
	PasswordHash   string    // argon2id, PHC-encoded with embedded salt
	CreatedAt      time.Time
}

// Profile is the decrypted view of a user returned to its owner.
type Profile struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      Profile
}

// Task is a single scheduled to-do item owned by a user.
type Task struct {
	ID        uuid.UUID
	UserID    uuid.UUID // FK -> users.id
	Date      time.Time // calendar day the task is planned for
	Time      string    // display time within the day, e.g. "08:30"
	Title     string
	Icon      string
	Color     string
	Duration  string
	CreatedAt time.Time
}
