package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors. All wrap ErrValidation so the transport layer
// classifies them uniformly.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 12 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered user of the application.
//
// Password carries the plaintext password only between registration input
// and hashing; it is never serialized. HashedPassword is never exposed in
// JSON either, so a marshaled User is always safe to return to clients and
// to embed in auth responses.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name,omitempty"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserPatch describes a partial update of a User. Nil fields are left
// untouched by the store. The hashed password is set by the service layer
// when a password change is requested; it never arrives from a client.
type UserPatch struct {
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	FullName       *string `json:"full_name,omitempty"`
	HashedPassword *string `json:"-"`
}

// NewUser creates a new User with the given identity fields and plaintext
// password. It generates a new UUID for the user ID and sets the
// creation/update timestamps. Returns an error if validation fails.
//
// NOTE: the caller is responsible for hashing the password before the user
// is stored.
func NewUser(username, email, fullName, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		FullName:  fullName,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		// When a plaintext password is present, validate its length.
		// 72 bytes is bcrypt's practical limit.
		if len(u.Password) < 12 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store must carry a hash.
		return ErrEmptyPassword
	}

	return nil
}

// EntityID returns the user's unique identifier.
func (u User) EntityID() uuid.UUID { return u.ID }

// Sanitized returns a copy of the user with all password-bearing fields
// cleared. Auth responses embed this copy so a serialization change can
// never leak credentials.
func (u *User) Sanitized() *User {
	c := *u
	c.Password = ""
	c.HashedPassword = ""
	return &c
}

// validEmailFormat performs basic validation of email format: a single '@'
// with a dotted domain after it. Deliberately loose; the transport layer
// runs the stricter go-playground validation before payloads reach here.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
