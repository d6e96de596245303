// Package user defines the user domain entity
package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultImageURL is used when a user registers without a profile image.
const DefaultImageURL = "https://www.freeiconspng.com/uploads/icon-user-blue-symbol-people-person-generic--public-domain--21.png"

// User represents a registered user in the system
type User struct {
	id           uint
	firstName    string
	lastName     string
	email        string
	passwordHash string
	imageURL     string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with validation and a hashed password
func NewUser(firstName, lastName, email, password, imageURL string) (*User, error) {
	if err := validateName(firstName); err != nil {
		return nil, err
	}

	if err := validateName(lastName); err != nil {
		return nil, err
	}

	if err := validateEmail(email); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	now := time.Now()
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		email:        strings.ToLower(email),
		passwordHash: hash,
		imageURL:     imageURL,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstitute rebuilds a user from persisted state. It performs no
// validation; the stored row is trusted.
func Reconstitute(id uint, firstName, lastName, email, passwordHash, imageURL string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		imageURL:     imageURL,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the user's ID
func (u *User) ID() uint {
	return u.id
}

// SetID assigns the database-generated identifier after insert.
func (u *User) SetID(id uint) {
	u.id = id
}

// FirstName returns the user's first name
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns the user's full name
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

// Email returns the user's email
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the user's hashed password
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// ImageURL returns the user's profile image URL
func (u *User) ImageURL() string {
	return u.imageURL
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// CheckPassword verifies if the provided password matches
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// UpdateProfile replaces the user's editable fields with validation.
// All updates are applied or none are.
func (u *User) UpdateProfile(firstName, lastName, email, imageURL string) error {
	if err := validateName(firstName); err != nil {
		return err
	}

	if err := validateName(lastName); err != nil {
		return err
	}

	if err := validateEmail(email); err != nil {
		return err
	}

	u.firstName = firstName
	u.lastName = lastName
	u.email = strings.ToLower(email)
	if imageURL != "" {
		u.imageURL = imageURL
	}
	u.updatedAt = time.Now()

	return nil
}

// HashPassword hashes a plaintext password. An empty plaintext is rejected
// rather than silently hashed.
func HashPassword(password string) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashFailed
	}

	return string(hash), nil
}

// Validation functions

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}

	if !strings.Contains(email, "@") {
		return ErrEmailInvalid
	}

	if len(email) > 100 {
		return ErrEmailTooLong
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}

	if len(name) > 100 {
		return ErrNameTooLong
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}

	if len(password) > 128 {
		return ErrPasswordTooLong
	}

	return nil
}
