package accounts

import (
	"errors"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors shared across services and adapters. Adapters map storage
// failures onto these; the REST layer maps them onto HTTP statuses.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("password incorrect")
	ErrInvalidToken       = errors.New("invalid token")
)

// VideoSet names one of the per-user video id collections.
type VideoSet string

const (
	SetLiked    VideoSet = "liked"
	SetDisliked VideoSet = "disliked"
)

// DefaultFolderName is the folder every new user starts with.
const DefaultFolderName = "Liked Videos"

// User is the identity record. Liked/disliked collections are true sets:
// the storage layer guarantees no duplicates.
type User struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	EducationInstitution string    `json:"education_institution"`
	PasswordHash         string    `json:"-"`
	LikedVideos          []string  `json:"liked_videos"`
	DislikedVideos       []string  `json:"disliked_videos"`
	CreatedAt            time.Time `json:"created_at"`
}

func (u User) Validate() error {
	if u.ID == "" {
		return errors.New("id is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	return nil
}

// Profile is the public projection of a user, safe to hand to display code.
type Profile struct {
	Name                 string `json:"name"`
	EducationInstitution string `json:"education_institution"`
}

// DeletedProfile is returned when the requested user no longer exists, so
// display components can still render attribution.
var DeletedProfile = Profile{Name: "Deleted User"}

// Folder is a named grouping owned by a user. Required folders (the default
// "Liked Videos" one) cannot be removed by folder management.
type Folder struct {
	ID         string    `json:"id"`
	Name       string    `json:"folder_name"`
	OwnerID    string    `json:"added_by"`
	IsRequired bool      `json:"is_required"`
	CreatedAt  time.Time `json:"created_at"`
}

// Claims is the identity payload embedded in bearer tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Name   string `json:"name"`
}

// RegistrationInput is the raw registration form.
type RegistrationInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	EducationInstitution string `json:"education_institution"`
}

// Validate returns a field-keyed error map; an empty map means the input is
// acceptable. The map shape matches what clients render next to form fields.
func (in RegistrationInput) Validate() map[string]string {
	fieldErrors := map[string]string{}
	if in.Name == "" {
		fieldErrors["name"] = "Name field is required"
	}
	validateEmail(in.Email, fieldErrors)
	validatePassword(in.Password, fieldErrors)
	return fieldErrors
}

// LoginInput is the raw login form.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() map[string]string {
	fieldErrors := map[string]string{}
	validateEmail(in.Email, fieldErrors)
	if in.Password == "" {
		fieldErrors["password"] = "Password field is required"
	}
	return fieldErrors
}

func validateEmail(email string, fieldErrors map[string]string) {
	if email == "" {
		fieldErrors["email"] = "Email field is required"
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fieldErrors["email"] = "Email is invalid"
	}
}

func validatePassword(password string, fieldErrors map[string]string) {
	switch {
	case password == "":
		fieldErrors["password"] = "Password field is required"
	case len(password) < 6 || len(password) > 30:
		fieldErrors["password"] = "Password must be at least 6 characters and at most 30 characters"
	}
}
