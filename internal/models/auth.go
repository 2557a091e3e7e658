package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds the credential pair students authenticate with.
// There is no password: the reference id and the exact registered name
// together act as the credential.
type LoginRequest struct {
	ReferenceID string `json:"referenceId" validate:"required"`
	StudentName string `json:"studentName" validate:"required"`
}

// LoginResponse returns the issued token and the student profile.
type LoginResponse struct {
	Student     *Student `json:"student"`
	AccessToken string   `json:"accessToken"`
	ExpiresIn   int64    `json:"expiresIn"`
}

// SessionClaims is the JWT payload identifying an authenticated student.
type SessionClaims struct {
	StudentID   string `json:"student_id"`
	ReferenceID string `json:"reference_id"`
	StudentName string `json:"student_name"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
