package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/clc-api/internal/models"
	appErrors "github.com/noah-isme/clc-api/pkg/errors"
)

type studentDirectory interface {
	FindByCredentials(ctx context.Context, referenceID, studentName string) (*models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// RevokedTokenStore records logged-out session ids until they expire.
type RevokedTokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthConfig defines configuration for session token issuance.
type AuthConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// AuthService authenticates students against the directory and issues
// stateless session tokens.
type AuthService struct {
	students  studentDirectory
	tokens    RevokedTokenStore
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService. The revoked-token store is
// optional; without it logout relies on the cookie clear alone.
func NewAuthService(students studentDirectory, tokens RevokedTokenStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{students: students, tokens: tokens, validator: validate, logger: logger, config: config}
}

// Login matches the (referenceId, studentName) pair exactly and issues a
// session token. A miss is always "student not found": the caller cannot
// tell an unknown reference id from a wrong name.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "referenceId and studentName are required")
	}

	student, err := s.students.FindByCredentials(ctx, req.ReferenceID, req.StudentName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up student")
	}

	token, err := s.generateSessionToken(student)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session token")
	}

	s.logger.Info("student logged in", zap.String("reference_id", student.ReferenceID))

	return &models.LoginResponse{
		Student:     student,
		AccessToken: token,
		ExpiresIn:   int64(s.config.Expiration.Seconds()),
	}, nil
}

// CurrentStudent re-reads the authenticated student from the directory, so
// /students/me reflects the seeded record rather than stale token claims.
func (s *AuthService) CurrentStudent(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "student no longer exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// ValidateToken parses and validates a session token, rejecting revoked ids.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid or expired session")
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session claims")
	}

	if s.tokens != nil && claims.ID != "" {
		revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("revoked-token lookup failed", zap.Error(err))
		} else if revoked {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session has been logged out")
		}
	}

	return claims, nil
}

// Logout revokes the session token id. Always succeeds: revocation is
// best-effort and the handler clears the cookie regardless.
func (s *AuthService) Logout(ctx context.Context, claims *models.SessionClaims) {
	if s.tokens == nil || claims == nil || claims.ID == "" {
		return
	}

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("failed to revoke session token", zap.Error(err))
	}
}

func (s *AuthService) generateSessionToken(student *models.Student) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.SessionClaims{
		StudentID:   student.ID,
		ReferenceID: student.ReferenceID,
		StudentName: student.StudentName,
		Email:       student.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			Subject:   student.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
