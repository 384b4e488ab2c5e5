package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"title-review-api/config"
	"title-review-api/mailer"
	"title-review-api/metrics"
	"title-review-api/models"
	"title-review-api/repositories"
)

type AuthService interface {
	Signup(req models.SignupRequest) error
	IssueToken(req models.TokenRequest) (string, error)
}

type authService struct {
	userRepo repositories.UserRepository
	notifier mailer.Notifier
	logger   *slog.Logger
	// Injected so tests can pin the code; defaults to GenerateConfirmationCode.
	generateCode func() string
}

func NewAuthService(userRepo repositories.UserRepository, notifier mailer.Notifier, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
		generateCode: GenerateConfirmationCode,
	}
}

// GenerateConfirmationCode mints an unpredictable single-use code. Each
// signup call produces a fresh value for the identity, so there is no shared
// default anywhere.
func GenerateConfirmationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Signup finds or creates the identity for a (username, email) pair and
// dispatches a fresh confirmation code. Repeating the exact pair is
// idempotent: the identity is reused and its code rotated. A pair matching an
// existing identity on only one field is a conflict and changes nothing.
func (s *authService) Signup(req models.SignupRequest) error {
	matches, err := s.userRepo.FindByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return err
	}
	if err := signupConflicts(matches, req); err != nil {
		return err
	}

	code := s.generateCode()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var user *models.User
	if len(matches) > 0 {
		user = &matches[0]
		user.ConfirmationCode = string(hash)
		if err := s.userRepo.Update(user); err != nil {
			return err
		}
	} else {
		user = &models.User{
			Username:         req.Username,
			Email:            req.Email,
			Role:             models.RoleUser,
			ConfirmationCode: string(hash),
		}
		if err := s.userRepo.Create(user); err != nil {
			// A concurrent signup can win the race to the unique indexes.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.NewFieldError("username", "a user with this username or email already exists")
			}
			return err
		}
		metrics.SignupsTotal.Inc()
	}
	metrics.CodesIssued.Inc()

	go s.dispatchCode(user.Email, code)
	return nil
}

func signupConflicts(matches []models.User, req models.SignupRequest) error {
	verr := &models.ErrorValidation{}
	for _, u := range matches {
		if u.Username != req.Username {
			verr.Add("email", "this email is already registered to a different username")
		}
		if u.Email != req.Email {
			verr.Add("username", "this username is already registered with a different email")
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Dispatch is fire-and-forget: a notification failure is logged and never
// reaches the client.
func (s *authService) dispatchCode(email, code string) {
	if err := s.notifier.SendConfirmationCode(email, code); err != nil {
		s.logger.Error("confirmation code dispatch failed", "email", email, "error", err)
	}
}

// IssueToken exchanges a valid (username, code) pair for an access token.
// The stored code survives the exchange; it is only rotated by a subsequent
// signup. TODO: clear the code hash here once clients handle re-signup after
// a failed refresh.
func (s *authService) IssueToken(req models.TokenRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &models.ErrorNotFound{Resource: "user"}
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.ConfirmationCode), []byte(req.ConfirmationCode)) != nil {
		return "", models.NewFieldError("confirmation_code", "invalid confirmation code")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}
	metrics.TokensIssued.Inc()
	return token, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
