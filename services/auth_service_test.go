package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"title-review-api/config"
	"title-review-api/models"
)

func newTestAuthService(repo *memUserRepo, notifier *fakeNotifier) *authService {
	return &authService{
		userRepo:     repo,
		notifier:     notifier,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		generateCode: GenerateConfirmationCode,
	}
}

func waitForCodes(t *testing.T, notifier *fakeNotifier, n int) []string {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(notifier.Codes()) >= n
	}, 2*time.Second, 10*time.Millisecond)
	return notifier.Codes()
}

func TestSignupCreatesIdentity(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &fakeNotifier{}
	svc := newTestAuthService(repo, notifier)

	err := svc.Signup(models.SignupRequest{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	user, err := repo.GetByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	codes := waitForCodes(t, notifier, 1)
	// The stored value is a hash of the dispatched code, never the plaintext.
	assert.NotEqual(t, codes[0], user.ConfirmationCode)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.ConfirmationCode), []byte(codes[0])))
}

func TestSignupIdempotentAndRotatesCode(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &fakeNotifier{}
	svc := newTestAuthService(repo, notifier)

	require.NoError(t, svc.Signup(models.SignupRequest{Username: "bob", Email: "b@x.com"}))
	require.NoError(t, svc.Signup(models.SignupRequest{Username: "bob", Email: "b@x.com"}))

	users, err := repo.FindByUsernameOrEmail("bob", "b@x.com")
	require.NoError(t, err)
	require.Len(t, users, 1)

	codes := waitForCodes(t, notifier, 2)
	stored := users[0].ConfirmationCode
	// Only the latest code is usable.
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(codes[0])))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(codes[1])))
}

func TestSignupPartialMatchConflicts(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &fakeNotifier{}
	svc := newTestAuthService(repo, notifier)
	require.NoError(t, svc.Signup(models.SignupRequest{Username: "bob", Email: "b@x.com"}))

	// Same username, different email.
	err := svc.Signup(models.SignupRequest{Username: "bob", Email: "other@x.com"})
	var verr *models.ErrorValidation
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")

	// Same email, different username.
	err = svc.Signup(models.SignupRequest{Username: "alice", Email: "b@x.com"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")

	// Nothing was created or mutated along the way.
	users, err := repo.FindByUsernameOrEmail("bob", "b@x.com")
	require.NoError(t, err)
	require.Len(t, users, 1)
	_, err = repo.GetByUsername("alice")
	assert.Error(t, err)
}

func TestSignupDispatchFailureIsSwallowed(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &fakeNotifier{err: errBoom}
	svc := newTestAuthService(repo, notifier)

	require.NoError(t, svc.Signup(models.SignupRequest{Username: "bob", Email: "b@x.com"}))

	// The identity exists and holds a code even though dispatch failed.
	time.Sleep(50 * time.Millisecond)
	user, err := repo.GetByUsername("bob")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ConfirmationCode)
	assert.Empty(t, notifier.Codes())
}

func TestIssueToken(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &fakeNotifier{}
	svc := newTestAuthService(repo, notifier)
	require.NoError(t, svc.Signup(models.SignupRequest{Username: "bob", Email: "b@x.com"}))
	code := waitForCodes(t, notifier, 1)[0]

	_, err := svc.IssueToken(models.TokenRequest{Username: "nobody", ConfirmationCode: code})
	var notFound *models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)

	_, err = svc.IssueToken(models.TokenRequest{Username: "bob", ConfirmationCode: "wrong"})
	var verr *models.ErrorValidation
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "confirmation_code")

	token, err := svc.IssueToken(models.TokenRequest{Username: "bob", ConfirmationCode: code})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", claims["username"])

	// The code survives the exchange until the next signup rotates it.
	_, err = svc.IssueToken(models.TokenRequest{Username: "bob", ConfirmationCode: code})
	assert.NoError(t, err)
}
