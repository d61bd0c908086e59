package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/internal/service"
	"github.com/comicgate/comicgate/models"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockSearchService implements service.SearchService for unit tests.
type mockSearchService struct {
	searchFn func(ctx context.Context, term, filterType string) ([]models.NormalizedResult, error)
}

func (m *mockSearchService) Search(ctx context.Context, term, filterType string) ([]models.NormalizedResult, error) {
	return m.searchFn(ctx, term, filterType)
}

// newTestHandler builds a Handler over the given service mocks.
func newTestHandler(t *testing.T, auth service.AuthService, search service.SearchService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:   auth,
		SearchService: search,
	}
	return NewHandler(svcs, logger.Nop())
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string and claims.
func stubToken(signed, name, email string) models.Token {
	token := models.Token{SignedString: signed}
	token.Name = name
	token.Email = email
	return token
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Name:     "alice",
	Email:    "alice@example.com",
	Password: "s3cret",
}
