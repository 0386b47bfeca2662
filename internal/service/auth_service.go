package service

import (
	"context"
	"errors"
	"strings"

	"fithub/backend/internal/crypto"
	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"
	"fithub/backend/internal/token"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists = errors.New("User with this email already exists")
	ErrMissingFields     = errors.New("Required fields are missing")
)

// CredentialVerifier checks a sign-in credential pair. The default wires
// the configured fixed pair; a real identity backend can be substituted
// without touching handlers.
type CredentialVerifier func(username, password string) bool

// StaticCredentials returns a verifier comparing against one fixed pair.
func StaticCredentials(username, password string) CredentialVerifier {
	return func(u, p string) bool {
		return u == username && p == password
	}
}

// SignInResult is the structured sign-in outcome. Bad credentials produce
// Status=false with a message, never an error.
type SignInResult struct {
	Status       bool
	Message      string
	Token        string
	RefreshToken string
}

type SignUpInput struct {
	FullName    string
	Email       string
	Password    string
	Phone       string
	AccountType string
}

type SignUpResult struct {
	UserID       string
	Token        string
	RefreshToken string
}

// --- Service Interface ---
type AuthService interface {
	SignIn(ctx context.Context, username, password string) *SignInResult
	SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// --- Service Implementation ---

type authService struct {
	userRepo repository.UserRepository
	verify   CredentialVerifier
	issuer   *token.Issuer
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, verify CredentialVerifier, issuer *token.Issuer) AuthService {
	if verify == nil {
		panic("credential verifier cannot be nil")
	}
	return &authService{
		userRepo: userRepo,
		verify:   verify,
		issuer:   issuer,
	}
}

// SignIn checks the credential pair and issues a token pair on match. It
// never fails with an error: every outcome is a structured result.
func (s *authService) SignIn(_ context.Context, username, password string) *SignInResult {
	if username == "" || password == "" {
		return &SignInResult{Status: false, Message: "Username or password is empty"}
	}

	if !s.verify(username, password) {
		return &SignInResult{Status: false, Message: "Invalid username or password"}
	}

	claims := token.Claims{Username: username}
	accessToken, err := s.issuer.Issue(claims)
	if err != nil {
		return &SignInResult{Status: false, Message: err.Error()}
	}
	refreshToken, err := s.issuer.IssueRefresh(claims)
	if err != nil {
		return &SignInResult{Status: false, Message: err.Error()}
	}

	return &SignInResult{
		Status:       true,
		Message:      "Login Successful",
		Token:        accessToken,
		RefreshToken: refreshToken,
	}
}

// SignUp validates the payload, hashes the password with a fresh salt,
// stores the user and issues a token pair. A duplicate email resolves to
// ErrUserAlreadyExists no matter which layer detects it.
func (s *authService) SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}
	email := strings.ToLower(input.Email)

	// Advisory pre-check; the unique email index is authoritative.
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:    input.FullName,
		Email:       email,
		Phone:       input.Phone,
		AccountType: input.AccountType,
		Password:    crypto.HashPassword(input.Password, salt),
		Salt:        salt,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// A create racing the pre-check surfaces the same conflict; some
		// driver paths report it only through the message text.
		if isDuplicateKey(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	claims := token.Claims{Email: email, UserID: userID}
	accessToken, err := s.issuer.Issue(claims)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.issuer.IssueRefresh(claims)
	if err != nil {
		return nil, err
	}

	return &SignUpResult{
		UserID:       userID,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ListUsers returns every user account. Credential stripping happens at the
// response mapping layer.
func (s *authService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

// isDuplicateKey classifies a uniqueness violation, whether typed by the
// repository or surfaced as a raw store failure.
func isDuplicateKey(err error) bool {
	if errors.Is(err, repository.ErrConflict) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}
