package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"
	"fithub/backend/internal/token"
)

// fakeUserRepository implements repository.UserRepository with overridable
// functions per test.
type fakeUserRepository struct {
	CreateFunc     func(ctx context.Context, user *domain.User) (string, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetAllFunc     func(ctx context.Context) ([]domain.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	return f.CreateFunc(ctx, user)
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.GetByEmailFunc(ctx, email)
}

func (f *fakeUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	return f.GetAllFunc(ctx)
}

func newTestIssuer() *token.Issuer {
	return token.NewIssuer("test-secret", time.Hour, 7*24*time.Hour)
}

func TestSignIn_Success(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, StaticCredentials("admin", "Admin@123"), newTestIssuer())

	result := svc.SignIn(context.Background(), "admin", "Admin@123")

	if !result.Status {
		t.Fatalf("expected success, got message %q", result.Message)
	}
	if result.Message != "Login Successful" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if result.Token == "" || result.RefreshToken == "" {
		t.Error("expected a token pair")
	}
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, StaticCredentials("admin", "Admin@123"), newTestIssuer())

	result := svc.SignIn(context.Background(), "admin", "wrong")

	if result.Status {
		t.Fatal("expected failure status")
	}
	if result.Message != "Invalid username or password" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if result.Token != "" || result.RefreshToken != "" {
		t.Error("expected no tokens on failed sign-in")
	}
}

func TestSignIn_EmptyFields(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, StaticCredentials("admin", "Admin@123"), newTestIssuer())

	result := svc.SignIn(context.Background(), "", "")

	if result.Status {
		t.Fatal("expected failure status")
	}
	if result.Message != "Username or password is empty" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestSignUp_Success(t *testing.T) {
	var created *domain.User
	repo := &fakeUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, repository.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, user *domain.User) (string, error) {
			created = user
			return "user-id-1", nil
		},
	}
	svc := NewAuthService(repo, StaticCredentials("admin", "Admin@123"), newTestIssuer())

	result, err := svc.SignUp(context.Background(), SignUpInput{
		FullName: "Jamie Doe",
		Email:    "Jamie.Doe@Example.COM",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.UserID != "user-id-1" {
		t.Errorf("unexpected user id: %q", result.UserID)
	}
	if result.Token == "" || result.RefreshToken == "" {
		t.Error("expected a token pair")
	}
	if created.Email != "jamie.doe@example.com" {
		t.Errorf("expected lowercased email, got %q", created.Email)
	}
	if created.Password == "s3cret" || created.Password == "" {
		t.Error("expected password to be hashed")
	}
	if created.Salt == "" {
		t.Error("expected a salt to be generated")
	}
}

func TestSignUp_MissingFields(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, StaticCredentials("admin", "Admin@123"), newTestIssuer())

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@b.com"})

	if !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestSignUp_DuplicateEmailPreCheck(t *testing.T) {
	repo := &fakeUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email}, nil
		},
	}
	svc := NewAuthService(repo, StaticCredentials("admin", "Admin@123"), newTestIssuer())

	_, err := svc.SignUp(context.Background(), SignUpInput{
		FullName: "Jamie Doe",
		Email:    "jamie@example.com",
		Password: "s3cret",
	})

	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestSignUp_DuplicateOnInsert(t *testing.T) {
	cases := []struct {
		name      string
		insertErr error
	}{
		{"typed conflict", repository.ErrConflict},
		{"raw driver message", errors.New("E11000 Duplicate Key error collection: fithub.users")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					return nil, repository.ErrNotFound
				},
				CreateFunc: func(ctx context.Context, user *domain.User) (string, error) {
					return "", tc.insertErr
				},
			}
			svc := NewAuthService(repo, StaticCredentials("admin", "Admin@123"), newTestIssuer())

			_, err := svc.SignUp(context.Background(), SignUpInput{
				FullName: "Jamie Doe",
				Email:    "jamie@example.com",
				Password: "s3cret",
			})

			if !errors.Is(err, ErrUserAlreadyExists) {
				t.Errorf("expected ErrUserAlreadyExists, got %v", err)
			}
		})
	}
}

func TestSignUp_UnrelatedInsertErrorPassesThrough(t *testing.T) {
	insertErr := errors.New("connection reset")
	repo := &fakeUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, repository.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, user *domain.User) (string, error) {
			return "", insertErr
		},
	}
	svc := NewAuthService(repo, StaticCredentials("admin", "Admin@123"), newTestIssuer())

	_, err := svc.SignUp(context.Background(), SignUpInput{
		FullName: "Jamie Doe",
		Email:    "jamie@example.com",
		Password: "s3cret",
	})

	if !errors.Is(err, insertErr) {
		t.Errorf("expected raw insert error, got %v", err)
	}
	if errors.Is(err, ErrUserAlreadyExists) {
		t.Error("unrelated error must not map to a conflict")
	}
}

func TestListUsers(t *testing.T) {
	repo := &fakeUserRepository{
		GetAllFunc: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{Email: "a@b.com"}, {Email: "c@d.com"}}, nil
		},
	}
	svc := NewAuthService(repo, StaticCredentials("admin", "Admin@123"), newTestIssuer())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}
