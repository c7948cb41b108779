package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/events"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

type fakeUserRepo struct {
	users  map[string]*domain.AdminUser
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.AdminUser)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.AdminUser) error {
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newAuthServiceForTest(t *testing.T, repo *fakeUserRepo, dispatcher events.Dispatcher) *AuthService {
	t.Helper()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:      "service-test-secret",
		TokenTTLMillis: 3600000,
		BcryptCost:     bcrypt.MinCost,
	}}
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
	}
	return NewAuthService(cfg, repo, dispatcher, zap.NewNop())
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, role domain.Role) {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := repo.Create(context.Background(), &domain.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Email:        username + "@example.com",
		Role:         role,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "s3cret-pass", domain.RoleAdmin)
	svc := newAuthServiceForTest(t, repo, nil)

	user, token, expiresAt, err := svc.Login(context.Background(), "admin", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "admin" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user %+v", user)
	}
	if expiresAt.IsZero() {
		t.Fatal("expected a non-zero expiry")
	}

	claims, err := svc.TokenManager().Parse(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != "admin" || claims.Role != "ADMIN" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected userId %d got %d", user.ID, claims.UserID)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "s3cret-pass", domain.RoleAdmin)
	svc := newAuthServiceForTest(t, repo, nil)

	_, _, _, unknownErr := svc.Login(context.Background(), "ghost", "whatever")
	_, _, _, wrongErr := svc.Login(context.Background(), "admin", "wrong-pass")

	unknown := apperrors.ToDomainError(unknownErr)
	wrong := apperrors.ToDomainError(wrongErr)

	if unknown.Code != "INVALID_CREDENTIALS" || wrong.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("expected INVALID_CREDENTIALS, got %q and %q", unknown.Code, wrong.Code)
	}
	if unknown.Message != wrong.Message || unknown.HTTPStatus != wrong.HTTPStatus {
		t.Fatalf("failure shapes differ: %+v vs %+v", unknown, wrong)
	}
	if unknown.HTTPStatus != 401 {
		t.Fatalf("expected 401 got %d", unknown.HTTPStatus)
	}
}

func TestSignupRequiresAdminRequester(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(t, repo, nil)

	for _, role := range []domain.Role{domain.RoleEditor, domain.RoleView, domain.Role("")} {
		_, err := svc.Signup(context.Background(), role, "newuser", "password1", "", "", domain.RoleView)
		de := apperrors.ToDomainError(err)
		if de == nil || de.Code != "ACCESS_DENIED" {
			t.Fatalf("requester %q: expected ACCESS_DENIED got %v", role, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatal("no account may be created by a non-admin requester")
	}
}

func TestSignupRejectsInvalidRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(t, repo, nil)

	_, err := svc.Signup(context.Background(), domain.RoleAdmin, "newuser", "password1", "", "", domain.Role("SUPERUSER"))
	de := apperrors.ToDomainError(err)
	if de == nil || de.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED got %v", err)
	}
}

func TestSignupConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "taken", "password1", domain.RoleEditor)
	svc := newAuthServiceForTest(t, repo, nil)

	_, err := svc.Signup(context.Background(), domain.RoleAdmin, "taken", "password1", "fresh@example.com", "", domain.RoleView)
	de := apperrors.ToDomainError(err)
	if de == nil || de.Code != "CONFLICT" || de.Message != "Username already exists" {
		t.Fatalf("expected username conflict got %v", err)
	}

	_, err = svc.Signup(context.Background(), domain.RoleAdmin, "fresh", "password1", "taken@example.com", "", domain.RoleView)
	de = apperrors.ToDomainError(err)
	if de == nil || de.Code != "CONFLICT" || de.Message != "Email already exists" {
		t.Fatalf("expected email conflict got %v", err)
	}
}

func TestSignupCreatesAccountAndPublishesEvent(t *testing.T) {
	repo := newFakeUserRepo()
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventUserCreated, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	svc := newAuthServiceForTest(t, repo, dispatcher)

	user, err := svc.Signup(context.Background(), domain.RoleAdmin, "editor", "password1", "editor@example.com", "+15550001111", domain.RoleEditor)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if user.PasswordHash == "password1" {
		t.Fatal("password must be stored hashed")
	}
	if err := auth.ComparePassword(user.PasswordHash, "password1"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	stored, err := repo.GetByUsername(context.Background(), "editor")
	if err != nil {
		t.Fatalf("account not persisted: %v", err)
	}
	if stored.Role != domain.RoleEditor {
		t.Fatalf("expected EDITOR got %q", stored.Role)
	}

	if len(published) != 1 {
		t.Fatalf("expected 1 event got %d", len(published))
	}
	if published[0].Resource != "admin_user" || published[0].Actor != "editor" {
		t.Fatalf("unexpected event %+v", published[0])
	}
}
