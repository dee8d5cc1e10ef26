package user

import (
	"FindNest/domain"
	"FindNest/entities"
	"context"
	"errors"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users []*entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsernameOrEmail(_ context.Context, username, email string) (*entities.User, error) {
	for _, u := range f.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			updated := *user
			f.users[i] = &updated
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	for i, u := range f.users {
		if u.ID.String() == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepository) GetUsers(_ context.Context, page, limit int) ([]*entities.User, int64, error) {
	return f.users, int64(len(f.users)), nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId + "-" + role
}

func (f *fakeJWTService) ValidateTokenUser(string) (*gojwt.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (f *fakeJWTService) GetUserIDByToken(string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func newTestService() (UserService, *fakeUserRepository) {
	repo := &fakeUserRepository{}
	return NewUserService(repo, &fakeJWTService{}), repo
}

func validRegister() domain.RegisterRequest {
	return domain.RegisterRequest{
		FirstName:  "Jane",
		LastName:   "Doe",
		Username:   "janedoe1",
		Email:      "jane@example.com",
		Password:   "secret123",
		Department: "SSG",
	}
}

func TestRegisterPolicy(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.RegisterRequest)
		want   error
	}{
		{"invalid department", func(r *domain.RegisterRequest) { r.Department = "HR" }, domain.ErrInvalidDepartment},
		{"missing lastname", func(r *domain.RegisterRequest) { r.LastName = "" }, domain.ErrMissingUserField},
		{"short username", func(r *domain.RegisterRequest) { r.Username = "short" }, domain.ErrUsernameLength},
		{"long username", func(r *domain.RegisterRequest) { r.Username = "averyveryverylongusername" }, domain.ErrUsernameLength},
		{"username with space", func(r *domain.RegisterRequest) { r.Username = "jane doe1" }, domain.ErrUsernameSpaces},
		{"username with symbol", func(r *domain.RegisterRequest) { r.Username = "jane_doe1" }, domain.ErrUsernameCharset},
		{"short password", func(r *domain.RegisterRequest) { r.Password = "12345" }, domain.ErrPasswordTooShort},
	}

	for _, tc := range cases {
		req := validRegister()
		tc.mutate(&req)
		if _, err := svc.Register(ctx, req); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	req := validRegister()
	req.Username = "JaneDoe1"
	req.Email = "Jane@Example.COM"

	res, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.Username != "janedoe1" || res.Email != "jane@example.com" {
		t.Errorf("normalization: got %q / %q", res.Username, res.Email)
	}
	if res.Role != domain.RoleStaff {
		t.Errorf("default role: got %q", res.Role)
	}

	stored := repo.users[0]
	if stored.Password == req.Password {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(req.Password)); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegister()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	dup := validRegister()
	dup.Email = "other@example.com" // same username
	if _, err := svc.Register(ctx, dup); !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("duplicate username: got %v, want ErrUserAlreadyExists", err)
	}

	dup = validRegister()
	dup.Username = "otheruser1" // same email
	if _, err := svc.Register(ctx, dup); !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("duplicate email: got %v, want ErrUserAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegister()); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "janedoe1", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a session token")
	}

	if _, err := svc.Login(ctx, domain.LoginRequest{Username: "jane@example.com", Password: "secret123"}); err != nil {
		t.Errorf("login by email: %v", err)
	}

	if _, err := svc.Login(ctx, domain.LoginRequest{Username: "janedoe1", Password: "wrongpass"}); !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("wrong password: got %v, want ErrCredentialsInvalid", err)
	}
	if _, err := svc.Login(ctx, domain.LoginRequest{Username: "nosuchuser1", Password: "secret123"}); !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("unknown user: got %v, want ErrCredentialsInvalid", err)
	}
}

func TestUpdateUserOwnership(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validRegister())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.UpdateUser(ctx, created.ID, domain.UpdateUserRequest{Password: "newsecret"}, uuid.New().String()); !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Errorf("foreign caller: got %v, want ErrUserNotAllowed", err)
	}

	oldHash := repo.users[0].Password
	if _, err := svc.UpdateUser(ctx, created.ID, domain.UpdateUserRequest{Password: "newsecret"}, created.ID); err != nil {
		t.Fatalf("self update: %v", err)
	}
	newHash := repo.users[0].Password
	if newHash == oldHash || newHash == "newsecret" {
		t.Error("password was not re-hashed on update")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newsecret")); err != nil {
		t.Errorf("updated hash does not verify: %v", err)
	}

	if _, err := svc.UpdateUser(ctx, created.ID, domain.UpdateUserRequest{Password: "short"}, created.ID); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Errorf("short password on update: got %v", err)
	}
}

func TestDeleteUserOwnership(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validRegister())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.DeleteUser(ctx, created.ID, uuid.New().String()); !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Errorf("foreign caller: got %v, want ErrUserNotAllowed", err)
	}

	if err := svc.DeleteUser(ctx, created.ID, created.ID); err != nil {
		t.Fatalf("self delete: %v", err)
	}
	if len(repo.users) != 0 {
		t.Error("user not removed")
	}

	if err := svc.DeleteUser(ctx, created.ID, created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("delete of absent user: got %v, want ErrUserNotFound", err)
	}
}

func TestAdminUpdateUser(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validRegister())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.AdminUpdateUser(ctx, created.ID, domain.AdminUpdateUserRequest{Role: "janitor"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("invalid role: got %v, want ErrInvalidRole", err)
	}

	res, err := svc.AdminUpdateUser(ctx, created.ID, domain.AdminUpdateUserRequest{Role: domain.RoleAdmin, Department: "SSO"})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if res.Role != domain.RoleAdmin || res.Department != "SSO" {
		t.Errorf("admin update: got role=%q department=%q", res.Role, res.Department)
	}
	if repo.users[0].Role != domain.RoleAdmin {
		t.Error("role change not persisted")
	}

	if _, err := svc.AdminUpdateUser(ctx, uuid.New().String(), domain.AdminUpdateUserRequest{Role: domain.RoleAdmin}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("update of absent user: got %v, want ErrUserNotFound", err)
	}
}
