package user

import (
	"FindNest/domain"
	"FindNest/entities"
	"FindNest/pkg/jwt"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		UpdateUser(ctx context.Context, targetID string, req domain.UpdateUserRequest, callerID string) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, targetID string, callerID string) error
		GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error)
		AdminUpdateUser(ctx context.Context, targetID string, req domain.AdminUpdateUserRequest) (domain.UserResponse, error)
		AdminDeleteUser(ctx context.Context, targetID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	if !domain.IsValidDepartment(req.Department) {
		return domain.UserResponse{}, domain.ErrInvalidDepartment
	}

	if req.FirstName == "" || req.LastName == "" || req.Username == "" ||
		req.Email == "" || req.Password == "" {
		return domain.UserResponse{}, domain.ErrMissingUserField
	}

	username := strings.ToLower(req.Username)
	email := strings.ToLower(req.Email)

	if err := validateUsername(username); err != nil {
		return domain.UserResponse{}, err
	}
	if len(req.Password) < 6 {
		return domain.UserResponse{}, domain.ErrPasswordTooShort
	}

	if _, err := s.userRepository.GetUserByUsernameOrEmail(ctx, username, email); err == nil {
		return domain.UserResponse{}, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:         uuid.New(),
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Username:   username,
		Email:      email,
		Password:   string(hashed),
		Department: req.Department,
		Role:       domain.RoleStaff,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	identifier := strings.ToLower(req.Username)

	user, err := s.userRepository.GetUserByUsernameOrEmail(ctx, identifier, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, targetID string, req domain.UpdateUserRequest, callerID string) (domain.UserResponse, error) {
	if callerID != targetID {
		return domain.UserResponse{}, domain.ErrUserNotAllowed
	}

	user, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if err := s.applyAccountChanges(ctx, user, req.Username, req.Email, req.Password); err != nil {
		return domain.UserResponse{}, err
	}

	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, targetID string, callerID string) error {
	if callerID != targetID {
		return domain.ErrUserNotAllowed
	}
	return s.deleteByID(ctx, targetID)
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return response, count, nil
}

func (s *userService) AdminUpdateUser(ctx context.Context, targetID string, req domain.AdminUpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.MiddleName != "" {
		user.MiddleName = req.MiddleName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Department != "" {
		if !domain.IsValidDepartment(req.Department) {
			return domain.UserResponse{}, domain.ErrInvalidDepartment
		}
		user.Department = req.Department
	}
	if req.Role != "" {
		if !domain.IsValidRole(req.Role) {
			return domain.UserResponse{}, domain.ErrInvalidRole
		}
		user.Role = req.Role
	}

	if err := s.applyAccountChanges(ctx, user, req.Username, req.Email, req.Password); err != nil {
		return domain.UserResponse{}, err
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) AdminDeleteUser(ctx context.Context, targetID string) error {
	return s.deleteByID(ctx, targetID)
}

// applyAccountChanges handles the credential fields shared by self-service
// and administrative edits: username policy and uniqueness, email uniqueness,
// password policy and re-hashing.
func (s *userService) applyAccountChanges(ctx context.Context, user *entities.User, username, email, password string) error {
	if username != "" {
		username = strings.ToLower(username)
		if err := validateUsername(username); err != nil {
			return err
		}
		if username != user.Username {
			if err := s.checkAvailable(ctx, username, "", user.ID); err != nil {
				return err
			}
			user.Username = username
		}
	}

	if email != "" {
		email = strings.ToLower(email)
		if email != user.Email {
			if err := s.checkAvailable(ctx, "", email, user.ID); err != nil {
				return err
			}
			user.Email = email
		}
	}

	if password != "" {
		if len(password) < 6 {
			return domain.ErrPasswordTooShort
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}

	return nil
}

func (s *userService) checkAvailable(ctx context.Context, username, email string, selfID uuid.UUID) error {
	existing, err := s.userRepository.GetUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrUserAlreadyExists
	}
	return nil
}

func (s *userService) deleteByID(ctx context.Context, id string) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

func validateUsername(username string) error {
	if len(username) < 7 || len(username) > 20 {
		return domain.ErrUsernameLength
	}
	if strings.Contains(username, " ") {
		return domain.ErrUsernameSpaces
	}
	if username != strings.ToLower(username) {
		return domain.ErrUsernameLowercase
	}
	for _, r := range username {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return domain.ErrUsernameCharset
		}
	}
	return nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:             user.ID.String(),
		FirstName:      user.FirstName,
		MiddleName:     user.MiddleName,
		LastName:       user.LastName,
		Username:       user.Username,
		Email:          user.Email,
		Department:     user.Department,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	}
}
