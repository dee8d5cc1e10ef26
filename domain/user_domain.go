package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister   = "user created successfully"
	MessageSuccessLogin      = "login success"
	MessageSuccessSignout    = "user has been signed out"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user has been deleted"
	MessageSuccessGetUsers   = "users retrieved successfully"

	MessageFailedRegister   = "failed to create user"
	MessageFailedLogin      = "failed to login"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"
	MessageFailedGetUsers   = "failed to retrieve users"

	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username or email is already in use")
	ErrCredentialsInvalid = errors.New("invalid username or password")
	ErrInvalidDepartment  = errors.New("invalid department, must be one of: SSG, SSO, SSD")
	ErrMissingUserField   = errors.New("all fields are required except middlename")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrUsernameLength     = errors.New("username must be between 7 and 20 characters long")
	ErrUsernameSpaces     = errors.New("username must not contain spaces")
	ErrUsernameLowercase  = errors.New("username must be lowercase")
	ErrUsernameCharset    = errors.New("username must contain only letters and numbers")
	ErrInvalidRole        = errors.New("invalid role")
)

// Departments is the fixed set of departments an account can belong to.
var Departments = []string{"SSG", "SSO", "SSD"}

func IsValidDepartment(department string) bool {
	for _, d := range Departments {
		if d == department {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin || role == RoleSuperAdmin
}

type (
	RegisterRequest struct {
		FirstName  string `json:"firstname" validate:"required"`
		MiddleName string `json:"middlename" validate:"omitempty"`
		LastName   string `json:"lastname" validate:"required"`
		Username   string `json:"username" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Password   string `json:"password" validate:"required"`
		Department string `json:"department" validate:"required"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateUserRequest struct {
		Username       string `json:"username" validate:"omitempty"`
		Email          string `json:"email" validate:"omitempty,email"`
		Password       string `json:"password" validate:"omitempty"`
		ProfilePicture string `json:"profilePicture" validate:"omitempty,url"`
	}

	AdminUpdateUserRequest struct {
		FirstName  string `json:"firstname" validate:"omitempty"`
		MiddleName string `json:"middlename" validate:"omitempty"`
		LastName   string `json:"lastname" validate:"omitempty"`
		Username   string `json:"username" validate:"omitempty"`
		Email      string `json:"email" validate:"omitempty,email"`
		Password   string `json:"password" validate:"omitempty"`
		Department string `json:"department" validate:"omitempty"`
		Role       string `json:"role" validate:"omitempty"`
	}

	UserResponse struct {
		ID             string    `json:"id"`
		FirstName      string    `json:"firstname"`
		MiddleName     string    `json:"middlename,omitempty"`
		LastName       string    `json:"lastname"`
		Username       string    `json:"username"`
		Email          string    `json:"email"`
		Department     string    `json:"department"`
		Role           string    `json:"role"`
		ProfilePicture string    `json:"profile_picture,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
