/*
Package services - User Management Service

==============================================================================
FILE: internal/services/user_service.go
==============================================================================

DESCRIPTION:
    Manages the planners and viewers who log into the roster system:
    user creation, role changes, activation, and deletion. The ward runs
    a single roster, so there is no company-level isolation here -
    every admin manages the same user list.

USER PERSPECTIVE:
    - Admins create user accounts (hr or viewer roles)
    - Activate/deactivate user accounts
    - Delete user accounts (admins cannot delete themselves)

DEVELOPER GUIDELINES:
    OK to modify: User validation rules, add new roles
    DO NOT modify: Admin self-deletion protection
    Note: Only non-admin roles can be created through this service

SYNTAX EXPLANATION:
    - CreateUser requires admin authentication
    - Role enum: admin, hr, viewer
    - ToggleUserActive prevents admins from deactivating themselves
    - ToResponseDTO hides sensitive data (password hash)

==============================================================================
*/
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dienstplan/internal/models"
	"dienstplan/internal/models/enums"
	"dienstplan/internal/repositories"
)

// CreateUserRequest represents a request to create a new user
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

// UserService handles user management business logic
type UserService struct {
	userRepo *repositories.UserRepository
	db       *gorm.DB
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(db),
		db:       db,
	}
}

// ListUsers returns every user account.
func (s *UserService) ListUsers() ([]map[string]interface{}, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	result := make([]map[string]interface{}, len(users))
	for i, user := range users {
		result[i] = user.ToResponseDTO()
	}
	return result, nil
}

// CreateUser creates a new planner or viewer account.
func (s *UserService) CreateUser(req CreateUserRequest) (map[string]interface{}, error) {
	// Validate role - only allow non-admin roles
	role := enums.UserRole(req.Role)
	if !role.IsValid() {
		return nil, errors.New("invalid role")
	}
	if role == enums.RoleAdmin {
		return nil, errors.New("cannot create admin users through this endpoint")
	}

	// Check if email already exists (active users only)
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("a user with this email already exists")
	}

	// Check if a soft-deleted user exists with this email and remove it
	// This allows re-registering users that were previously deleted
	existsDeleted, err := s.userRepo.ExistsByEmailIncludingDeleted(req.Email)
	if err != nil {
		return nil, err
	}
	if existsDeleted {
		// Hard delete the soft-deleted user to free up the email
		if err := s.userRepo.HardDeleteByEmail(req.Email); err != nil {
			return nil, err
		}
	}

	// Create new user
	user := &models.User{
		Email:    req.Email,
		Role:     role,
		FullName: req.FullName,
		IsActive: true,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user.ToResponseDTO(), nil
}

// UpdateUser updates a user's role, name and/or password
func (s *UserService) UpdateUser(adminID, userID uuid.UUID, req UpdateUserRequest) (map[string]interface{}, error) {
	// Get the user to update
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	// Update full name if provided
	if req.FullName != "" {
		user.FullName = req.FullName
	}

	// Update role if provided
	if req.Role != "" {
		// Cannot change your own role
		if adminID == userID {
			return nil, errors.New("cannot change your own role")
		}

		role := enums.UserRole(req.Role)
		if !role.IsValid() {
			return nil, errors.New("invalid role")
		}
		if role == enums.RoleAdmin {
			return nil, errors.New("cannot change role to admin")
		}
		user.Role = role
	}

	// Update password if provided (admin resetting user password)
	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, errors.New("password must be at least 8 characters")
		}
		if err := user.SetPassword(req.Password); err != nil {
			return nil, errors.New("failed to set password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user.ToResponseDTO(), nil
}

// DeleteUser deletes a user (admin cannot delete themselves)
func (s *UserService) DeleteUser(adminID, userID uuid.UUID) error {
	// Cannot delete yourself
	if adminID == userID {
		return errors.New("cannot delete yourself")
	}

	// Get the user to delete
	_, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("user not found")
		}
		return err
	}

	return s.userRepo.Delete(userID)
}

// ToggleUserActive toggles user active status
func (s *UserService) ToggleUserActive(adminID, userID uuid.UUID) (map[string]interface{}, error) {
	// Cannot toggle yourself
	if adminID == userID {
		return nil, errors.New("cannot deactivate yourself")
	}

	// Get the user
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	// Toggle status
	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user.ToResponseDTO(), nil
}
