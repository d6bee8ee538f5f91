package auth

import (
	"errors"
	"fmt"

	"github.com/example/board-service/domain/user"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when no account matches the user id.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the user id is already taken.
	ErrDuplicateUser = errors.New("user id already exists")
)

// UserRepository handles user persistence using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user account.
func (r *UserRepository) Create(u *user.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUserID finds an account by its login id.
func (r *UserRepository) FindByUserID(userID string) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// UserIDExists checks whether an account with the given login id exists.
func (r *UserRepository) UserIDExists(userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&user.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}
