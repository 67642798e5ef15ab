package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"droscher.com/CafeGargoyle/pkg/model"
)

var ErrDuplicateUsername = errors.New("username already taken")

func (r *Repository) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

// AddUser stores a new account. The uniqueness check runs inside the insert
// transaction so two concurrent registrations cannot both succeed.
func (r *Repository) AddUser(ctx context.Context, username string, passwordHash string) (*model.User, error) {
	user := model.User{Username: username, Password: passwordHash}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.User

		result := tx.Where("username = ?", username).First(&existing)
		if result.Error == nil {
			return ErrDuplicateUsername
		}

		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}
