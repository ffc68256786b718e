package user

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(u *User) error
	GetByID(id string) (*User, error)
	GetByUsernameOrEmail(value string) (*User, error)
	UpdateRecentQuestions(id string, recent datatypes.JSON) error
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) GetByID(id string) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByUsernameOrEmail(value string) (*User, error) {
	var u User
	if err := r.db.
		Where("username = ? OR email = ?", value, value).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateRecentQuestions(id string, recent datatypes.JSON) error {
	return r.db.Model(&User{}).
		Where("id = ?", id).
		Update("recent_questions", recent).Error
}
