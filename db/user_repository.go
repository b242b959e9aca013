package db

import (
	"github.com/obiwandrew/sociagram/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserRepository interface
type UserRepository interface {
	FindUserByID(id uint) (*models.User, error)
}

type userRepo struct {
	DB *gorm.DB
}

// NewUserRepo creates a new instance of UserRepository
func NewUserRepo(db *GormDB) UserRepository {
	return &userRepo{db.DB}
}

func (r *userRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find user")
	}
	return &user, nil
}
