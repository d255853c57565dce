package persistent

import (
	"strings"
	"time"

	"talenthub/internal/entity"
	"talenthub/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateRole(id string, role entity.UserRole) error
	TouchLastLogin(id string) error
	CountByRole(role entity.UserRole) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	userModel.Email = strings.ToLower(userModel.Email)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdateRole(id string, role entity.UserRole) error {
	res := r.db.Model(&model.UserModel{}).Where("id = ?", id).Update("role", string(role))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) TouchLastLogin(id string) error {
	now := time.Now()
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Update("last_login_at", &now).Error
}

func (r *userRepository) CountByRole(role entity.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("role = ?", string(role)).Count(&count).Error
	return count, err
}
