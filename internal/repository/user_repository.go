package repository

import (
	"manjang_web/internal/models"
	"manjang_web/internal/storage"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	UpdateSid(email, sid string, name *string) (*models.User, error)
}

type userRepository struct {
	db *storage.PostgresDB
}

func NewUserRepository(db *storage.PostgresDB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateSid 設定指定用戶的學號，name 不為 nil 時一併更新
// sid 不可變更的政策由呼叫端把關，這裡只負責寫入
func (r *userRepository) UpdateSid(email, sid string, name *string) (*models.User, error) {
	updates := map[string]interface{}{"sid": sid}
	if name != nil {
		updates["name"] = *name
	}

	if err := r.db.Model(&models.User{}).Where("email = ?", email).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByEmail(email)
}
