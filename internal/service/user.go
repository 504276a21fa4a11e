package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"manjang_web/internal/models"
	"manjang_web/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByEmail 以 email 查詢用戶
// 用戶的建立與學號設定由註冊流程直接透過 repository 完成
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
