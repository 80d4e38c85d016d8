package service

import (
	"context"

	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
)

type IUserService interface {
	FetchAllUsers(ctx context.Context) ([]model.User, error)
	FetchUser(ctx context.Context, id uint) (*model.User, error)
	AddUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, user *model.User) (bool, error)
}

type UserService struct {
	userRepo db.IUserRepository
}

func NewUserService(userRepo db.IUserRepository) IUserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) FetchAllUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

// FetchUser 不存在回傳nil
func (s *UserService) FetchUser(ctx context.Context, id uint) (*model.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}

func (s *UserService) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Role == "" {
		user.Role = model.UserRoleCustomer
	}
	return s.userRepo.CreateUser(ctx, user)
}

// UpdateUser 用戶不存在回傳false且不寫任何東西
func (s *UserService) UpdateUser(ctx context.Context, id uint, user *model.User) (bool, error) {
	existing, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	existing.Phone = user.Phone
	if user.Address != nil {
		existing.Address = user.Address
	}

	if err := s.userRepo.UpdateUser(ctx, existing); err != nil {
		return false, err
	}
	return true, nil
}
