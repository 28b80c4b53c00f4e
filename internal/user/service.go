package user

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonTsoy/jwt-auth-api/internal/model"
	"github.com/AntonTsoy/jwt-auth-api/internal/store"
)

// Service owns user lifecycle: registration with email uniqueness, lookup
// and deletion. New registrations always get the USER role.
type Service struct {
	users store.UserStore
}

func NewService(users store.UserStore) *Service {
	return &Service{users: users}
}

func (s *Service) Create(email, password string) (model.User, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return model.User{}, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	u := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.users.Create(u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *Service) FindByID(id uuid.UUID) (model.User, error) {
	return s.users.FindByID(id)
}

func (s *Service) FindAll() ([]model.User, error) {
	return s.users.FindAll()
}

func (s *Service) DeleteByID(id uuid.UUID) error {
	return s.users.DeleteByID(id)
}
