package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type UserService interface {
	CreateUserWithPassword(user *models.User, plainPassword string) error
	GetUserByID(id int) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id int) error
	ListUsers(limit, offset int) ([]*models.User, error)
}

type userService struct {
	repo         *repositories.UserRepository
	emailService EmailService
	authService  AuthService
}

func NewUserService(repo *repositories.UserRepository, emailService EmailService, authService AuthService) UserService {
	return &userService{repo: repo, emailService: emailService, authService: authService}
}

func (s *userService) CreateUserWithPassword(user *models.User, plainPassword string) error {
	if strings.TrimSpace(plainPassword) == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	hashedPassword, err := s.authService.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashedPassword
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	id, err := s.repo.Create(user)
	if err != nil {
		return err
	}
	user.ID = int(id)

	if s.emailService != nil {
		// warn but do not fail creation
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("CreateUserWithPassword: warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}
	return nil
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(email)
}

func (s *userService) UpdateUser(user *models.User) error {
	return s.repo.Update(user)
}

func (s *userService) DeleteUser(id int) error {
	return s.repo.Delete(id)
}

func (s *userService) ListUsers(limit, offset int) ([]*models.User, error) {
	return s.repo.List(limit, offset)
}
