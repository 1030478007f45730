package services

import (
	"errors"
	"time"

	"techforum/config"
	"techforum/models"
	"techforum/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	SignUp(req models.SignUpRequest) error
	SignIn(req models.SignInRequest) (*models.User, string, error)
	GetUserByID(id uint) (*models.User, error)
	GetRole(id uint) (string, error)
	ForgotPassword(email string) error
	ResetPassword(email, newPassword, confirmPassword string) error
}

type authService struct {
	userRepo repositories.UserRepository
	mail     *MailService
}

func NewAuthService(userRepo repositories.UserRepository, mail *MailService) AuthService {
	return &authService{userRepo: userRepo, mail: mail}
}

func (s *authService) SignUp(req models.SignUpRequest) error {
	existing, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existing != nil {
		return models.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      models.RoleUser,
	}
	return s.userRepo.Create(user)
}

// SignIn never reveals whether the email exists; an unknown address and a
// wrong password produce the same error.
func (s *authService) SignIn(req models.SignInRequest) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) GetRole(id uint) (string, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *authService) ForgotPassword(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	s.mail.SendPasswordResetEmail(user.Email, user.FirstName, user.ID)
	return nil
}

func (s *authService) ResetPassword(email, newPassword, confirmPassword string) error {
	if len(newPassword) < 6 {
		return models.ErrPasswordTooShort
	}
	if newPassword != confirmPassword {
		return models.ErrPasswordMismatch
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(user.ID, string(hashed))
}

// The token embeds only the user id; everything else is resolved per
// request. Lifetime comes from config, clients cannot extend it.
func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"userId": user.ID,
		"exp":    now.Add(config.JWTExpiration).Unix(),
		"iat":    now.Unix(),
		"nbf":    now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
