package services

import (
	"context"
	"errors"

	"lezzet.link/models"
	"lezzet.link/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

// Hangi alanın yanlış olduğu bilgisi dışarı sızdırılmaz; kullanıcı adı ve
// şifre hataları aynı mesajla döner.
const ErrInvalidCredentials AuthServiceError = "geçersiz bilgiler"

// IAuthService admin girişi için arayüz.
type IAuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

// Authenticate kullanıcıyı bulur ve şifreyi bcrypt ile doğrular.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
