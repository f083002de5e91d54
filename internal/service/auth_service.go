package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("неверный email или пароль")

// AuthService проверяет единственную учётную запись администратора и
// выпускает сессионный токен. Пользовательской базы нет.
type AuthService struct {
	adminEmail        string
	adminPassword     string
	adminPasswordHash string
	tokenManager      *TokenManager
}

// NewAuthService создаёт сервис аутентификации. Если задан bcrypt хэш,
// он имеет приоритет над паролем открытым текстом.
func NewAuthService(adminEmail, adminPassword, adminPasswordHash string, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPassword:     adminPassword,
		adminPasswordHash: adminPasswordHash,
		tokenManager:      tokenManager,
	}
}

// Login проверяет учётные данные и возвращает сессионный токен.
func (s *AuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Сравниваем email в постоянном времени, чтобы не подсказывать,
	// какая именно половина пары не совпала.
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1

	passwordOK := false
	if s.adminPasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	}

	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenManager.Issue(s.adminEmail)
	if err != nil {
		return "", err
	}

	return token, nil
}
