package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	userRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/user"
)

// Claims полезная нагрузка токена персонала
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResponse результат успешной аутентификации
type LoginResponse struct {
	Token     string
	ExpiresAt time.Time
	UserID    int64
	Username  string
	Role      string
}

// Service сервис аутентификации персонала
type Service struct {
	userRepo     UserRepository
	secret       []byte
	tokenTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo:     userRepo,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет пароль и выдает JWT токен
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username %s", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for %s: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for %s", username)
		return nil, ErrInvalidCredentials
	}

	resp, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("Login: failed to sign token for %s: %v", username, err)
		return nil, err
	}

	s.logger.Info("Login: user %s authenticated", username)
	return resp, nil
}

// Refresh выдает новый токен по еще действующему.
// Учетная запись перечитывается: удаленный пользователь не продлит доступ
func (s *Service) Refresh(ctx context.Context, claims *Claims) (*LoginResponse, error) {
	if claims == nil || claims.Username == "" {
		return nil, fmt.Errorf("%w: claims are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Refresh: user %s no longer exists", claims.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Refresh: repository error for %s: %v", claims.Username, err)
		return nil, fmt.Errorf("%w: Refresh - repository error: %v", ErrInternal, err)
	}

	resp, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("Refresh: failed to sign token for %s: %v", claims.Username, err)
		return nil, err
	}

	s.logger.Info("Refresh: token renewed for %s", claims.Username)
	return resp, nil
}

// issueToken подписывает новый JWT для учетной записи
func (s *Service) issueToken(user *domain.User) (*LoginResponse, error) {
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	return &LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}, nil
}

// ParseToken проверяет подпись и срок действия токена
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// HashPassword хеширует пароль для хранения (используется при создании учетных записей)
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}
	return string(hash), nil
}
