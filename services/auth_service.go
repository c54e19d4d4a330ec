package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"article-review-cms/config"
	"article-review-cms/models"
	"article-review-cms/repositories"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	// Authenticate resolves a bearer token to the current user record.
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// Claims carries only the identity; the role is always re-read from storage
// so a role change takes effect on the next request.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authService struct {
	store  *repositories.Store
	jwt    config.JWTConfig
	logger *zap.Logger
}

func NewAuthService(store *repositories.Store, jwtConfig config.JWTConfig, logger *zap.Logger) AuthService {
	return &authService{
		store:  store,
		jwt:    jwtConfig,
		logger: logger.With(zap.String("service", "auth_service")),
	}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		_, err := tx.Users.GetByUsername(ctx, req.Username)
		if err == nil {
			return models.Validation("Username already used")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// The first account becomes the administrator
		count, err := tx.Users.CountActive(ctx)
		if err != nil {
			return err
		}
		user.Role = models.RoleContributor
		if count == 0 {
			user.Role = models.RoleAdmin
		}

		if err := tx.Users.Create(ctx, user); err != nil {
			if isDuplicateKey(err) {
				return models.Validation("Username already used")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", user.Role.String()))

	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.store.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Unauthorized("Wrong username or password")
		}
		return nil, err
	}

	// The sentinel account has no password and can never log in
	if user.ID == models.SentinelUserID || user.Password == "" {
		return nil, models.Unauthorized("Wrong username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.Unauthorized("Wrong username or password")
	}

	return s.authResponse(user)
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwt.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, models.Forbidden()
	}

	user, err := s.store.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Forbidden()
		}
		return nil, err
	}
	if user.ID == models.SentinelUserID {
		return nil, models.Forbidden()
	}
	return user, nil
}

func (s *authService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		Role:  user.Role.String(),
		User:  *user,
	}, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwt.Expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}
