package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/apperror"
	"github.com/mainak-github/sk-electricks-api/pkg/oauth"
	"github.com/mainak-github/sk-electricks-api/pkg/utils"
)

// AuthService handles staff authentication: password sign-in, token
// refresh and the Google OAuth flow.
type AuthService struct {
	userRepo      repository.UserRepository
	jwtManager    *utils.JWTManager
	googleService *oauth.GoogleService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, googleService *oauth.GoogleService) *AuthService {
	return &AuthService{userRepo: userRepo, jwtManager: jwtManager, googleService: googleService}
}

// TokenPair is an access/refresh token pair issued after sign-in
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterInput represents the register input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new staff account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         "staff",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// RefreshToken exchanges a valid refresh token for a new pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// GetProfile retrieves the signed-in user's account
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   *string
}

// UpdateProfile updates the signed-in user's account
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password and sets a new one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperror.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	return s.userRepo.Update(ctx, user)
}

// GoogleAuthURL returns the consent URL to start the Google flow
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.googleService.IsConfigured() {
		return "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	return s.googleService.AuthURL(state), nil
}

// HandleGoogleCallback completes the Google flow: exchanges the code,
// looks up or provisions the account and issues a token pair.
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code string) (*entity.User, *TokenPair, error) {
	token, err := s.googleService.ExchangeCode(ctx, code)
	if err != nil {
		return nil, nil, apperror.ErrUnauthorized
	}

	info, err := s.googleService.UserInfo(ctx, token)
	if err != nil {
		return nil, nil, apperror.ErrUnauthorized
	}
	if !info.VerifiedEmail {
		return nil, nil, apperror.NewBadRequestError("Google account email is not verified")
	}

	user, err := s.userRepo.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		// link by email if the account already exists, otherwise provision
		user, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, nil, err
		}
		if user != nil {
			user.GoogleID = &info.ID
			user.AvatarURL = info.Picture
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, nil, err
			}
		} else {
			user = &entity.User{
				Name:      info.Name,
				Email:     info.Email,
				Role:      "staff",
				GoogleID:  &info.ID,
				AvatarURL: info.Picture,
			}
			if err := s.userRepo.Create(ctx, user); err != nil {
				return nil, nil, err
			}
		}
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
