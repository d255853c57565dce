package usecase

import (
	"time"

	"talenthub/internal/entity"
	"talenthub/internal/permission"
	"talenthub/internal/repo/persistent"
	"talenthub/pkg/apperr"
	"talenthub/pkg/jwt"
	"talenthub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ProfileUpdate struct {
	Name        *string
	AvatarURL   *string
	Bio         *string
	SocialLinks *string
}

type AuthUseCase interface {
	Register(email, name, password, role string) (*entity.User, *TokenPair, error)
	Login(email, password string) (*entity.User, *TokenPair, error)
	Refresh(refreshToken string) (string, error)
	Logout(refreshToken string) error
	LogoutAll(userID string) error
	GetUser(userID string) (*entity.User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	tokenRepo  persistent.TokenRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	tokenRepo persistent.TokenRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, name, password, role string) (*entity.User, *TokenPair, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, nil, apperr.Conflict("email already registered")
	}

	// Admin accounts are provisioned via seed or role update, never
	// self-registered.
	normalized := permission.NormalizeRole(role)
	if normalized == entity.RoleAdmin {
		normalized = entity.RoleViewer
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, nil, apperr.Storage(err)
	}

	user := &entity.User{
		Email:    email,
		Name:     name,
		Password: string(hashedPassword),
		Role:     normalized,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, nil, apperr.Storage(err)
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return user, tokens, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, *TokenPair, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, apperr.Authentication("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperr.Authentication("invalid credentials")
	}

	// Legacy rows may carry role values from the old system; normalize
	// before any permission decision or token issue.
	user.Role = permission.NormalizeRole(string(user.Role))

	if err := uc.userRepo.TouchLastLogin(user.ID); err != nil {
		uc.logger.Warn("Failed to update last login for %s: %v", user.ID, err)
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return user, tokens, nil
}

func (uc *authUseCase) Refresh(refreshToken string) (string, error) {
	if _, err := uc.jwtService.ValidateToken(refreshToken); err != nil {
		return "", apperr.Authentication("invalid or expired refresh token")
	}

	stored, err := uc.tokenRepo.GetByToken(refreshToken)
	if err != nil {
		return "", apperr.Authentication("invalid or expired refresh token")
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return "", apperr.Authentication("invalid or expired refresh token")
	}

	user, err := uc.userRepo.GetByID(stored.UserID)
	if err != nil {
		return "", apperr.Authentication("invalid or expired refresh token")
	}

	role := permission.NormalizeRole(string(user.Role))
	accessToken, err := uc.jwtService.GenerateToken(user.ID, string(role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return "", apperr.Storage(err)
	}
	return accessToken, nil
}

func (uc *authUseCase) Logout(refreshToken string) error {
	if err := uc.tokenRepo.Delete(refreshToken); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (uc *authUseCase) LogoutAll(userID string) error {
	if err := uc.tokenRepo.DeleteAllForUser(userID); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}
	user.Role = permission.NormalizeRole(string(user.Role))
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UpdateProfile(userID string, update ProfileUpdate) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.SocialLinks != nil {
		user.SocialLinks = *update.SocialLinks
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, apperr.Storage(err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) issueTokens(user *entity.User) (*TokenPair, error) {
	accessToken, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return nil, apperr.Storage(err)
	}

	refreshToken, expiresAt, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return nil, apperr.Storage(err)
	}

	if err := uc.tokenRepo.Create(user.ID, refreshToken, expiresAt); err != nil {
		uc.logger.Error("Failed to persist refresh token: %v", err)
		return nil, apperr.Storage(err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
