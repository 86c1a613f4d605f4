package dto

import (
	"poolhire/infras/jwt"
	userModel "poolhire/internal/domains/user/model"
	"poolhire/shared/constant"
	gModel "poolhire/shared/model"
	"poolhire/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// RegisterRequest signs up a guest or a host. Admins are never self-registered.
type RegisterRequest struct {
	Email    string  `json:"email"               validate:"required,email"`
	Password string  `json:"password"            validate:"required,min=8,max=72"`
	FullName *string `json:"full_name,omitempty"`
	Role     string  `json:"role,omitempty"      validate:"omitempty,oneof=guest host"`
}

// ToUserModel builds an active, unverified account that is its own creator.
func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	id := uuid.NewString()
	now := timezone.Now()

	user := userModel.User{
		ID:       id,
		Email:    r.Email,
		Password: hashedPassword,
		Level:    constant.RoleGuest,
		FullName: r.FullName,
		Active:   true,
		Metadata: gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: id, ModifiedBy: id},
	}

	if r.Role != "" {
		user.Level = r.Role
	}

	return user
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

// TokenResponse is returned by both login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type (
	LoginResponse        = TokenResponse
	RefreshTokenResponse = TokenResponse
)

func (t *TokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	*t = TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}
}

// UpdateLastLoginRequest and UpdatePasswordRequest are column sets for TransformFields.
type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}
