package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poolhire/infras/jwt"
	"poolhire/internal/domains/auth/model/dto"
	"poolhire/shared/constant"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	var res dto.LoginResponse
	res.FromTokenPair(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900})

	assert.Equal(t, dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, res)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	name := "Pool Guest"

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		wantLevel string
	}{
		{name: "defaults to guest", req: dto.RegisterRequest{Email: "guest@example.com", FullName: &name}, wantLevel: constant.RoleGuest},
		{name: "host signup", req: dto.RegisterRequest{Email: "host@example.com", Role: constant.RoleHost}, wantLevel: constant.RoleHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := tt.req.ToUserModel("hashed")

			assert.NotEmpty(t, user.ID)
			assert.Equal(t, tt.wantLevel, user.Level)
			assert.Equal(t, "hashed", user.Password)
			assert.Equal(t, tt.req.FullName, user.FullName)
			assert.Equal(t, user.ID, user.CreatedBy)
			assert.Equal(t, user.CreatedAt, user.ModifiedAt)
			assert.True(t, user.Active)
			assert.False(t, user.IsVerified)
		})
	}
}
