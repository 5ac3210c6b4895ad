package jwt_test

import (
	"context"
	"testing"
	"time"
	"tripdesk/config"
	"tripdesk/infras/jwt"
	"tripdesk/infras/otel/mocks"
	"tripdesk/shared/constant"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.Issuer = "tripdesk-auth"

	return cfg
}

func claimsFor(role string, expiresIn time.Duration) jwt.Claims {
	now := time.Now()

	return jwt.Claims{
		UserID:  "user-1",
		Email:   "sarah@tripdesk.io",
		Name:    "Sarah Sales",
		Role:    role,
		TokenID: "tok-1",
		Type:    jwt.AccessToken,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "tripdesk-auth",
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(expiresIn)),
		},
	}
}

func TestValidateToken(t *testing.T) {
	cfg := newConfig()
	svc := jwt.New(cfg, mocks.NewOtel())

	valid, err := jwt.Sign(cfg, claimsFor(constant.RoleSalesperson, time.Hour))
	require.NoError(t, err)

	expired, err := jwt.Sign(cfg, claimsFor(constant.RoleSalesperson, -time.Hour))
	require.NoError(t, err)

	noRole, err := jwt.Sign(cfg, claimsFor("", time.Hour))
	require.NoError(t, err)

	otherCfg := newConfig()
	otherCfg.JWT.AccessSecret = "another-secret"
	forged, err := jwt.Sign(otherCfg, claimsFor(constant.RoleAdmin, time.Hour))
	require.NoError(t, err)

	wrongIssuerClaims := claimsFor(constant.RoleAdmin, time.Hour)
	wrongIssuerClaims.Issuer = "someone-else"
	wrongIssuer, err := jwt.Sign(cfg, wrongIssuerClaims)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid token", token: valid},
		{name: "expired token", token: expired, wantErr: jwt.ErrExpiredToken},
		{name: "missing role", token: noRole, wantErr: jwt.ErrInvalidClaim},
		{name: "foreign signature", token: forged, wantErr: jwt.ErrInvalidToken},
		{name: "wrong issuer", token: wrongIssuer, wantErr: jwt.ErrInvalidToken},
		{name: "garbage", token: "not-a-token", wantErr: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(context.Background(), tt.token, jwt.AccessToken)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
			assert.Equal(t, constant.RoleSalesperson, claims.Role)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)

	_, err = jwt.ExtractTokenFromHeader("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, jwt.ErrBadHeader)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	assert.ErrorIs(t, err, jwt.ErrBadHeader)
}
