//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the upstream identity service does.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, email, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, email, -time.Minute)
	require.NoError(t, err)
	return token
}
