package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/internal/infrastructure/memory"
	"pdv/pkg/auth"
)

func newAuthService(t *testing.T, ttl time.Duration) (*auth.Service, *memory.UserStore) {
	t.Helper()
	store := memory.NewUserStore()
	user, err := auth.NewUser("caixa01", "senha-segura", "Operador de Caixa", "operador")
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), user))
	return auth.NewService(store, "test-secret", ttl), store
}

func TestLoginAndValidate(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)

	token, user, err := svc.Login(context.Background(), "caixa01", "senha-segura")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "caixa01", user.Username)
	assert.Equal(t, "operador", user.Role)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "caixa01", claims.Username)
	assert.Equal(t, "operador", claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)

	_, _, err := svc.Login(context.Background(), "caixa01", "errada")
	assert.Error(t, err)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)

	_, _, err := svc.Login(context.Background(), "fantasma", "qualquer")
	assert.Error(t, err)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	store := memory.NewUserStore()
	user, err := auth.NewUser("desligado", "senha", "Ex-funcionario", "operador")
	require.NoError(t, err)
	user.Active = false
	require.NoError(t, store.Create(context.Background(), user))

	svc := auth.NewService(store, "test-secret", time.Hour)
	_, _, err = svc.Login(context.Background(), "desligado", "senha")
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc, _ := newAuthService(t, -time.Minute)

	token, _, err := svc.Login(context.Background(), "caixa01", "senha-segura")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsTokenSignedWithOtherSecret(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)

	token, _, err := svc.Login(context.Background(), "caixa01", "senha-segura")
	require.NoError(t, err)

	other := auth.NewService(memory.NewUserStore(), "other-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
