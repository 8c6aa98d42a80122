package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"acodelab/internal/api"
	"acodelab/internal/auth/mocks"
	"acodelab/internal/session"
	"acodelab/pkg/apierrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newManager(t *testing.T) (*Manager, *mocks.MockService, *session.MemoryStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	store := session.NewMemoryStore()
	return NewManager(svc, store), svc, store
}

func adminUser() api.User {
	return api.User{
		ID:         "admin-1",
		Username:   "admin",
		Email:      "admin@acodelab.com",
		Role:       api.RoleAdmin,
		IsAdmin:    true,
		PConPoints: 100,
		Rank:       "Guru",
	}
}

func TestVerifyOnLoad_NoStoredToken(t *testing.T) {
	m, _, _ := newManager(t)

	state := m.VerifyOnLoad(context.Background())

	assert.Equal(t, StateAnonymous, state)
	assert.False(t, m.IsAuthenticated())
}

func TestVerifyOnLoad_ValidToken(t *testing.T) {
	m, svc, store := newManager(t)
	require.NoError(t, store.Save(session.Session{Token: "tok-1"}))

	svc.EXPECT().CurrentUser(gomock.Any()).Return(adminUser(), nil)

	state := m.VerifyOnLoad(context.Background())

	assert.Equal(t, StateAuthenticated, state)
	assert.True(t, m.IsAuthenticated())
	assert.True(t, m.IsAdmin())

	// The verified user snapshot is persisted next to the token.
	sess, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-1", sess.Token)
	var cached api.User
	require.NoError(t, json.Unmarshal(sess.User, &cached))
	assert.Equal(t, "admin", cached.Username)
}

func TestVerifyOnLoad_RejectedTokenClearsStore(t *testing.T) {
	m, svc, store := newManager(t)
	require.NoError(t, store.Save(session.Session{Token: "stale"}))

	svc.EXPECT().CurrentUser(gomock.Any()).
		Return(api.User{}, apierrors.New(apierrors.CodeUnauthorized, "Token expirado"))

	state := m.VerifyOnLoad(context.Background())

	// Never stuck in verifying: rejection lands on anonymous, store empty.
	assert.Equal(t, StateAnonymous, state)
	_, ok, _ := store.Load()
	assert.False(t, ok)
}

func TestLogin_Success(t *testing.T) {
	m, svc, store := newManager(t)

	svc.EXPECT().Login(gomock.Any(), api.Credentials{Email: "admin@acodelab.com", Password: "admin123"}).
		Return(api.TokenResponse{AccessToken: "jwt-1", TokenType: "bearer", User: adminUser()}, nil)

	result := m.Login(context.Background(), api.Credentials{Email: "admin@acodelab.com", Password: "admin123"})

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, StateAuthenticated, m.State())

	user, ok := m.User()
	require.True(t, ok)
	assert.Equal(t, api.RoleAdmin, user.Role)

	sess, ok, _ := store.Load()
	require.True(t, ok)
	assert.Equal(t, "jwt-1", sess.Token)
}

func TestLogin_FailureReturnsResultNotError(t *testing.T) {
	m, svc, store := newManager(t)

	svc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(api.TokenResponse{}, apierrors.New(apierrors.CodeUnauthorized, "Credenciais inválidas"))

	result := m.Login(context.Background(), api.Credentials{Email: "x@y.com", Password: "nope"})

	assert.False(t, result.Success)
	assert.Equal(t, "Credenciais inválidas", result.Error)
	assert.Equal(t, "Credenciais inválidas", m.ErrorMessage())
	assert.False(t, m.IsAuthenticated())

	_, ok, _ := store.Load()
	assert.False(t, ok, "failed login must not persist a session")

	m.ClearError()
	assert.Empty(t, m.ErrorMessage())
}

func TestLogin_TransportFailureUsesGenericMessage(t *testing.T) {
	m, svc, _ := newManager(t)

	svc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(api.TokenResponse{}, apierrors.Wrap(errors.New("connection refused"), apierrors.CodeUnavailable, "request failed"))

	result := m.Login(context.Background(), api.Credentials{Email: "x@y.com", Password: "pw"})

	assert.False(t, result.Success)
	assert.Equal(t, "Erro ao fazer login", result.Error)
}

func TestRegister_Success(t *testing.T) {
	m, svc, _ := newManager(t)

	user := api.User{ID: "u2", Username: "novata", Email: "novata@dev.br", Role: api.RoleUser}
	svc.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(api.TokenResponse{AccessToken: "jwt-2", User: user}, nil)

	result := m.Register(context.Background(), api.RegisterRequest{
		Username: "novata", Email: "novata@dev.br", Password: "Senha123",
	})

	assert.True(t, result.Success)
	assert.True(t, m.IsAuthenticated())
	assert.False(t, m.IsAdmin())
	assert.False(t, m.IsCompany())
}

func TestLogout(t *testing.T) {
	m, svc, store := newManager(t)
	svc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(api.TokenResponse{AccessToken: "jwt-1", User: adminUser()}, nil)
	require.True(t, m.Login(context.Background(), api.Credentials{}).Success)

	m.Logout()

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.IsAuthenticated())
	_, ok, _ := store.Load()
	assert.False(t, ok)
}

func TestUpdateProfile_RefreshesCachedSnapshot(t *testing.T) {
	m, svc, store := newManager(t)
	svc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(api.TokenResponse{AccessToken: "jwt-1", User: adminUser()}, nil)
	require.True(t, m.Login(context.Background(), api.Credentials{}).Success)

	updated := adminUser()
	updated.Bio = "novo bio"
	svc.EXPECT().UpdateProfile(gomock.Any(), api.ProfileUpdate{Bio: "novo bio"}).Return(updated, nil)

	result := m.UpdateProfile(context.Background(), api.ProfileUpdate{Bio: "novo bio"})

	assert.True(t, result.Success)
	user, _ := m.User()
	assert.Equal(t, "novo bio", user.Bio)

	sess, _, _ := store.Load()
	var cached api.User
	require.NoError(t, json.Unmarshal(sess.User, &cached))
	assert.Equal(t, "novo bio", cached.Bio)
	assert.Equal(t, "jwt-1", sess.Token, "token survives a profile refresh")
}

func TestChangePassword_Failure(t *testing.T) {
	m, svc, _ := newManager(t)

	svc.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).
		Return(apierrors.New(apierrors.CodeBadRequest, "Senha atual incorreta"))

	result := m.ChangePassword(context.Background(), api.PasswordChange{
		CurrentPassword: "errada", NewPassword: "NovaSenha1",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Senha atual incorreta", result.Error)
}

func TestForceAnonymous(t *testing.T) {
	m, svc, _ := newManager(t)
	svc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(api.TokenResponse{AccessToken: "jwt-1", User: adminUser()}, nil)
	require.True(t, m.Login(context.Background(), api.Credentials{}).Success)

	m.ForceAnonymous()

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.IsAuthenticated())
}
