package api

import "context"

// AuthService wraps the /api/auth endpoints.
type AuthService struct {
	api Doer
}

func (s *AuthService) Login(ctx context.Context, creds Credentials) (TokenResponse, error) {
	var out TokenResponse
	err := s.api.Post(ctx, "/api/auth/login", creds, &out)
	return out, err
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (TokenResponse, error) {
	var out TokenResponse
	err := s.api.Post(ctx, "/api/auth/register", req, &out)
	return out, err
}

// CurrentUser resolves the bearer token to its account. The auth manager
// calls this to verify a rehydrated session before trusting the cached user.
func (s *AuthService) CurrentUser(ctx context.Context) (User, error) {
	var out User
	err := s.api.Get(ctx, "/api/auth/me", nil, &out)
	return out, err
}

func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) (User, error) {
	var out User
	err := s.api.Put(ctx, "/api/auth/profile", update, &out)
	return out, err
}

func (s *AuthService) ChangePassword(ctx context.Context, change PasswordChange) error {
	return s.api.Put(ctx, "/api/auth/password", change, nil)
}
