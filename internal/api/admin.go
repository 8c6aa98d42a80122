package api

import (
	"context"

	"acodelab/internal/gateway"
)

// AdminService wraps the admin endpoints. The server enforces the admin
// role; these calls fail with forbidden for everyone else.
type AdminService struct {
	api Doer
}

func (s *AdminService) Users(ctx context.Context, params ListParams) ([]User, error) {
	var out []User
	err := s.api.Get(ctx, "/api/admin/users", params.values(), &out)
	return out, err
}

func (s *AdminService) UpdateUserRole(ctx context.Context, userID, role string) (User, error) {
	var out User
	err := s.api.Put(ctx, gateway.Path("api", "admin", "users", userID, "role"), RoleUpdate{Role: role}, &out)
	return out, err
}

func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	return s.api.Delete(ctx, gateway.Path("api", "admin", "users", userID), nil)
}

func (s *AdminService) Stats(ctx context.Context) (AdminStats, error) {
	var out AdminStats
	err := s.api.Get(ctx, "/api/admin/stats", nil, &out)
	return out, err
}

// SeedStore inserts the sample store items when the catalog is empty.
func (s *AdminService) SeedStore(ctx context.Context) error {
	return s.api.Post(ctx, "/api/admin/store/seed", nil, nil)
}
