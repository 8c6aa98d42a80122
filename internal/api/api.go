package api

import (
	"context"
	"net/url"
)

// Doer is the slice of the gateway the services call through. Tests
// substitute a mock; production code passes *gateway.Client.
type Doer interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Services bundles every domain service over one gateway.
type Services struct {
	Auth      *AuthService
	Questions *QuestionsService
	Connect   *ConnectService
	Store     *StoreService
	Jobs      *JobsService
	Articles  *ArticlesService
	Admin     *AdminService
}

func NewServices(doer Doer) *Services {
	return &Services{
		Auth:      &AuthService{api: doer},
		Questions: &QuestionsService{api: doer},
		Connect:   &ConnectService{api: doer},
		Store:     &StoreService{api: doer},
		Jobs:      &JobsService{api: doer},
		Articles:  &ArticlesService{api: doer},
		Admin:     &AdminService{api: doer},
	}
}
