package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"acodelab/internal/api"
	"acodelab/internal/gateway"
	"acodelab/internal/platform/config"
	"acodelab/internal/session"
	"acodelab/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T, stub *testutil.StubAPI) *api.Services {
	t.Helper()
	cfg := config.Client{BaseURL: stub.Server.URL, Timeout: 5 * time.Second}
	client := gateway.New(cfg, session.Accessor{Store: session.NewMemoryStore()})
	return api.NewServices(client)
}

func TestAuthService_LoginSeededAdmin(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodPost, "/api/auth/login", http.StatusOK, map[string]any{
		"access_token": "jwt-admin",
		"token_type":   "bearer",
		"user": map[string]any{
			"id":          "admin-1",
			"username":    "admin",
			"email":       "admin@acodelab.com",
			"role":        "admin",
			"is_admin":    true,
			"pcon_points": 100,
			"rank":        "Guru",
		},
	})

	svc := newServices(t, stub)
	resp, err := svc.Auth.Login(context.Background(), api.Credentials{
		Email:    "admin@acodelab.com",
		Password: "admin123",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-admin", resp.AccessToken)
	assert.Equal(t, "admin", resp.User.Role)
	assert.True(t, resp.User.HasRole(api.RoleAdmin))

	req := stub.LastRequest(t)
	assert.JSONEq(t, `{"email":"admin@acodelab.com","password":"admin123"}`, string(req.Body))
}

func TestQuestionsService_VotePayload(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodPost, "/api/questions/q1/vote", http.StatusOK, nil)

	svc := newServices(t, stub)
	require.NoError(t, svc.Questions.Vote(context.Background(), "q1", api.VoteUp))

	req := stub.LastRequest(t)
	assert.JSONEq(t, `{"vote_type":"up"}`, string(req.Body))
}

func TestConnectService_Paths(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodPost, "/api/connect/posts/p1/like", http.StatusOK, nil)
	stub.On(http.MethodGet, "/api/connect/posts/p1/comments", http.StatusOK, []any{})
	stub.On(http.MethodPost, "/api/connect/portfolios/pf1/vote", http.StatusOK, nil)

	svc := newServices(t, stub)
	ctx := context.Background()

	require.NoError(t, svc.Connect.LikePost(ctx, "p1"))
	_, err := svc.Connect.Comments(ctx, "p1")
	require.NoError(t, err)
	require.NoError(t, svc.Connect.VotePortfolio(ctx, "pf1"))

	reqs := stub.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "/api/connect/posts/p1/like", reqs[0].Path)
	assert.Equal(t, "/api/connect/posts/p1/comments", reqs[1].Path)
	assert.Equal(t, "/api/connect/portfolios/pf1/vote", reqs[2].Path)
}

func TestStoreService_PurchaseDefaultsQuantity(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodPost, "/api/store/items/item1/purchase", http.StatusOK, map[string]any{
		"id": "pur1", "item_id": "item1", "quantity": 1, "total_cost": 50,
	})

	svc := newServices(t, stub)
	purchase, err := svc.Store.Purchase(context.Background(), "item1", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, purchase.Quantity)
	assert.JSONEq(t, `{"quantity":1}`, string(stub.LastRequest(t).Body))
}

func TestListParams_Values(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodGet, "/api/jobs", http.StatusOK, []any{})

	svc := newServices(t, stub)
	_, err := svc.Jobs.List(context.Background(), api.ListParams{Skip: 20, Limit: 20, Search: "golang"})
	require.NoError(t, err)

	assert.Equal(t, "limit=20&search=golang&skip=20", stub.LastRequest(t).Query)
}
