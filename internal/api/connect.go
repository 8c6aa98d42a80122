package api

import (
	"context"

	"acodelab/internal/gateway"
)

// ConnectService wraps the social feed endpoints: posts, comments, and
// featured portfolios.
type ConnectService struct {
	api Doer
}

func (s *ConnectService) Posts(ctx context.Context, params ListParams) ([]Post, error) {
	var out []Post
	err := s.api.Get(ctx, "/api/connect/posts", params.values(), &out)
	return out, err
}

func (s *ConnectService) CreatePost(ctx context.Context, post PostCreate) (Post, error) {
	var out Post
	err := s.api.Post(ctx, "/api/connect/posts", post, &out)
	return out, err
}

func (s *ConnectService) UpdatePost(ctx context.Context, id string, post PostCreate) (Post, error) {
	var out Post
	err := s.api.Put(ctx, gateway.Path("api", "connect", "posts", id), post, &out)
	return out, err
}

func (s *ConnectService) DeletePost(ctx context.Context, id string) error {
	return s.api.Delete(ctx, gateway.Path("api", "connect", "posts", id), nil)
}

func (s *ConnectService) LikePost(ctx context.Context, id string) error {
	return s.api.Post(ctx, gateway.Path("api", "connect", "posts", id, "like"), nil, nil)
}

// Comments returns the post's comment sequence in server order (newest
// last); callers must not re-sort it.
func (s *ConnectService) Comments(ctx context.Context, postID string) ([]Comment, error) {
	var out []Comment
	err := s.api.Get(ctx, gateway.Path("api", "connect", "posts", postID, "comments"), nil, &out)
	return out, err
}

func (s *ConnectService) CreateComment(ctx context.Context, postID string, comment CommentCreate) (Comment, error) {
	var out Comment
	err := s.api.Post(ctx, gateway.Path("api", "connect", "posts", postID, "comments"), comment, &out)
	return out, err
}

func (s *ConnectService) LikeComment(ctx context.Context, commentID string) error {
	return s.api.Post(ctx, gateway.Path("api", "connect", "comments", commentID, "like"), nil, nil)
}

func (s *ConnectService) FeaturedPortfolios(ctx context.Context) ([]Portfolio, error) {
	var out []Portfolio
	err := s.api.Get(ctx, "/api/connect/portfolios/featured", nil, &out)
	return out, err
}

func (s *ConnectService) SubmitPortfolio(ctx context.Context, submission PortfolioSubmit) (Portfolio, error) {
	var out Portfolio
	err := s.api.Post(ctx, "/api/connect/portfolios/submit", submission, &out)
	return out, err
}

func (s *ConnectService) VotePortfolio(ctx context.Context, portfolioID string) error {
	return s.api.Post(ctx, gateway.Path("api", "connect", "portfolios", portfolioID, "vote"), nil, nil)
}
