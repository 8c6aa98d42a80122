package api

import (
	"context"

	"acodelab/internal/gateway"
)

// ArticlesService wraps the articles endpoints.
type ArticlesService struct {
	api Doer
}

func (s *ArticlesService) List(ctx context.Context, params ListParams) ([]Article, error) {
	var out []Article
	err := s.api.Get(ctx, "/api/articles", params.values(), &out)
	return out, err
}

func (s *ArticlesService) Get(ctx context.Context, id string) (Article, error) {
	var out Article
	err := s.api.Get(ctx, gateway.Path("api", "articles", id), nil, &out)
	return out, err
}

func (s *ArticlesService) Create(ctx context.Context, article ArticleCreate) (Article, error) {
	var out Article
	err := s.api.Post(ctx, "/api/articles", article, &out)
	return out, err
}

func (s *ArticlesService) Update(ctx context.Context, id string, article ArticleCreate) (Article, error) {
	var out Article
	err := s.api.Put(ctx, gateway.Path("api", "articles", id), article, &out)
	return out, err
}

func (s *ArticlesService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, gateway.Path("api", "articles", id), nil)
}

func (s *ArticlesService) Upvote(ctx context.Context, id string) error {
	return s.api.Post(ctx, gateway.Path("api", "articles", id, "upvote"), nil, nil)
}
