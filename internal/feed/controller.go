// Package feed manages the Connect view state: the post list, the featured
// portfolios, and the comment surface of one open post. Like and vote
// actions mutate local state optimistically before the server confirms;
// a failed call restores the prior snapshot so local state never drifts
// from the server silently.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"acodelab/internal/api"

	"golang.org/x/sync/errgroup"
)

// Service is the slice of the Connect API the controller consumes.
type Service interface {
	Posts(ctx context.Context, params api.ListParams) ([]api.Post, error)
	CreatePost(ctx context.Context, post api.PostCreate) (api.Post, error)
	LikePost(ctx context.Context, id string) error
	Comments(ctx context.Context, postID string) ([]api.Comment, error)
	CreateComment(ctx context.Context, postID string, comment api.CommentCreate) (api.Comment, error)
	LikeComment(ctx context.Context, commentID string) error
	FeaturedPortfolios(ctx context.Context) ([]api.Portfolio, error)
	VotePortfolio(ctx context.Context, portfolioID string) error
}

// Controller holds the rendered feed state. All mutations take the write
// lock, so the replace-by-id passes cannot interleave even though callers
// run on arbitrary goroutines.
type Controller struct {
	mu         sync.RWMutex
	svc        Service
	logger     *slog.Logger
	posts      []api.Post
	portfolios []api.Portfolio

	// Comment surface of the one open post, in server order.
	openPostID string
	comments   []api.Comment
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewController(svc Service, opts ...Option) *Controller {
	c := &Controller{
		svc:    svc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh fetches posts and featured portfolios in parallel and replaces
// the local lists wholesale. Either fetch failing fails the refresh.
func (c *Controller) Refresh(ctx context.Context) error {
	var (
		posts      []api.Post
		portfolios []api.Portfolio
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = c.svc.Posts(ctx, api.ListParams{})
		return err
	})
	g.Go(func() error {
		var err error
		portfolios, err = c.svc.FeaturedPortfolios(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh feed: %w", err)
	}

	c.mu.Lock()
	c.posts = posts
	c.portfolios = portfolios
	c.mu.Unlock()
	return nil
}

// Posts returns a copy of the rendered post list.
func (c *Controller) Posts() []api.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]api.Post(nil), c.posts...)
}

// Portfolios returns a copy of the rendered portfolio list.
func (c *Controller) Portfolios() []api.Portfolio {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]api.Portfolio(nil), c.portfolios...)
}

// Comments returns a copy of the open post's comment list.
func (c *Controller) Comments() []api.Comment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]api.Comment(nil), c.comments...)
}

// CreatePost publishes a post and reloads the whole feed, mirroring the
// original flow of refetching after a create.
func (c *Controller) CreatePost(ctx context.Context, post api.PostCreate) error {
	if _, err := c.svc.CreatePost(ctx, post); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// LikePost flips the post's liked state locally before the request is
// issued. On failure the snapshot is restored and the error returned so the
// view can surface it.
func (c *Controller) LikePost(ctx context.Context, postID string) error {
	snapshot, ok := c.mutatePost(postID, func(p *api.Post) {
		p.IsLiked = true
		p.LikesCount++
	})
	if !ok {
		return fmt.Errorf("like post: post %s not in feed", postID)
	}

	if err := c.svc.LikePost(ctx, postID); err != nil {
		c.restorePost(snapshot)
		c.logger.Warn("like rolled back", "post_id", postID, "error", err)
		return err
	}
	return nil
}

// VotePortfolio is the same optimistic flow keyed by portfolio id.
func (c *Controller) VotePortfolio(ctx context.Context, portfolioID string) error {
	snapshot, ok := c.mutatePortfolio(portfolioID, func(p *api.Portfolio) {
		p.HasVoted = true
		p.Votes++
	})
	if !ok {
		return fmt.Errorf("vote portfolio: portfolio %s not in feed", portfolioID)
	}

	if err := c.svc.VotePortfolio(ctx, portfolioID); err != nil {
		c.restorePortfolio(snapshot)
		c.logger.Warn("vote rolled back", "portfolio_id", portfolioID, "error", err)
		return err
	}
	return nil
}

// OpenComments loads the comment sequence for a post. The server returns
// comments oldest-first; they are kept exactly in that order.
func (c *Controller) OpenComments(ctx context.Context, postID string) ([]api.Comment, error) {
	comments, err := c.svc.Comments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	c.mu.Lock()
	c.openPostID = postID
	c.comments = comments
	c.mu.Unlock()
	return append([]api.Comment(nil), comments...), nil
}

// SubmitComment posts a comment, refetches the full comment sequence
// instead of splicing locally, and bumps the parent post's cached count.
func (c *Controller) SubmitComment(ctx context.Context, postID, content string) error {
	if _, err := c.svc.CreateComment(ctx, postID, api.CommentCreate{Content: content}); err != nil {
		return err
	}

	if _, err := c.OpenComments(ctx, postID); err != nil {
		return err
	}

	c.mutatePost(postID, func(p *api.Post) {
		p.CommentsCount++
	})
	return nil
}

// LikeComment likes a comment and refetches the open post's comments;
// comment like counts are never mutated locally.
func (c *Controller) LikeComment(ctx context.Context, commentID string) error {
	if err := c.svc.LikeComment(ctx, commentID); err != nil {
		return err
	}

	c.mu.RLock()
	postID := c.openPostID
	c.mu.RUnlock()
	if postID == "" {
		return nil
	}
	_, err := c.OpenComments(ctx, postID)
	return err
}

// mutatePost applies fn to the post with the given id and returns the
// pre-mutation snapshot for rollback.
func (c *Controller) mutatePost(postID string, fn func(*api.Post)) (api.Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ID == postID {
			snapshot := c.posts[i]
			fn(&c.posts[i])
			return snapshot, true
		}
	}
	return api.Post{}, false
}

func (c *Controller) restorePost(snapshot api.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ID == snapshot.ID {
			c.posts[i] = snapshot
			return
		}
	}
}

func (c *Controller) mutatePortfolio(portfolioID string, fn func(*api.Portfolio)) (api.Portfolio, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.portfolios {
		if c.portfolios[i].ID == portfolioID {
			snapshot := c.portfolios[i]
			fn(&c.portfolios[i])
			return snapshot, true
		}
	}
	return api.Portfolio{}, false
}

func (c *Controller) restorePortfolio(snapshot api.Portfolio) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.portfolios {
		if c.portfolios[i].ID == snapshot.ID {
			c.portfolios[i] = snapshot
			return
		}
	}
}
