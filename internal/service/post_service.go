package service

import (
	"context"
	"errors"

	"blogapi/internal/logger"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

var (
	// ErrNoPosts is returned when the posts table is empty.
	ErrNoPosts = errors.New("no posts are available")
	// ErrNotPersisted is returned when a write did not affect exactly one row.
	ErrNotPersisted = errors.New("post not persisted")
)

// PostService handles post CRUD operations. A write succeeds only when the
// store reports exactly one affected row; anything else is a failure.
type PostService interface {
	GetAll(ctx context.Context) ([]model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, post *model.Post) error
}

type postService struct {
	postRepo repository.PostRepository
	log      *logger.Logger
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, log *logger.Logger) PostService {
	return &postService{
		postRepo: postRepo,
		log:      log,
	}
}

// GetAll returns every post, or ErrNoPosts when none exist.
func (s *postService) GetAll(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}
	return posts, nil
}

// Create inserts the post; the store assigns the id.
func (s *postService) Create(ctx context.Context, post *model.Post) error {
	rows, err := s.postRepo.Create(ctx, post)
	return s.checkPersisted("create post", post, rows, err)
}

// Update replaces title and body of the row identified by post.ID.
func (s *postService) Update(ctx context.Context, post *model.Post) error {
	rows, err := s.postRepo.Update(ctx, post)
	return s.checkPersisted("update post", post, rows, err)
}

// Delete removes the row identified by post.ID.
func (s *postService) Delete(ctx context.Context, post *model.Post) error {
	rows, err := s.postRepo.Delete(ctx, post)
	return s.checkPersisted("delete post", post, rows, err)
}

// checkPersisted enforces the exactly-one-row rule and records the failure
// along with the attempted post. Store errors are logged, never surfaced.
func (s *postService) checkPersisted(op string, post *model.Post, rows int64, err error) error {
	if err == nil && rows == 1 {
		return nil
	}
	s.log.Error(op+" failed",
		"error", err,
		"rows_affected", rows,
		"post_id", post.ID,
		"post_title", post.Title,
		"post_body", post.Body,
	)
	return ErrNotPersisted
}
