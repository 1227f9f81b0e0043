package repository

import (
	"context"

	"gorm.io/gorm"

	"blogapi/internal/model"
)

// PostRepository defines post persistence operations. Write operations
// return the affected-row count, which callers use as the sole success
// signal.
type PostRepository interface {
	FindAll(ctx context.Context) ([]model.Post, error)
	Create(ctx context.Context, post *model.Post) (int64, error)
	Update(ctx context.Context, post *model.Post) (int64, error)
	Delete(ctx context.Context, post *model.Post) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// FindAll returns every post in store order.
func (r *postRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts a post; the store assigns its id.
func (r *postRepository) Create(ctx context.Context, post *model.Post) (int64, error) {
	tx := r.db.WithContext(ctx).Create(post)
	return tx.RowsAffected, tx.Error
}

// Update replaces title and body of the row identified by post.ID.
func (r *postRepository) Update(ctx context.Context, post *model.Post) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{"title": post.Title, "body": post.Body})
	return tx.RowsAffected, tx.Error
}

// Delete removes the row identified by post.ID.
func (r *postRepository) Delete(ctx context.Context, post *model.Post) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", post.ID).Delete(&model.Post{})
	return tx.RowsAffected, tx.Error
}
