package repository

import (
	"blogapi/internal/common"
	"blogapi/internal/domain/model"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	ListWithAuthors(ctx context.Context) ([]*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	// DeleteOwned deletes the post only if it is owned by authorID and
	// reports whether a row was actually removed.
	DeleteOwned(ctx context.Context, id, authorID int64) (bool, error)
}

type bunPostRepository struct {
	db bun.IDB
}

func NewBunPostRepository(db bun.IDB) PostRepository {
	return &bunPostRepository{db: db}
}

func (r *bunPostRepository) Create(ctx context.Context, post *model.Post) error {
	_, err := r.db.NewInsert().Model(post).Exec(ctx)
	if err != nil {
		return fmt.Errorf("bunPostRepository.Create: %w", err)
	}
	return nil
}

func (r *bunPostRepository) ListWithAuthors(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.NewSelect().
		Model(&posts).
		Relation("Author").
		Order("p.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("bunPostRepository.ListWithAuthors: %w", err)
	}
	return posts, nil
}

func (r *bunPostRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	post := &model.Post{}
	err := r.db.NewSelect().Model(post).Where("p.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("bunPostRepository.FindByID: %w", err)
	}
	return post, nil
}

func (r *bunPostRepository) DeleteOwned(ctx context.Context, id, authorID int64) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*model.Post)(nil)).
		Where("id = ? AND author_id = ?", id, authorID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("bunPostRepository.DeleteOwned: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("bunPostRepository.DeleteOwned: %w", err)
	}
	return affected > 0, nil
}
