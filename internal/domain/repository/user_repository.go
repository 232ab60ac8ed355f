package repository

import (
	"blogapi/internal/common"
	"blogapi/internal/domain/model"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByIDWithPosts(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User, columns ...string) error
}

type bunUserRepository struct {
	db bun.IDB
}

func NewBunUserRepository(db bun.IDB) UserRepository {
	return &bunUserRepository{db: db}
}

func (r *bunUserRepository) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("bunUserRepository.Create: %w", err)
	}
	return nil
}

func (r *bunUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.db.NewSelect().Model(user).Where("u.email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("bunUserRepository.FindByEmail: %w", err)
	}
	return user, nil
}

func (r *bunUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	err := r.db.NewSelect().Model(user).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("bunUserRepository.FindByID: %w", err)
	}
	return user, nil
}

func (r *bunUserRepository) FindByIDWithPosts(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	err := r.db.NewSelect().
		Model(user).
		Relation("Posts", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("created_at DESC")
		}).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("bunUserRepository.FindByIDWithPosts: %w", err)
	}
	return user, nil
}

// Update writes only the named columns of the given user.
func (r *bunUserRepository) Update(ctx context.Context, user *model.User, columns ...string) error {
	_, err := r.db.NewUpdate().
		Model(user).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("bunUserRepository.Update: %w", err)
	}
	return nil
}

// isUniqueViolation recognizes a unique-constraint failure from either wired
// dialect: pgx surfaces SQLSTATE 23505, sqlite a "UNIQUE constraint failed"
// message.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
