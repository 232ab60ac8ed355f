package database

import (
	"blogapi/internal/domain/model"
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the users and posts tables if they do not exist.
// Constraint enforcement (email uniqueness, post-author linkage) belongs to
// the store, so the foreign key is declared here rather than checked in code.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*model.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*model.Post)(nil)).
		IfNotExists().
		ForeignKey(`("author_id") REFERENCES "users" ("id")`).
		Exec(ctx); err != nil {
		return fmt.Errorf("creating posts table: %w", err)
	}

	return nil
}
