package model

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Title     string    `bun:"title,notnull" json:"title"`
	Slug      string    `bun:"slug,notnull" json:"slug"`
	Content   *string   `bun:"content" json:"content"`
	AuthorID  int64     `bun:"author_id,notnull" json:"authorId"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`

	Author *User `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
}

var _ bun.BeforeAppendModelHook = (*Post)(nil)

func (p *Post) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery:
		now := time.Now()
		p.CreatedAt = now
		p.UpdatedAt = now
	case *bun.UpdateQuery:
		p.UpdatedAt = time.Now()
	}
	return nil
}
