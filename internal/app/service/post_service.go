package service

import (
	"blogapi/internal/common"
	"blogapi/internal/domain/model"
	"blogapi/internal/domain/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

type CreatePostRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// AuthorSummary is the slice of the author exposed on public post listings.
type AuthorSummary struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type PostSummary struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Content   *string        `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	Author    *AuthorSummary `json:"author,omitempty"`
}

// Create persists a new post owned by authorID. Ownership is established
// here, not verified: the author comes straight from the resolved identity.
func (s *PostService) Create(ctx context.Context, authorID int64, req CreatePostRequest) (*model.Post, error) {
	if req.Title == "" {
		return nil, common.WithMessage(common.ErrBadRequest, "Title is required")
	}

	post := &model.Post{
		Title:    req.Title,
		Slug:     slug.Make(req.Title),
		Content:  req.Content,
		AuthorID: authorID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// List returns all posts, newest first, each with an author summary.
func (s *PostService) List(ctx context.Context) ([]PostSummary, error) {
	posts, err := s.postRepo.ListWithAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	summaries := make([]PostSummary, 0, len(posts))
	for _, post := range posts {
		summary := PostSummary{
			ID:        post.ID,
			Title:     post.Title,
			Slug:      post.Slug,
			Content:   post.Content,
			CreatedAt: post.CreatedAt,
		}
		if post.Author != nil {
			summary.Author = &AuthorSummary{
				ID:        post.Author.ID,
				FirstName: post.Author.FirstName,
				LastName:  post.Author.LastName,
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Delete removes a post after an ownership check. The fetch decides between
// 404 and 403; the delete itself is conditional on ownership so a concurrent
// removal cannot slip through between check and act.
func (s *PostService) Delete(ctx context.Context, requesterID, postID int64) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.WithMessage(common.ErrNotFound, "Post not found")
		}
		return fmt.Errorf("failed to find post: %w", err)
	}

	if post.AuthorID != requesterID {
		return common.WithMessage(common.ErrForbidden, "You are not allowed to delete this post")
	}

	deleted, err := s.postRepo.DeleteOwned(ctx, postID, requesterID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !deleted {
		return common.WithMessage(common.ErrNotFound, "Post not found")
	}
	return nil
}
