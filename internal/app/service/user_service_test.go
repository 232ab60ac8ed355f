package service_test

import (
	"context"
	"testing"

	"blogapi/internal/app/service"
	"blogapi/internal/common"
	"blogapi/internal/common/security"
	"blogapi/internal/domain/model"
	"blogapi/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newUserFixture(t *testing.T) (*service.UserService, repository.UserRepository, *bun.DB, *model.User) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewBunUserRepository(db)

	hash, err := security.HashPassword("password123")
	require.NoError(t, err)

	user := &model.User{
		Email:        "a@x.com",
		FirstName:    "Ada",
		LastName:     strPtr("Lovelace"),
		PasswordHash: hash,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return service.NewUserService(userRepo), userRepo, db, user
}

func TestProfileWithPosts(t *testing.T) {
	users, _, db, user := newUserFixture(t)
	ctx := context.Background()

	postRepo := repository.NewBunPostRepository(db)
	posts := service.NewPostService(postRepo)
	_, err := posts.Create(ctx, user.ID, service.CreatePostRequest{Title: "First post"})
	require.NoError(t, err)

	got, err := users.Profile(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.PasswordHash)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "First post", got.Posts[0].Title)
}

func TestProfileUnknownUser(t *testing.T) {
	users, _, _, _ := newUserFixture(t)

	_, err := users.Profile(context.Background(), 9999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateProfileFirstName(t *testing.T) {
	users, _, _, user := newUserFixture(t)

	got, err := users.UpdateProfile(context.Background(), user.ID, service.UpdateProfileRequest{
		FirstName: strPtr("Augusta"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", got.FirstName)
	require.NotNil(t, got.LastName)
	assert.Equal(t, "Lovelace", *got.LastName)
}

func TestUpdateProfileEmptyFirstNameIgnored(t *testing.T) {
	users, _, _, user := newUserFixture(t)

	// An empty first name is not an update, so nothing changes at all.
	_, err := users.UpdateProfile(context.Background(), user.ID, service.UpdateProfileRequest{
		FirstName: strPtr(""),
	})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestUpdateProfileClearLastName(t *testing.T) {
	users, userRepo, _, user := newUserFixture(t)
	ctx := context.Background()

	got, err := users.UpdateProfile(ctx, user.ID, service.UpdateProfileRequest{
		LastName: service.OptionalString{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, got.LastName)

	stored, err := userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.LastName)
}

func TestUpdateProfilePassword(t *testing.T) {
	users, userRepo, _, user := newUserFixture(t)
	ctx := context.Background()

	_, err := users.UpdateProfile(ctx, user.ID, service.UpdateProfileRequest{
		Password: strPtr("newpassword456"),
	})
	require.NoError(t, err)

	stored, err := userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, security.CheckPasswordHash("newpassword456", stored.PasswordHash))
	assert.False(t, security.CheckPasswordHash("password123", stored.PasswordHash))
}

func TestUpdateProfileNoFields(t *testing.T) {
	users, userRepo, _, user := newUserFixture(t)
	ctx := context.Background()

	_, err := users.UpdateProfile(ctx, user.ID, service.UpdateProfileRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
	assert.Contains(t, err.Error(), "No fields to update")

	// The stored user is untouched.
	stored, err := userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.FirstName)
	assert.True(t, security.CheckPasswordHash("password123", stored.PasswordHash))
}
