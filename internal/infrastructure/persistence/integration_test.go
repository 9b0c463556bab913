package persistence

import (
	"context"
	"testing"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/catalog"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/community"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/identity"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/registration"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDatabase opens a fresh in-memory SQLite store. A single
// connection keeps every query on the same in-memory database.
func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(&config.DatabaseConfig{
		Driver:          "sqlite",
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 60,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate())
	return db
}

func createTestUser(t *testing.T, db *Database, email string) *identity.User {
	t.Helper()

	user, err := identity.NewUser("Test User", email, "secret123")
	require.NoError(t, err)
	require.NoError(t, NewGormUserRepository(db.DB).Create(context.Background(), user))
	return user
}

func createTestPost(t *testing.T, db *Database, userID int64) *community.Post {
	t.Helper()

	post, err := community.NewPost(userID, "test post", "test content", "General Discussion")
	require.NoError(t, err)
	require.NoError(t, NewGormPostRepository(db.DB).Create(context.Background(), post))
	return post
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormUserRepository(db.DB)
	ctx := context.Background()

	user := createTestUser(t, db, "jane@example.com")
	require.NotZero(t, user.ID)

	t.Run("find by id and email", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", found.Email)
		assert.True(t, found.VerifyPassword("secret123"))

		found, err = repo.FindByEmail(ctx, "JANE@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup, err := identity.NewUser("Other", "jane@example.com", "secret456")
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("update persists profile fields", func(t *testing.T) {
		require.NoError(t, user.UpdateProfile("Jane Smith", "+263771234567", "bio", "img.png"))
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", found.FullName)
		assert.Equal(t, "bio", found.Bio)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestToggleLike(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormPostRepository(db.DB)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	post := createTestPost(t, db, alice.ID)

	t.Run("first toggle likes", func(t *testing.T) {
		res, err := repo.ToggleLike(ctx, post.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.Equal(t, int64(1), res.LikesCount)
	})

	t.Run("second toggle unlikes", func(t *testing.T) {
		res, err := repo.ToggleLike(ctx, post.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.Equal(t, int64(0), res.LikesCount)
	})

	t.Run("count tracks distinct users", func(t *testing.T) {
		_, err := repo.ToggleLike(ctx, post.ID, alice.ID)
		require.NoError(t, err)
		res, err := repo.ToggleLike(ctx, post.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.LikesCount)

		found, err := repo.FindByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), found.LikesCount)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := repo.ToggleLike(ctx, 9999, bob.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPostOwnershipGuards(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormPostRepository(db.DB)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	post := createTestPost(t, db, alice.ID)

	t.Run("owner can edit", func(t *testing.T) {
		edited := *post
		edited.Title = "edited"
		require.NoError(t, repo.UpdateOwned(ctx, &edited, alice.ID))

		found, err := repo.FindByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "edited", found.Title)
	})

	t.Run("non-owner edit is indistinguishable from missing", func(t *testing.T) {
		edited := *post
		err := repo.UpdateOwned(ctx, &edited, bob.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		missing := *post
		missing.ID = 9999
		err = repo.UpdateOwned(ctx, &missing, alice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := repo.DeleteOwned(ctx, post.ID, bob.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("owner delete cascades", func(t *testing.T) {
		comment, err := community.NewComment(post.ID, bob.ID, "nice")
		require.NoError(t, err)
		require.NoError(t, repo.AddComment(ctx, comment))
		_, err = repo.ToggleLike(ctx, post.ID, bob.ID)
		require.NoError(t, err)

		require.NoError(t, repo.DeleteOwned(ctx, post.ID, alice.ID))
		_, err = repo.FindByID(ctx, post.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		comments, err := repo.FindCommentsByPostID(ctx, post.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestCommentCountRecompute(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormPostRepository(db.DB)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	post := createTestPost(t, db, alice.ID)

	first, err := community.NewComment(post.ID, bob.ID, "first")
	require.NoError(t, err)
	require.NoError(t, repo.AddComment(ctx, first))
	assert.Equal(t, "Test User", first.AuthorName)

	second, err := community.NewComment(post.ID, alice.ID, "second")
	require.NoError(t, err)
	require.NoError(t, repo.AddComment(ctx, second))

	found, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.CommentsCount)
	require.Len(t, found.Comments, 2)
	assert.Equal(t, "first", found.Comments[0].Content)

	t.Run("author only deletion", func(t *testing.T) {
		err := repo.DeleteOwnedComment(ctx, first.ID, alice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		require.NoError(t, repo.DeleteOwnedComment(ctx, first.ID, bob.ID))
		found, err := repo.FindByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), found.CommentsCount)
	})

	t.Run("comment on missing post", func(t *testing.T) {
		orphan, err := community.NewComment(9999, bob.ID, "lost")
		require.NoError(t, err)
		err = repo.AddComment(ctx, orphan)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPostListingOrder(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormPostRepository(db.DB)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	first := createTestPost(t, db, alice.ID)
	second := createTestPost(t, db, alice.ID)

	require.NoError(t, db.DB.Table("community_posts").
		Where("id = ?", first.ID).
		UpdateColumn("is_pinned", true).Error)

	posts, err := repo.FindAll(ctx, community.PostFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, first.ID, posts[0].ID, "pinned post sorts first")
	assert.Equal(t, second.ID, posts[1].ID)
	assert.Equal(t, "Test User", posts[0].AuthorName)

	byCategory, err := repo.FindByCategory(ctx, "General Discussion")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	empty, err := repo.FindByCategory(ctx, "Questions")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCategorySeedIsIdempotent(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormCategoryRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, db.SeedCategories(ctx))
	require.NoError(t, db.SeedCategories(ctx))

	categories, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(community.DefaultCategories()))
}

func TestRegistrationRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormRegistrationRepository(db.DB)
	ctx := context.Background()

	reg, err := registration.New("Jane", "jane@example.com", "+1", "1990-04-01", "addr", "starter")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, reg))
	require.NotZero(t, reg.ID)

	t.Run("duplicate email allowed", func(t *testing.T) {
		again, err := registration.New("Jane", "jane@example.com", "+1", "1990-04-01", "addr", "starter")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, again))
		assert.NotEqual(t, reg.ID, again.ID)
	})

	t.Run("status update persists", func(t *testing.T) {
		require.NoError(t, reg.UpdateStatus("paid", true, "deposit received"))
		require.NoError(t, repo.Update(ctx, reg))

		found, err := repo.FindByID(ctx, reg.ID)
		require.NoError(t, err)
		assert.Equal(t, registration.StatusPaid, found.Status)
		assert.True(t, found.PaymentConfirmed)
		assert.Equal(t, "deposit received", found.Notes)
	})

	t.Run("missing registration", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		ghost := *reg
		ghost.ID = 9999
		err = repo.Update(ctx, &ghost)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestExchangeRateSeries(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormExchangeRateRepository(db.DB)
	ctx := context.Background()

	admin := createTestUser(t, db, "admin@example.com")

	t.Run("empty series", func(t *testing.T) {
		_, err := repo.Current(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	first, err := catalog.NewExchangeRate(decimal.NewFromFloat(17.00), admin.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, first))

	second, err := catalog.NewExchangeRate(decimal.NewFromFloat(18.50), admin.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, second))

	t.Run("current is the newest row", func(t *testing.T) {
		current, err := repo.Current(ctx)
		require.NoError(t, err)
		assert.True(t, current.Rate.Equal(decimal.NewFromFloat(18.50)))
	})

	t.Run("history is append only", func(t *testing.T) {
		history, err := repo.History(ctx, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.True(t, history[0].Rate.Equal(decimal.NewFromFloat(18.50)))
		assert.True(t, history[1].Rate.Equal(decimal.NewFromFloat(17.00)))

		limited, err := repo.History(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}

func TestAnnouncementRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormAnnouncementRepository(db.DB)
	ctx := context.Background()

	admin := createTestUser(t, db, "admin@example.com")

	a, err := catalog.NewAnnouncement(admin.ID, "Launch", "news", "We are live", "", false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, a))

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", found.AuthorName)

	require.NoError(t, found.Edit("Launch week", "news", "Updated copy", "", true))
	require.NoError(t, repo.Update(ctx, found))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Launch week", all[0].Title)
	assert.True(t, all[0].IsPinned)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), shared.ErrNotFound)
}

func TestProductRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	admin := createTestUser(t, db, "admin@example.com")

	p, err := catalog.NewProduct(admin.ID, "Amber Oud", "50ml", []string{"a.jpg", "b.jpg"})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, products[0].ImageURLs)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), shared.ErrNotFound)
}
