package repository

import (
	"context"
	"testing"
	"time"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/portal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedArticle(t *testing.T, repo ArticleRepository, slug, title string, tags ...string) *entity.Article {
	t.Helper()
	published := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	article := &entity.Article{
		Slug:        slug,
		Title:       title,
		Content:     "body of " + title,
		PublishedAt: &published,
		Tags:        datatypes.NewJSONSlice(tags),
	}
	require.NoError(t, repo.UpsertBySlug(context.Background(), article))
	return article
}

func TestArticleUpsertBySlugIdempotent(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()

	first := seedArticle(t, repo, "debt-report-2025", "Debt Report 2025")
	seedArticle(t, repo, "debt-report-2025", "Debt Report 2025 (revised)")

	found, err := repo.FindBySlug(ctx, "debt-report-2025")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "Debt Report 2025 (revised)", found.Title)
}

func TestArticleFindBySlugNotFound(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	_, err := repo.FindBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestArticleFindAllSearch(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()

	seedArticle(t, repo, "imf-review", "Third IMF Review Concluded")
	seedArticle(t, repo, "budget-2026", "Budget Statement 2026")

	articles, err := repo.FindAll(ctx, dto.ContentFilter{Search: "imf"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "imf-review", articles[0].Slug)
}

func TestArticleFindAllTagFilter(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()

	seedArticle(t, repo, "tagged", "Tagged", "debt", "imf")
	seedArticle(t, repo, "untagged", "Untagged", "budget")

	articles, err := repo.FindAll(ctx, dto.ContentFilter{Tag: "imf"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "tagged", articles[0].Slug)
}

func TestArticleFindAllCategoryAndLimit(t *testing.T) {
	db := setupTestDB(t)
	articleRepo := NewArticleRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &entity.Category{Slug: "analysis", Name: "Analysis"}
	require.NoError(t, categoryRepo.UpsertBySlug(ctx, category))

	for _, slug := range []string{"one", "two", "three"} {
		article := &entity.Article{
			Slug:       slug,
			Title:      "Analysis " + slug,
			CategoryID: &category.ID,
		}
		require.NoError(t, articleRepo.UpsertBySlug(ctx, article))
	}
	seedArticle(t, articleRepo, "other", "Uncategorized")

	articles, err := articleRepo.FindAll(ctx, dto.ContentFilter{Category: "analysis", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, articles, 2)
	for _, a := range articles {
		require.NotNil(t, a.CategoryID)
		assert.Equal(t, category.ID, *a.CategoryID)
	}
}

func TestArticleDeleteBySlug(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()

	seedArticle(t, repo, "to-delete", "To Delete")
	require.NoError(t, repo.DeleteBySlug(ctx, "to-delete"))
	assert.ErrorIs(t, repo.DeleteBySlug(ctx, "to-delete"), gorm.ErrRecordNotFound)
}

func TestArticleDeleteAll(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()

	seedArticle(t, repo, "a", "A")
	seedArticle(t, repo, "b", "B")
	require.NoError(t, repo.DeleteAll(ctx))

	articles, err := repo.FindAll(ctx, dto.ContentFilter{})
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestEventFindUpcoming(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	past := &entity.Event{Slug: "past-forum", Title: "Past Forum", StartDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)}
	future := &entity.Event{Slug: "town-hall", Title: "Town Hall", StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.UpsertBySlug(ctx, past))
	require.NoError(t, repo.UpsertBySlug(ctx, future))

	events, err := repo.FindUpcoming(ctx, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "town-hall", events[0].Slug)
}

func TestStaffUpsertByNameKeepsID(t *testing.T) {
	repo := NewStaffRepository(setupTestDB(t))
	ctx := context.Background()

	staff := &entity.Staff{Name: "Ama Mensah", Position: "Director", DisplayOrder: 1}
	require.NoError(t, repo.UpsertByName(ctx, staff))
	firstID := staff.ID

	updated := &entity.Staff{Name: "Ama Mensah", Position: "Executive Director", DisplayOrder: 1}
	require.NoError(t, repo.UpsertByName(ctx, updated))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, firstID, all[0].ID)
	assert.Equal(t, "Executive Director", all[0].Position)
}

func TestResourceUpsertByFileURL(t *testing.T) {
	repo := NewResourceRepository(setupTestDB(t))
	ctx := context.Background()

	resource := &entity.Resource{Title: "Debt Bulletin", FileURL: "/files/debt-bulletin.pdf"}
	require.NoError(t, repo.UpsertByFileURL(ctx, resource))
	require.NoError(t, repo.UpsertByFileURL(ctx, &entity.Resource{Title: "Debt Bulletin Q3", FileURL: "/files/debt-bulletin.pdf"}))

	resources, err := repo.FindAll(ctx, dto.ContentFilter{})
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Debt Bulletin Q3", resources[0].Title)
}
