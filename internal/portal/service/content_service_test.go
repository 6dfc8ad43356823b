package service

import (
	"context"
	"testing"
	"time"

	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentFixture(t *testing.T) ContentService {
	t.Helper()
	db := setupTestDB(t)
	log := testLogger(t)
	return NewContentService(
		repository.NewArticleRepository(db),
		repository.NewEventRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewStaffRepository(db),
		repository.NewProgramRepository(db),
		repository.NewResourceRepository(db),
		log,
	)
}

func TestUpsertArticleValidation(t *testing.T) {
	svc := newContentFixture(t)
	ctx := context.Background()

	_, err := svc.UpsertArticle(ctx, &dto.UpsertArticleRequest{Title: "No Slug"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertArticle(ctx, &dto.UpsertArticleRequest{Slug: "no-title"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpsertArticleUnknownCategory(t *testing.T) {
	svc := newContentFixture(t)

	_, err := svc.UpsertArticle(context.Background(), &dto.UpsertArticleRequest{
		Slug:     "orphan",
		Title:    "Orphan",
		Category: "does-not-exist",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpsertArticleResolvesCategory(t *testing.T) {
	svc := newContentFixture(t)
	ctx := context.Background()

	category, err := svc.UpsertCategory(ctx, &dto.UpsertCategoryRequest{Slug: "analysis", Name: "Analysis"})
	require.NoError(t, err)

	article, err := svc.UpsertArticle(ctx, &dto.UpsertArticleRequest{
		Slug:     "debt-brief",
		Title:    "Debt Brief",
		Category: "analysis",
		Tags:     []string{"debt"},
	})
	require.NoError(t, err)
	require.NotNil(t, article.CategoryID)
	assert.Equal(t, category.ID, *article.CategoryID)

	found, err := svc.GetArticle(ctx, "debt-brief")
	require.NoError(t, err)
	require.NotNil(t, found.Category)
	assert.Equal(t, "analysis", found.Category.Slug)
}

func TestGetArticleNotFound(t *testing.T) {
	svc := newContentFixture(t)

	_, err := svc.GetArticle(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteArticleNotFound(t *testing.T) {
	svc := newContentFixture(t)

	err := svc.DeleteArticle(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertEventValidation(t *testing.T) {
	svc := newContentFixture(t)
	ctx := context.Background()

	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)

	_, err := svc.UpsertEvent(ctx, &dto.UpsertEventRequest{Slug: "no-start", Title: "No Start"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertEvent(ctx, &dto.UpsertEventRequest{
		Slug:      "backwards",
		Title:     "Backwards",
		StartDate: start,
		EndDate:   &before,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertEvent(ctx, &dto.UpsertEventRequest{
		Slug:      "town-hall",
		Title:     "Town Hall",
		StartDate: start,
	})
	require.NoError(t, err)
}

func TestDeleteCategoryGuardsReferences(t *testing.T) {
	svc := newContentFixture(t)
	ctx := context.Background()

	_, err := svc.UpsertCategory(ctx, &dto.UpsertCategoryRequest{Slug: "analysis", Name: "Analysis"})
	require.NoError(t, err)
	_, err = svc.UpsertArticle(ctx, &dto.UpsertArticleRequest{Slug: "brief", Title: "Brief", Category: "analysis"})
	require.NoError(t, err)

	err = svc.DeleteCategory(ctx, "analysis")
	assert.ErrorIs(t, err, ErrConstraint)

	require.NoError(t, svc.DeleteArticle(ctx, "brief"))
	require.NoError(t, svc.DeleteCategory(ctx, "analysis"))

	err = svc.DeleteCategory(ctx, "analysis")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProgramNotFound(t *testing.T) {
	svc := newContentFixture(t)

	err := svc.DeleteProgram(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertStaffValidation(t *testing.T) {
	svc := newContentFixture(t)

	_, err := svc.UpsertStaff(context.Background(), &dto.UpsertStaffRequest{Name: "No Position"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteStaffNotFound(t *testing.T) {
	svc := newContentFixture(t)

	err := svc.DeleteStaff(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertResourceValidation(t *testing.T) {
	svc := newContentFixture(t)

	_, err := svc.UpsertResource(context.Background(), &dto.UpsertResourceRequest{Title: "No URL"})
	assert.ErrorIs(t, err, ErrValidation)
}
