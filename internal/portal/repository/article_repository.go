package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/portal/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleRepository defines the interface for article data operations.
type ArticleRepository interface {
	UpsertBySlug(ctx context.Context, article *entity.Article) error
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)
	FindAll(ctx context.Context, filter dto.ContentFilter) ([]entity.Article, error)
	DeleteBySlug(ctx context.Context, slug string) error
	DeleteAll(ctx context.Context) error
}

// NewArticleRepository creates a new GORM-based article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

type articleRepository struct {
	db *gorm.DB
}

// UpsertBySlug inserts the article or updates the existing row with the same
// slug in place, preserving its id.
func (r *articleRepository) UpsertBySlug(ctx context.Context, article *entity.Article) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "content", "excerpt", "category_id", "author",
			"published_at", "featured", "tags", "updated_at",
		}),
	}).Create(article).Error
}

// FindBySlug retrieves an article by its slug.
func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var article entity.Article
	if err := r.db.WithContext(ctx).Preload("Category").Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindAll retrieves articles matching the filter, most recent first. Search is
// a case-insensitive substring match across title, excerpt and content; the
// tag filter is array containment over the tags column.
func (r *articleRepository) FindAll(ctx context.Context, filter dto.ContentFilter) ([]entity.Article, error) {
	q := r.db.WithContext(ctx).Model(&entity.Article{}).Preload("Category")

	if filter.Category != "" {
		q = q.Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.slug = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(articles.title) LIKE ? OR LOWER(articles.excerpt) LIKE ? OR LOWER(articles.content) LIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Tag != "" {
		q = q.Where(tagContains(r.db, "tags", filter.Tag))
	}
	if filter.Featured != nil {
		q = q.Where("articles.featured = ?", *filter.Featured)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var articles []entity.Article
	if err := q.Order("articles.published_at DESC").Order("articles.id DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// DeleteBySlug removes an article by its slug.
func (r *articleRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&entity.Article{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll wipes the articles table. Used only by the destructive
// full-restore maintenance action.
func (r *articleRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Article{}).Error
}

// tagContains builds an array-containment condition for a JSON string-array
// column. Postgres gets a native jsonb containment; other dialects go through
// the datatypes helper.
func tagContains(db *gorm.DB, column, tag string) clause.Expression {
	if db.Dialector.Name() == "postgres" {
		raw, err := json.Marshal([]string{tag})
		if err != nil {
			raw = []byte("[]")
		}
		return gorm.Expr(column+" @> ?", datatypes.JSON(raw))
	}
	return datatypes.JSONArrayQuery(column).Contains(tag)
}

// IsUniqueViolation reports whether the error is a uniqueness-constraint
// violation. Writes normally go through upserts so this is a defensive check
// at the boundary, not an expected path.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "duplicate key")
}
