package service

import (
	"context"
	"errors"
	"fmt"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/repository"
	"econgov-portal/pkg/logger"
	"econgov-portal/pkg/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentService is the write-and-read path for the content tables: articles,
// events, categories, staff, programs and resources. All writes are slug-keyed
// (or natural-key-keyed) upserts so admin forms and seed procedures share one
// idempotent contract.
type ContentService interface {
	UpsertArticle(ctx context.Context, req *dto.UpsertArticleRequest) (*entity.Article, error)
	GetArticle(ctx context.Context, slug string) (*entity.Article, error)
	ListArticles(ctx context.Context, filter dto.ContentFilter) ([]entity.Article, error)
	DeleteArticle(ctx context.Context, slug string) error

	UpsertEvent(ctx context.Context, req *dto.UpsertEventRequest) (*entity.Event, error)
	GetEvent(ctx context.Context, slug string) (*entity.Event, error)
	ListEvents(ctx context.Context, filter dto.ContentFilter) ([]entity.Event, error)
	ListUpcomingEvents(ctx context.Context, limit int) ([]entity.Event, error)
	DeleteEvent(ctx context.Context, slug string) error

	UpsertCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	DeleteCategory(ctx context.Context, slug string) error

	UpsertStaff(ctx context.Context, req *dto.UpsertStaffRequest) (*entity.Staff, error)
	GetStaff(ctx context.Context, id uint) (*entity.Staff, error)
	ListStaff(ctx context.Context) ([]entity.Staff, error)
	DeleteStaff(ctx context.Context, id uint) error

	UpsertProgram(ctx context.Context, req *dto.UpsertProgramRequest) (*entity.Program, error)
	ListPrograms(ctx context.Context) ([]entity.Program, error)
	DeleteProgram(ctx context.Context, slug string) error

	UpsertResource(ctx context.Context, req *dto.UpsertResourceRequest) (*entity.Resource, error)
	GetResource(ctx context.Context, id uint) (*entity.Resource, error)
	ListResources(ctx context.Context, filter dto.ContentFilter) ([]entity.Resource, error)
	DeleteResource(ctx context.Context, id uint) error
}

// NewContentService creates a new content service.
func NewContentService(
	articleRepo repository.ArticleRepository,
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	staffRepo repository.StaffRepository,
	programRepo repository.ProgramRepository,
	resourceRepo repository.ResourceRepository,
	log *logger.Logger,
) ContentService {
	return &contentService{
		articleRepo:  articleRepo,
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		staffRepo:    staffRepo,
		programRepo:  programRepo,
		resourceRepo: resourceRepo,
		logger:       log,
	}
}

type contentService struct {
	articleRepo  repository.ArticleRepository
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
	staffRepo    repository.StaffRepository
	programRepo  repository.ProgramRepository
	resourceRepo repository.ResourceRepository
	logger       *logger.Logger
}

// UpsertArticle validates and writes an article, resolving the category slug
// to its id. A missing category is a validation error, keeping referential
// integrity at the boundary.
func (s *contentService) UpsertArticle(ctx context.Context, req *dto.UpsertArticleRequest) (*entity.Article, error) {
	if req.Slug == "" || req.Title == "" {
		return nil, fmt.Errorf("%w: slug and title are required", ErrValidation)
	}

	article := &entity.Article{
		Slug:        req.Slug,
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		PublishedAt: req.PublishedAt,
		Featured:    req.Featured,
		Tags:        datatypes.NewJSONSlice(req.Tags),
	}

	if req.Category != "" {
		category, err := s.categoryRepo.FindBySlug(ctx, req.Category)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
		}
		if err != nil {
			return nil, err
		}
		article.CategoryID = &category.ID
	}

	if err := s.articleRepo.UpsertBySlug(ctx, article); err != nil {
		return nil, s.mapWriteError(err, "article", req.Slug)
	}
	return article, nil
}

// GetArticle retrieves an article by slug.
func (s *contentService) GetArticle(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := s.articleRepo.FindBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: article %q", ErrNotFound, slug)
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// ListArticles retrieves articles matching the filter.
func (s *contentService) ListArticles(ctx context.Context, filter dto.ContentFilter) ([]entity.Article, error) {
	return s.articleRepo.FindAll(ctx, filter)
}

// DeleteArticle removes an article by slug.
func (s *contentService) DeleteArticle(ctx context.Context, slug string) error {
	err := s.articleRepo.DeleteBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: article %q", ErrNotFound, slug)
	}
	return err
}

// UpsertEvent validates and writes an event.
func (s *contentService) UpsertEvent(ctx context.Context, req *dto.UpsertEventRequest) (*entity.Event, error) {
	if req.Slug == "" || req.Title == "" {
		return nil, fmt.Errorf("%w: slug and title are required", ErrValidation)
	}
	if req.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", ErrValidation)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end_date precedes start_date", ErrValidation)
	}

	event := &entity.Event{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Featured:    req.Featured,
	}
	if err := s.eventRepo.UpsertBySlug(ctx, event); err != nil {
		return nil, s.mapWriteError(err, "event", req.Slug)
	}
	return event, nil
}

// GetEvent retrieves an event by slug.
func (s *contentService) GetEvent(ctx context.Context, slug string) (*entity.Event, error) {
	event, err := s.eventRepo.FindBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: event %q", ErrNotFound, slug)
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents retrieves events matching the filter.
func (s *contentService) ListEvents(ctx context.Context, filter dto.ContentFilter) ([]entity.Event, error) {
	return s.eventRepo.FindAll(ctx, filter)
}

// ListUpcomingEvents retrieves events starting today (Accra time) or later,
// soonest first.
func (s *contentService) ListUpcomingEvents(ctx context.Context, limit int) ([]entity.Event, error) {
	return s.eventRepo.FindUpcoming(ctx, utils.Day(utils.TimeNowAccra()), limit)
}

// DeleteEvent removes an event by slug.
func (s *contentService) DeleteEvent(ctx context.Context, slug string) error {
	err := s.eventRepo.DeleteBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: event %q", ErrNotFound, slug)
	}
	return err
}

// UpsertCategory validates and writes a category.
func (s *contentService) UpsertCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*entity.Category, error) {
	if req.Slug == "" || req.Name == "" {
		return nil, fmt.Errorf("%w: slug and name are required", ErrValidation)
	}
	category := &entity.Category{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.UpsertBySlug(ctx, category); err != nil {
		return nil, s.mapWriteError(err, "category", req.Slug)
	}
	return category, nil
}

// ListCategories retrieves all categories.
func (s *contentService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

// DeleteCategory removes a category by slug. Categories still referenced by
// articles cannot be deleted.
func (s *contentService) DeleteCategory(ctx context.Context, slug string) error {
	referencing, err := s.articleRepo.FindAll(ctx, dto.ContentFilter{Category: slug, Limit: 1})
	if err != nil {
		return err
	}
	if len(referencing) > 0 {
		return fmt.Errorf("%w: category %q is referenced by articles", ErrConstraint, slug)
	}
	err = s.categoryRepo.DeleteBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: category %q", ErrNotFound, slug)
	}
	return err
}

// UpsertStaff validates and writes a staff member.
func (s *contentService) UpsertStaff(ctx context.Context, req *dto.UpsertStaffRequest) (*entity.Staff, error) {
	if req.Name == "" || req.Position == "" {
		return nil, fmt.Errorf("%w: name and position are required", ErrValidation)
	}
	staff := &entity.Staff{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.staffRepo.UpsertByName(ctx, staff); err != nil {
		return nil, s.mapWriteError(err, "staff", req.Name)
	}
	return staff, nil
}

// GetStaff retrieves a staff member by id.
func (s *contentService) GetStaff(ctx context.Context, id uint) (*entity.Staff, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: staff %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return staff, nil
}

// ListStaff retrieves all staff members in display order.
func (s *contentService) ListStaff(ctx context.Context) ([]entity.Staff, error) {
	return s.staffRepo.FindAll(ctx)
}

// DeleteStaff removes a staff member by id.
func (s *contentService) DeleteStaff(ctx context.Context, id uint) error {
	err := s.staffRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: staff %d", ErrNotFound, id)
	}
	return err
}

// UpsertProgram validates and writes a program.
func (s *contentService) UpsertProgram(ctx context.Context, req *dto.UpsertProgramRequest) (*entity.Program, error) {
	if req.Slug == "" || req.Title == "" {
		return nil, fmt.Errorf("%w: slug and title are required", ErrValidation)
	}
	program := &entity.Program{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		FocusArea:   req.FocusArea,
	}
	if err := s.programRepo.UpsertBySlug(ctx, program); err != nil {
		return nil, s.mapWriteError(err, "program", req.Slug)
	}
	return program, nil
}

// ListPrograms retrieves all programs.
func (s *contentService) ListPrograms(ctx context.Context) ([]entity.Program, error) {
	return s.programRepo.FindAll(ctx)
}

// DeleteProgram removes a program by slug.
func (s *contentService) DeleteProgram(ctx context.Context, slug string) error {
	err := s.programRepo.DeleteBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: program %q", ErrNotFound, slug)
	}
	return err
}

// UpsertResource validates and writes a resource.
func (s *contentService) UpsertResource(ctx context.Context, req *dto.UpsertResourceRequest) (*entity.Resource, error) {
	if req.Title == "" || req.FileURL == "" {
		return nil, fmt.Errorf("%w: title and file_url are required", ErrValidation)
	}
	resource := &entity.Resource{
		Title:       req.Title,
		Category:    req.Category,
		Tags:        datatypes.NewJSONSlice(req.Tags),
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		PublishedAt: req.PublishedAt,
		Featured:    req.Featured,
	}
	if err := s.resourceRepo.UpsertByFileURL(ctx, resource); err != nil {
		return nil, s.mapWriteError(err, "resource", req.FileURL)
	}
	return resource, nil
}

// GetResource retrieves a resource by id.
func (s *contentService) GetResource(ctx context.Context, id uint) (*entity.Resource, error) {
	resource, err := s.resourceRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: resource %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return resource, nil
}

// ListResources retrieves resources matching the filter.
func (s *contentService) ListResources(ctx context.Context, filter dto.ContentFilter) ([]entity.Resource, error) {
	return s.resourceRepo.FindAll(ctx, filter)
}

// DeleteResource removes a resource by id.
func (s *contentService) DeleteResource(ctx context.Context, id uint) error {
	err := s.resourceRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: resource %d", ErrNotFound, id)
	}
	return err
}

func (s *contentService) mapWriteError(err error, kind, key string) error {
	if repository.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s %q", ErrConstraint, kind, key)
	}
	s.logger.Error("Content write failed",
		logger.StringField("kind", kind),
		logger.StringField("key", key),
		logger.ErrorField(err))
	return err
}
