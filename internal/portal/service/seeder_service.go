package service

import (
	"context"
	"fmt"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/indicator"
	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/repository"
	"econgov-portal/pkg/logger"
	"econgov-portal/pkg/utils"

	"gorm.io/datatypes"
)

// SeederService populates the store from literal datasets. Seed runs are
// upsert-based and idempotent: re-running one changes no row counts and no
// ids for unchanged records. RestoreAll additionally wipes the bounded set of
// seeded tables first, guaranteeing the store exactly matches the seed set.
// Sync merges an external export without deleting anything.
type SeederService interface {
	SeedAll(ctx context.Context) ([]string, error)
	RestoreAll(ctx context.Context) ([]string, error)
	Sync(ctx context.Context, export *dto.ExportFile) ([]string, error)
}

// NewSeederService creates a new seeder service.
func NewSeederService(
	economicRepo repository.EconomicDataRepository,
	contentSvc ContentService,
	articleRepo repository.ArticleRepository,
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	staffRepo repository.StaffRepository,
	programRepo repository.ProgramRepository,
	resourceRepo repository.ResourceRepository,
	log *logger.Logger,
) SeederService {
	return &seederService{
		economicRepo: economicRepo,
		contentSvc:   contentSvc,
		articleRepo:  articleRepo,
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		staffRepo:    staffRepo,
		programRepo:  programRepo,
		resourceRepo: resourceRepo,
		logger:       log,
	}
}

type seederService struct {
	economicRepo repository.EconomicDataRepository
	contentSvc   ContentService
	articleRepo  repository.ArticleRepository
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
	staffRepo    repository.StaffRepository
	programRepo  repository.ProgramRepository
	resourceRepo repository.ResourceRepository
	logger       *logger.Logger
}

// SeedAll upserts every literal dataset. Categories seed before articles
// because articles resolve category slugs; everything else is order-free.
// Each upsert is independently atomic, so a failed run heals on rerun.
func (s *seederService) SeedAll(ctx context.Context) ([]string, error) {
	var output []string

	rows := seedObservations()
	if err := s.economicRepo.UpsertMany(ctx, rows); err != nil {
		return output, fmt.Errorf("seed economic data: %w", err)
	}
	output = append(output, fmt.Sprintf("economic observations: %d upserted", len(rows)))

	for _, req := range seedCategories() {
		if _, err := s.contentSvc.UpsertCategory(ctx, &req); err != nil {
			return output, fmt.Errorf("seed category %q: %w", req.Slug, err)
		}
	}
	output = append(output, fmt.Sprintf("categories: %d upserted", len(seedCategories())))

	for _, req := range seedArticles() {
		if _, err := s.contentSvc.UpsertArticle(ctx, &req); err != nil {
			return output, fmt.Errorf("seed article %q: %w", req.Slug, err)
		}
	}
	output = append(output, fmt.Sprintf("articles: %d upserted", len(seedArticles())))

	for _, req := range seedEvents() {
		if _, err := s.contentSvc.UpsertEvent(ctx, &req); err != nil {
			return output, fmt.Errorf("seed event %q: %w", req.Slug, err)
		}
	}
	output = append(output, fmt.Sprintf("events: %d upserted", len(seedEvents())))

	for _, req := range seedStaff() {
		if _, err := s.contentSvc.UpsertStaff(ctx, &req); err != nil {
			return output, fmt.Errorf("seed staff %q: %w", req.Name, err)
		}
	}
	output = append(output, fmt.Sprintf("staff: %d upserted", len(seedStaff())))

	for _, req := range seedPrograms() {
		if _, err := s.contentSvc.UpsertProgram(ctx, &req); err != nil {
			return output, fmt.Errorf("seed program %q: %w", req.Slug, err)
		}
	}
	output = append(output, fmt.Sprintf("programs: %d upserted", len(seedPrograms())))

	for _, req := range seedResources() {
		if _, err := s.contentSvc.UpsertResource(ctx, &req); err != nil {
			return output, fmt.Errorf("seed resource %q: %w", req.FileURL, err)
		}
	}
	output = append(output, fmt.Sprintf("resources: %d upserted", len(seedResources())))

	s.logger.Info("Seed completed", logger.IntField("observations", len(rows)))
	return output, nil
}

// RestoreAll wipes the seeded indicator families and all content tables, then
// reseeds. Destructive: rows created outside the seed set are lost. Reads
// racing the restore may transiently see a partially repopulated store; the
// action is an administrator-triggered maintenance step, not a live path.
func (s *seederService) RestoreAll(ctx context.Context) ([]string, error) {
	var output []string

	if err := s.economicRepo.DeleteByIndicators(ctx, indicator.Names()); err != nil {
		return output, fmt.Errorf("wipe economic data: %w", err)
	}
	// Articles wipe before categories so the FK never dangles.
	wipes := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"articles", s.articleRepo.DeleteAll},
		{"categories", s.categoryRepo.DeleteAll},
		{"events", s.eventRepo.DeleteAll},
		{"staff", s.staffRepo.DeleteAll},
		{"programs", s.programRepo.DeleteAll},
		{"resources", s.resourceRepo.DeleteAll},
	}
	for _, wipe := range wipes {
		if err := wipe.fn(ctx); err != nil {
			return output, fmt.Errorf("wipe %s: %w", wipe.name, err)
		}
	}
	output = append(output, "existing seeded data wiped")

	seedOutput, err := s.SeedAll(ctx)
	output = append(output, seedOutput...)
	return output, err
}

// Sync merges an export file into the store without deleting anything. Rows
// created independently of the export are preserved. Observation records with
// unknown indicator names or malformed dates are skipped and counted rather
// than aborting the run.
func (s *seederService) Sync(ctx context.Context, export *dto.ExportFile) ([]string, error) {
	if export == nil {
		return nil, fmt.Errorf("%w: empty export file", ErrValidation)
	}

	var output []string
	var upserted, skipped int
	for _, rec := range export.Observations {
		obs, err := observationFromRecord(rec)
		if err != nil {
			skipped++
			s.logger.Warn("Skipping export observation",
				logger.StringField("indicator", rec.Indicator),
				logger.StringField("date", rec.Date),
				logger.ErrorField(err))
			continue
		}
		if err := s.economicRepo.Upsert(ctx, obs); err != nil {
			return output, fmt.Errorf("sync observation %s/%s: %w", rec.Indicator, rec.Date, err)
		}
		upserted++
	}
	output = append(output, fmt.Sprintf("observations: %d upserted, %d skipped", upserted, skipped))

	for i := range export.Categories {
		if _, err := s.contentSvc.UpsertCategory(ctx, &export.Categories[i]); err != nil {
			return output, fmt.Errorf("sync category %q: %w", export.Categories[i].Slug, err)
		}
	}
	for i := range export.Articles {
		if _, err := s.contentSvc.UpsertArticle(ctx, &export.Articles[i]); err != nil {
			return output, fmt.Errorf("sync article %q: %w", export.Articles[i].Slug, err)
		}
	}
	for i := range export.Events {
		if _, err := s.contentSvc.UpsertEvent(ctx, &export.Events[i]); err != nil {
			return output, fmt.Errorf("sync event %q: %w", export.Events[i].Slug, err)
		}
	}
	for i := range export.Staff {
		if _, err := s.contentSvc.UpsertStaff(ctx, &export.Staff[i]); err != nil {
			return output, fmt.Errorf("sync staff %q: %w", export.Staff[i].Name, err)
		}
	}
	for i := range export.Programs {
		if _, err := s.contentSvc.UpsertProgram(ctx, &export.Programs[i]); err != nil {
			return output, fmt.Errorf("sync program %q: %w", export.Programs[i].Slug, err)
		}
	}
	for i := range export.Resources {
		if _, err := s.contentSvc.UpsertResource(ctx, &export.Resources[i]); err != nil {
			return output, fmt.Errorf("sync resource %q: %w", export.Resources[i].FileURL, err)
		}
	}

	contentCount := len(export.Categories) + len(export.Articles) + len(export.Events) +
		len(export.Staff) + len(export.Programs) + len(export.Resources)
	output = append(output, fmt.Sprintf("content records: %d upserted", contentCount))
	return output, nil
}

// observationFromRecord validates and converts one wire record into a store
// row. The indicator must belong to the registry vocabulary; the date must be
// a valid day; metadata must decode into the indicator's typed variant.
func observationFromRecord(rec dto.ObservationRecord) (*entity.EconomicData, error) {
	if !indicator.Known(rec.Indicator) {
		return nil, fmt.Errorf("%w: unknown indicator %q", ErrValidation, rec.Indicator)
	}
	date, err := utils.ParseDay(rec.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, rec.Date)
	}
	if rec.Source == "" {
		return nil, fmt.Errorf("%w: source is required", ErrValidation)
	}
	if len(rec.Metadata) > 0 {
		if _, err := indicator.DecodeMetadata(rec.Indicator, datatypes.JSON(rec.Metadata)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	seriesKey := rec.SeriesKey
	if seriesKey == "" {
		seriesKey = rec.Source
	}
	return &entity.EconomicData{
		Indicator: rec.Indicator,
		Date:      utils.Day(date),
		SeriesKey: seriesKey,
		Source:    rec.Source,
		Value:     rec.Value,
		Unit:      rec.Unit,
		Metadata:  datatypes.JSON(rec.Metadata),
	}, nil
}
