package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	portalconfig "econgov-portal/internal/portal/config"
	"econgov-portal/internal/portal/dto"
	"econgov-portal/pkg/logger"
	"econgov-portal/pkg/telegram"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Maintenance action names accepted by Run.
const (
	ActionMigrate = "migrate"
	ActionSeed    = "seed"
	ActionSync    = "sync"
	ActionFull    = "full"
)

// MaintenanceService executes the administrator-triggered maintenance
// actions. Each action runs synchronously to completion within one request;
// there is no retry, rollback or partial-progress checkpointing. Failures
// surface the error string together with whatever output was captured.
type MaintenanceService interface {
	Run(ctx context.Context, action string, payload []byte) (*dto.MaintenanceResult, error)
}

// NewMaintenanceService creates a new maintenance service. The notifier is
// optional; when nil no completion messages are sent.
func NewMaintenanceService(cfg *portalconfig.Config, seeder SeederService, dashboard DashboardService, notifier telegram.Notifier, log *logger.Logger) MaintenanceService {
	return &maintenanceService{
		cfg:       cfg,
		seeder:    seeder,
		dashboard: dashboard,
		notifier:  notifier,
		logger:    log,
	}
}

type maintenanceService struct {
	cfg       *portalconfig.Config
	seeder    SeederService
	dashboard DashboardService
	notifier  telegram.Notifier
	logger    *logger.Logger
}

// Run dispatches one maintenance action and reports its outcome.
func (s *maintenanceService) Run(ctx context.Context, action string, payload []byte) (*dto.MaintenanceResult, error) {
	started := time.Now()

	var (
		output []string
		err    error
	)
	switch action {
	case ActionMigrate:
		output, err = s.runMigrations()
	case ActionSeed:
		output, err = s.seeder.RestoreAll(ctx)
	case ActionSync:
		output, err = s.runSync(ctx, payload)
	case ActionFull:
		output, err = s.runFull(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown maintenance action %q", ErrValidation, action)
	}

	if action != ActionMigrate {
		// Chart payloads are stale after any data change.
		s.dashboard.FlushCache(ctx)
	}

	duration := time.Since(started)
	status := fmt.Sprintf("%s completed", action)
	if err != nil {
		status = fmt.Sprintf("%s failed: %s", action, err.Error())
		s.logger.Error("Maintenance action failed",
			logger.StringField("action", action),
			logger.ErrorField(err))
	} else {
		s.logger.Info("Maintenance action completed",
			logger.StringField("action", action),
			logger.Field("duration", duration.String()))
	}

	s.notify(action, status, output, duration, err)

	result := &dto.MaintenanceResult{
		Action:   action,
		Status:   status,
		Output:   output,
		Duration: duration.Round(time.Millisecond).String(),
	}
	return result, err
}

// runMigrations applies all pending schema migrations.
func (s *maintenanceService) runMigrations() ([]string, error) {
	db := s.cfg.Database
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.User, db.Password, db.Host, db.Port, db.DBName, db.SSLMode)

	migrationsPath := s.cfg.Maintenance.MigrationsPath
	if migrationsPath == "" {
		migrationsPath = "file://migrations"
	}

	m, err := migrate.New(migrationsPath, dsn)
	if err != nil {
		return nil, fmt.Errorf("create migration instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return []string{"schema already up to date"}, nil
		}
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return []string{"migrations applied"}, nil
}

func (s *maintenanceService) runSync(ctx context.Context, payload []byte) ([]string, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: sync requires an export file body", ErrValidation)
	}
	var export dto.ExportFile
	if err := json.Unmarshal(payload, &export); err != nil {
		return nil, fmt.Errorf("%w: malformed export file: %v", ErrValidation, err)
	}
	return s.seeder.Sync(ctx, &export)
}

func (s *maintenanceService) runFull(ctx context.Context) ([]string, error) {
	output, err := s.runMigrations()
	if err != nil {
		return output, err
	}
	seedOutput, err := s.seeder.RestoreAll(ctx)
	output = append(output, seedOutput...)
	return output, err
}

func (s *maintenanceService) notify(action, status string, output []string, duration time.Duration, failure error) {
	if s.notifier == nil {
		return
	}
	msg := telegram.FormatMaintenanceReport(action, status, output, duration, failure)
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Error("Failed to send maintenance notification", logger.ErrorField(err))
	}
}
