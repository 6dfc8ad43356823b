package service

import (
	"context"
	"errors"
	"testing"
	"time"

	portalconfig "econgov-portal/internal/portal/config"
	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSeeder struct {
	restored   int
	syncedWith *dto.ExportFile
	err        error
}

func (s *stubSeeder) SeedAll(ctx context.Context) ([]string, error) {
	return []string{"seeded"}, s.err
}

func (s *stubSeeder) RestoreAll(ctx context.Context) ([]string, error) {
	s.restored++
	return []string{"restored"}, s.err
}

func (s *stubSeeder) Sync(ctx context.Context, export *dto.ExportFile) ([]string, error) {
	s.syncedWith = export
	return []string{"synced"}, s.err
}

type stubNotifier struct {
	messages []string
}

func (n *stubNotifier) SendMessage(text string) error {
	n.messages = append(n.messages, text)
	return nil
}

func newMaintenanceFixture(t *testing.T) (MaintenanceService, *stubSeeder, DashboardService, *stubNotifier) {
	t.Helper()
	db := setupTestDB(t)
	log := testLogger(t)
	dashboard := NewDashboardService(repository.NewEconomicDataRepository(db), nil, log, time.Minute)
	seeder := &stubSeeder{}
	notifier := &stubNotifier{}
	svc := NewMaintenanceService(&portalconfig.Config{}, seeder, dashboard, notifier, log)
	return svc, seeder, dashboard, notifier
}

func TestMaintenanceUnknownAction(t *testing.T) {
	svc, _, _, _ := newMaintenanceFixture(t)

	_, err := svc.Run(context.Background(), "format-disk", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMaintenanceSeedRestoresAndNotifies(t *testing.T) {
	svc, seeder, _, notifier := newMaintenanceFixture(t)

	result, err := svc.Run(context.Background(), ActionSeed, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, seeder.restored)
	assert.Equal(t, ActionSeed, result.Action)
	assert.Contains(t, result.Status, "completed")
	assert.Contains(t, result.Output, "restored")
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "seed")
}

func TestMaintenanceSyncRequiresBody(t *testing.T) {
	svc, _, _, _ := newMaintenanceFixture(t)

	_, err := svc.Run(context.Background(), ActionSync, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Run(context.Background(), ActionSync, []byte("{not json"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMaintenanceSyncParsesExport(t *testing.T) {
	svc, seeder, _, _ := newMaintenanceFixture(t)

	payload := []byte(`{"observations":[{"indicator":"TOTAL_DEBT","date":"2025-11-01","source":"MoF","value":1}]}`)
	result, err := svc.Run(context.Background(), ActionSync, payload)
	require.NoError(t, err)
	require.NotNil(t, seeder.syncedWith)
	assert.Len(t, seeder.syncedWith.Observations, 1)
	assert.Contains(t, result.Output, "synced")
}

func TestMaintenanceFailureSurfacesStatus(t *testing.T) {
	svc, seeder, _, notifier := newMaintenanceFixture(t)
	seeder.err = errors.New("db gone")

	result, err := svc.Run(context.Background(), ActionSeed, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.Status, "failed")
	assert.Contains(t, result.Status, "db gone")
	require.Len(t, notifier.messages, 1)
}
