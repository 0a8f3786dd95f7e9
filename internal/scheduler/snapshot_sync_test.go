package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dashmeta/intraday-metrics-api/internal/config"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/snapshotting/mocks"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SnapshotSync: config.SnapshotSync{
			CronSchedule: "*/30 * * * *",
			DatePreset:   "today",
			Enabled:      true,
		},
	}
}

func TestSnapshotSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})

	mockCollector := mocks.NewMockCollector(ctrl)
	mockCollector.EXPECT().
		Collect().
		DoAndReturn(func() (*domain.CollectionSummary, error) {
			defer close(done)
			return &domain.CollectionSummary{
				SnapshotID: "20250115_1430",
				Counts:     domain.CollectionCounts{Campaigns: 2, Adsets: 1, Ads: 1},
			}, nil
		})

	service := NewSnapshotSyncService(mockCollector, newTestConfig())

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("coleta manual não executou dentro do prazo")
	}

	require.Eventually(t, func() bool {
		status := service.GetStatus()
		return status["last_snapshot_id"] == "20250115_1430"
	}, 2*time.Second, 10*time.Millisecond)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "*/30 * * * *", status["sync_cron"])
}

func TestSnapshotSyncService_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockCollector(ctrl)

	service := NewSnapshotSyncService(mockCollector, newTestConfig())

	// Simula uma coleta em andamento: o gatilho manual deve ser ignorado sem
	// chamar o coletor
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	service.TriggerManualSync()

	// Pequena espera para garantir que nenhuma goroutine chamou Collect
	time.Sleep(50 * time.Millisecond)
}

func TestSnapshotSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockCollector(ctrl)

	service := NewSnapshotSyncService(mockCollector, newTestConfig())

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "today", status["date_preset"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_snapshot_id"])
}
