package snapshotting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/dashmeta/intraday-metrics-api/infrastructure/repository/mocks"
	"github.com/dashmeta/intraday-metrics-api/internal/config"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
	sourcemocks "github.com/dashmeta/intraday-metrics-api/internal/usecases/snapshotting/mocks"
)

const testActionType = "onsite_conversion.messaging_conversation_started_7d"

func newTestConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			ActionType: testActionType,
		},
		SnapshotSync: config.SnapshotSync{
			DatePreset: "today",
		},
	}
}

func TestService_Collect(t *testing.T) {
	collectedAt := time.Date(2025, 1, 15, 14, 30, 45, 0, time.UTC)

	campaigns := []metadomain.AdInsight{
		{CampaignID: "c1", CampaignName: "Campanha A", Spend: "100.50"},
		{CampaignID: "c2", CampaignName: "Campanha B", Spend: "20"},
	}
	adsets := []metadomain.AdInsight{
		{AdsetID: "s1", AdsetName: "Conjunto A", CampaignID: "c1", Spend: "60"},
	}
	ads := []metadomain.AdInsight{
		{AdID: "a1", AdName: "Anúncio A", CampaignID: "c1", AdsetID: "s1", Spend: "60"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockInsightSource(ctrl)
	mockRepo := mocks.NewMockSnapshotRepository(ctrl)

	mockSource.EXPECT().FetchInsights(domain.LevelCampaign, "today").Return(campaigns, nil)
	mockSource.EXPECT().FetchInsights(domain.LevelAdset, "today").Return(adsets, nil)
	mockSource.EXPECT().FetchInsights(domain.LevelAd, "today").Return(ads, nil)

	var saved *domain.Snapshot
	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.Snapshot) error {
			saved = snapshot
			return nil
		})

	service := &Service{
		cfg:          newTestConfig(),
		source:       mockSource,
		snapshotRepo: mockRepo,
		now:          func() time.Time { return collectedAt },
	}

	summary, err := service.Collect()
	require.NoError(t, err)
	require.NotNil(t, saved)

	// ID derivado do instante de coleta truncado no minuto
	assert.Equal(t, "20250115_1430", saved.ID)
	assert.Equal(t, "20250115_1430", summary.SnapshotID)
	assert.Equal(t, "2025-01-15", saved.Date)
	assert.Equal(t, collectedAt, saved.CollectedAt)

	// A ordem de origem é preservada dentro de cada nível
	require.Len(t, saved.Campaign, 2)
	assert.Equal(t, "c1", saved.Campaign[0].ID)
	assert.Equal(t, "c2", saved.Campaign[1].ID)
	assert.Len(t, saved.Adset, 1)
	assert.Len(t, saved.Ad, 1)

	assert.Equal(t, 2, summary.Counts.Campaigns)
	assert.Equal(t, 1, summary.Counts.Adsets)
	assert.Equal(t, 1, summary.Counts.Ads)
}

func TestService_Collect_AbortsOnFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockInsightSource(ctrl)
	mockRepo := mocks.NewMockSnapshotRepository(ctrl)

	// A falha do segundo nível aborta a coleta: nenhum snapshot parcial é
	// gravado e o nível ad nem chega a ser buscado
	mockSource.EXPECT().
		FetchInsights(domain.LevelCampaign, "today").
		Return([]metadomain.AdInsight{{CampaignID: "c1", Spend: "10"}}, nil)
	mockSource.EXPECT().
		FetchInsights(domain.LevelAdset, "today").
		Return(nil, errors.New("rate limit atingido"))

	service := &Service{
		cfg:          newTestConfig(),
		source:       mockSource,
		snapshotRepo: mockRepo,
		now:          time.Now,
	}

	summary, err := service.Collect()
	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "adset")
}

func TestService_Collect_PropagatesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockInsightSource(ctrl)
	mockRepo := mocks.NewMockSnapshotRepository(ctrl)

	mockSource.EXPECT().FetchInsights(gomock.Any(), "today").Return(nil, nil).Times(3)
	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("conexão recusada"))

	service := &Service{
		cfg:          newTestConfig(),
		source:       mockSource,
		snapshotRepo: mockRepo,
		now:          time.Now,
	}

	summary, err := service.Collect()
	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "persistir")
}

func TestService_BuildSnapshot_DuplicateIDsLastWriteWins(t *testing.T) {
	collectedAt := time.Date(2025, 1, 15, 9, 5, 0, 0, time.UTC)

	campaigns := []metadomain.AdInsight{
		{CampaignID: "c1", CampaignName: "Primeira versão", Spend: "10"},
		{CampaignID: "c2", CampaignName: "Outra campanha", Spend: "5"},
		{CampaignID: "c1", CampaignName: "Última versão", Spend: "30"},
	}

	service := &Service{cfg: newTestConfig(), now: time.Now}

	snapshot := service.BuildSnapshot(collectedAt, campaigns, nil, nil)

	// O ID repetido mantém a posição da primeira ocorrência com o valor da
	// última
	require.Len(t, snapshot.Campaign, 2)
	assert.Equal(t, "c1", snapshot.Campaign[0].ID)
	assert.Equal(t, "Última versão", snapshot.Campaign[0].Name)
	assert.Equal(t, 30.0, snapshot.Campaign[0].Spend)
	assert.Equal(t, "c2", snapshot.Campaign[1].ID)

	assert.Empty(t, snapshot.Adset)
	assert.Empty(t, snapshot.Ad)
}
