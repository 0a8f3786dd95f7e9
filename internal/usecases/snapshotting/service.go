package snapshotting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	metadomain "github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/dashmeta/intraday-metrics-api/infrastructure/repository"
	"github.com/dashmeta/intraday-metrics-api/internal/config"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/normalizing"
)

// ErrPersistence indica falha na gravação do snapshot no banco. A coleta em
// si foi bem-sucedida quando este erro é retornado
var ErrPersistence = errors.New("erro ao persistir snapshot")

// Service implementa o ciclo de coleta: busca os três níveis na fonte,
// normaliza cada linha preservando a ordem de origem e grava o snapshot
// inteiro de uma vez
type Service struct {
	cfg          *config.Config
	source       InsightSource
	snapshotRepo repository.SnapshotRepository
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	source InsightSource,
	snapshotRepo repository.SnapshotRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		source:       source,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// Collect executa um ciclo de coleta completo. Se a busca de qualquer nível
// falhar, a coleta inteira é abortada e nenhum snapshot parcial é gravado
func (s *Service) Collect() (*domain.CollectionSummary, error) {
	collectedAt := s.now().UTC()
	datePreset := s.cfg.SnapshotSync.DatePreset

	campaigns, err := s.source.FetchInsights(domain.LevelCampaign, datePreset)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar insights do nível campaign")
	}

	adsets, err := s.source.FetchInsights(domain.LevelAdset, datePreset)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar insights do nível adset")
	}

	ads, err := s.source.FetchInsights(domain.LevelAd, datePreset)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar insights do nível ad")
	}

	snapshot := s.BuildSnapshot(collectedAt, campaigns, adsets, ads)

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"campaigns":   len(snapshot.Campaign),
		"adsets":      len(snapshot.Adset),
		"ads":         len(snapshot.Ad),
	}).Info("Snapshot salvo com sucesso")

	return &domain.CollectionSummary{
		SnapshotID: snapshot.ID,
		Counts: domain.CollectionCounts{
			Campaigns: len(snapshot.Campaign),
			Adsets:    len(snapshot.Adset),
			Ads:       len(snapshot.Ad),
		},
	}, nil
}

// BuildSnapshot monta exatamente um snapshot a partir das linhas brutas dos
// três níveis, carimbado com o instante de coleta e o ID truncado no minuto
func (s *Service) BuildSnapshot(
	collectedAt time.Time,
	campaigns []metadomain.AdInsight,
	adsets []metadomain.AdInsight,
	ads []metadomain.AdInsight,
) *domain.Snapshot {
	collectedAt = collectedAt.UTC()

	return &domain.Snapshot{
		ID:          domain.NewSnapshotID(collectedAt),
		CollectedAt: collectedAt,
		Date:        collectedAt.Format(time.DateOnly),
		Campaign:    s.normalizeLevel(campaigns, domain.LevelCampaign),
		Adset:       s.normalizeLevel(adsets, domain.LevelAdset),
		Ad:          s.normalizeLevel(ads, domain.LevelAd),
	}
}

// normalizeLevel normaliza as linhas de um nível preservando a ordem de
// origem. IDs repetidos pela fonte mantêm a posição da primeira ocorrência
// com o valor da última (last write wins)
func (s *Service) normalizeLevel(raws []metadomain.AdInsight, level domain.Level) []domain.MetricRecord {
	records := make([]domain.MetricRecord, 0, len(raws))
	positions := make(map[string]int, len(raws))

	for _, raw := range raws {
		record := normalizing.NormalizeInsight(raw, level, s.cfg.Meta.ActionType)

		if pos, seen := positions[record.ID]; seen {
			records[pos] = record
			continue
		}

		positions[record.ID] = len(records)
		records = append(records, record)
	}

	return records
}
