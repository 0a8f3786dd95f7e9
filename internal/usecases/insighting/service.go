package insighting

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dashmeta/intraday-metrics-api/infrastructure/repository"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
)

// Service calcula a visão de janela diffando os dois snapshots mais recentes.
// Função pura dos dois snapshots de entrada: não grava nada e pode rodar
// concorrente com outras requisições sem sincronização
type Service struct {
	snapshotRepo repository.SnapshotRepository
}

func NewService(snapshotRepo repository.SnapshotRepository) IntradayInsighter {
	return &Service{
		snapshotRepo: snapshotRepo,
	}
}

func (s *Service) GetIntradayByLevel(level domain.Level) ([]*domain.DeltaRecord, error) {
	snapshots, err := s.snapshotRepo.ListRecent(2)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar snapshots recentes")
	}

	// Nenhum snapshot ainda não é um erro: o resultado é simplesmente vazio
	if len(snapshots) == 0 {
		logrus.WithField("level", level).Debug("intraday: nenhum snapshot disponível")
		return []*domain.DeltaRecord{}, nil
	}

	current := snapshots[0]
	var previous *domain.Snapshot
	if len(snapshots) > 1 {
		previous = snapshots[1]
	}

	return computeDeltas(current, previous, level), nil
}

// computeDeltas subtrai os acumulados do snapshot anterior dos do atual para
// cada entidade presente no atual. Entidades que só existem no snapshot
// anterior são descartadas (consideradas inativas). Quando não há snapshot
// anterior, os valores anteriores valem zero e a janela é igual ao acumulado.
//
// Janelas negativas são possíveis quando o Meta revisa totais para baixo
// entre coletas e são preservadas como vieram, sem clamp
func computeDeltas(current, previous *domain.Snapshot, level domain.Level) []*domain.DeltaRecord {
	currentIndex := indexByID(current.RecordsByLevel(level))
	previousIndex := indexByID(previous.RecordsByLevel(level))

	result := make([]*domain.DeltaRecord, 0, len(currentIndex))
	for id, curr := range currentIndex {
		prev := previousIndex[id] // valor zero quando o ID não existia antes

		spend30m := curr.Spend - prev.Spend
		conv30m := curr.Conversions - prev.Conversions

		var cpl30m *float64
		if conv30m > 0 {
			cpl := spend30m / float64(conv30m)
			cpl30m = &cpl
		}

		result = append(result, &domain.DeltaRecord{
			ID:         id,
			Name:       curr.Name,
			CampaignID: curr.CampaignID,
			AdsetID:    curr.AdsetID,
			SpendToday: curr.Spend,
			ConvToday:  curr.Conversions,
			CPLToday:   curr.CostPerConversion,
			Spend30m:   spend30m,
			Conv30m:    conv30m,
			CPL30m:     cpl30m,
		})
	}

	return result
}

// indexByID indexa os registros de um nível por ID. Em caso de ID repetido a
// última ocorrência vence
func indexByID(records []domain.MetricRecord) map[string]domain.MetricRecord {
	index := make(map[string]domain.MetricRecord, len(records))
	for _, record := range records {
		index[record.ID] = record
	}
	return index
}
