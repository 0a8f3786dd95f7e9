package domain

import "time"

// SnapshotIDLayout é o formato do identificador derivado do instante de
// coleta, truncado no minuto. Duas coletas no mesmo minuto geram o mesmo ID
// e a última sobrescreve a anterior (last writer wins).
const SnapshotIDLayout = "20060102_1504"

// Snapshot é uma captura imutável das métricas de todas as entidades nos três
// níveis em um instante de coleta. Criado de uma só vez pelo builder e
// persistido em uma única operação; nunca gravado parcialmente.
type Snapshot struct {
	ID          string         `json:"id"`
	CollectedAt time.Time      `json:"ts"`
	Date        string         `json:"date"`
	Campaign    []MetricRecord `json:"campaign"`
	Adset       []MetricRecord `json:"adset"`
	Ad          []MetricRecord `json:"ad"`
}

// NewSnapshotID deriva o identificador do snapshot a partir do instante de
// coleta em UTC
func NewSnapshotID(collectedAt time.Time) string {
	return collectedAt.UTC().Format(SnapshotIDLayout)
}

// RecordsByLevel retorna a sequência de registros do nível solicitado
func (s *Snapshot) RecordsByLevel(level Level) []MetricRecord {
	if s == nil {
		return nil
	}

	switch level {
	case LevelCampaign:
		return s.Campaign
	case LevelAdset:
		return s.Adset
	case LevelAd:
		return s.Ad
	}

	return nil
}
