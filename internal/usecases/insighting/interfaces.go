package insighting

import (
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
)

// IntradayInsighter define a interface de leitura da visão intraday com a
// janela dos últimos ~30 minutos
type IntradayInsighter interface {
	// GetIntradayByLevel calcula a visão de janela para o nível informado a
	// partir dos dois snapshots mais recentes. A ordem dos resultados não é
	// garantida; consumidores não devem depender dela
	GetIntradayByLevel(level domain.Level) ([]*domain.DeltaRecord, error)
}
