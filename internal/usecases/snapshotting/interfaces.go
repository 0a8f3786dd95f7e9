package snapshotting

import (
	metadomain "github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
)

// InsightSource define a interface da fonte externa de insights (API do Meta)
type InsightSource interface {
	// FetchInsights busca as linhas brutas de insights de um nível. Erros de
	// transporte ou de limite de requisições abortam a coleta em andamento
	FetchInsights(level domain.Level, datePreset string) ([]metadomain.AdInsight, error)
}

// Collector define a interface do ciclo de coleta consumida pelo agendador e
// pelo endpoint de coleta manual
type Collector interface {
	// Collect busca os três níveis, monta um snapshot e o persiste em uma
	// única operação
	Collect() (*domain.CollectionSummary, error)
}
