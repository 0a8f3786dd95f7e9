package meta

import (
	"github.com/sirupsen/logrus"

	metadomain "github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/metaclient"
	"github.com/dashmeta/intraday-metrics-api/internal/config"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
)

// MetaIntegrator expõe a API de insights do Meta como fonte de dados para a
// coleta de snapshots
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchInsights busca as linhas brutas de insights de um nível de hierarquia
func (s *MetaIntegrator) FetchInsights(level domain.Level, datePreset string) ([]metadomain.AdInsight, error) {
	insights, err := s.Client.GetInsightsByLevel(level, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"level":       level,
			"date_preset": datePreset,
			"error":       err.Error(),
		}).Error("insights: failed to get insights from Meta API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"level":       level,
		"date_preset": datePreset,
		"records":     len(insights),
	}).Debug("insights: successfully retrieved raw insights")

	return insights, nil
}
