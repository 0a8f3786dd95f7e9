package metaclient

import (
	"errors"

	metadomain "github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/dashmeta/intraday-metrics-api/internal/config"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
)

type Client interface {
	GetInsightsByLevel(level domain.Level, datePreset string) ([]metadomain.AdInsight, error)
}

type MetaClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	client := &MetaClient{
		Cfg: cfg,
	}
	return client
}

// ensureAccessToken verifica se há um token de acesso configurado antes de
// fazer a requisição. O token é de longa duração e vem da configuração; não
// há renovação automática neste serviço
func (c *MetaClient) ensureAccessToken() error {
	if c.Cfg.Meta.AccessToken == "" {
		return errors.New("token de acesso do Meta não configurado")
	}
	return nil
}
