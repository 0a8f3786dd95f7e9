package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	metadomain "github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ResponseAdInsights struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// insightFieldsByLevel mapeia o nível para a lista de campos pedida à API.
// Os campos de identificação variam por nível; spend, actions e
// cost_per_action_type são comuns a todos
var insightFieldsByLevel = map[domain.Level]string{
	domain.LevelCampaign: "campaign_id,campaign_name,spend,actions,cost_per_action_type",
	domain.LevelAdset:    "campaign_id,campaign_name,adset_id,adset_name,spend,actions,cost_per_action_type",
	domain.LevelAd:       "campaign_id,adset_id,ad_id,ad_name,spend,actions,cost_per_action_type",
}

// GetInsightsByLevel busca as linhas de insights da conta de anúncios para um
// nível de hierarquia. Erros de transporte ou da API do Meta abortam a coleta
// em andamento; não há retry aqui
func (c *MetaClient) GetInsightsByLevel(level domain.Level, datePreset string) ([]metadomain.AdInsight, error) {
	if err := c.ensureAccessToken(); err != nil {
		return nil, err
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, c.Cfg.Meta.AdAccountID)

	params := url.Values{}
	params.Add("level", string(level))
	params.Add("date_preset", datePreset)
	params.Add("fields", insightFieldsByLevel[level])
	params.Add("use_unified_attribution_setting", "true")
	params.Add("limit", "500")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler o corpo da resposta")
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(level, resp.StatusCode, body)
	}

	var response ResponseAdInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}

// handleErrorResponse decodifica o payload de erro da API do Meta e monta um
// erro descritivo para o chamador
func (c *MetaClient) handleErrorResponse(level domain.Level, statusCode int, body []byte) error {
	var errResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err != nil {
		return fmt.Errorf("erro da API do Meta para o nível %s: status %d", level, statusCode)
	}

	logrus.WithFields(logrus.Fields{
		"level":       level,
		"status_code": statusCode,
		"error_code":  errResponse.Error.Code,
		"error_type":  errResponse.Error.Type,
		"fbtrace_id":  errResponse.Error.FBTraceID,
	}).Error("Erro retornado pela API do Meta")

	if errResponse.IsRateLimited() {
		return fmt.Errorf("limite de requisições da API do Meta atingido para o nível %s: %s", level, errResponse.Error.Message)
	}

	return fmt.Errorf("erro da API do Meta para o nível %s: %s", level, errResponse.Error.Message)
}
