package normalizing

import (
	"strconv"

	"github.com/sirupsen/logrus"

	metadomain "github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/domain"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
)

// NormalizeInsight converte uma linha bruta de insights do Meta em um
// MetricRecord canônico do nível informado. A normalização nunca falha:
// valores ausentes ou malformados viram 0 (spend, conversões) ou nil (custo
// por conversão), para que um registro ruim não derrube a coleta inteira
func NormalizeInsight(raw metadomain.AdInsight, level domain.Level, actionType string) domain.MetricRecord {
	record := domain.MetricRecord{
		Spend:       parseSpend(raw.Spend),
		Conversions: extractActionValue(raw.Actions, actionType),
	}

	switch level {
	case domain.LevelCampaign:
		record.ID = raw.CampaignID
		record.Name = raw.CampaignName
	case domain.LevelAdset:
		record.ID = raw.AdsetID
		record.Name = raw.AdsetName
		record.CampaignID = raw.CampaignID
	case domain.LevelAd:
		record.ID = raw.AdID
		record.Name = raw.AdName
		record.CampaignID = raw.CampaignID
		record.AdsetID = raw.AdsetID
	}

	costPerAction := extractCostPerAction(raw.CostPerActionType, actionType)
	record.CostPerConversion = calculateCostPerConversion(record.Spend, record.Conversions, costPerAction)

	return record
}

// parseSpend converte o spend reportado como string pela API em um float não
// negativo. Ausente ou malformado vira 0
func parseSpend(raw string) float64 {
	if raw == "" {
		return 0
	}

	spend, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"spend_value": raw,
			"error":       err.Error(),
		}).Warn("normalize: erro ao converter spend, usando 0")
		return 0
	}

	if spend < 0 {
		return 0
	}

	return spend
}

// extractActionValue varre a lista de ações procurando a primeira entrada com
// o action_type alvo e retorna o valor truncado para inteiro. Retorna 0
// quando a lista é vazia, não há match ou o valor não é numérico
func extractActionValue(actions []metadomain.Action, actionType string) int {
	for _, action := range actions {
		if action.ActionType != actionType {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  actionType,
				"action_value": action.Value,
				"error":        err.Error(),
			}).Warn("normalize: erro ao converter valor da ação, usando 0")
			return 0
		}

		return int(value)
	}

	return 0
}

// extractCostPerAction varre a lista de custos por ação procurando a primeira
// entrada com o action_type alvo. Retorna nil quando não há match ou o valor
// não é numérico
func extractCostPerAction(entries []metadomain.Action, actionType string) *float64 {
	for _, entry := range entries {
		if entry.ActionType != actionType {
			continue
		}

		value, err := strconv.ParseFloat(entry.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  actionType,
				"action_value": entry.Value,
				"error":        err.Error(),
			}).Warn("normalize: erro ao converter custo por ação, ignorando")
			return nil
		}

		return &value
	}

	return nil
}

// calculateCostPerConversion deriva o custo final por conversão: prefere o
// valor reportado pela API quando presente e não negativo; senão calcula
// spend/conversões quando há conversões; senão nil. Nunca divide por zero e
// nunca retorna negativo
func calculateCostPerConversion(spend float64, conversions int, costPerAction *float64) *float64 {
	if costPerAction != nil && *costPerAction >= 0 {
		return costPerAction
	}

	if conversions > 0 {
		cpl := spend / float64(conversions)
		return &cpl
	}

	return nil
}
