package domain

// MetricRecord representa a performance de uma entidade (campanha, conjunto ou
// anúncio) em um momento de coleta, já normalizada no formato plano persistido.
// CostPerConversion é nil quando não há conversões nem custo reportado pela
// API; nunca é negativo.
type MetricRecord struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	CampaignID        string   `json:"campaign_id,omitempty"`
	AdsetID           string   `json:"adset_id,omitempty"`
	Spend             float64  `json:"spend"`
	Conversions       int      `json:"conv"`
	CostPerConversion *float64 `json:"cpl"`
}
