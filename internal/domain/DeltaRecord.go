package domain

// DeltaRecord é a visão derivada de uma entidade combinando os acumulados do
// dia (snapshot atual) com a janela dos últimos ~30 minutos (diferença entre
// os dois snapshots mais recentes). Construído por requisição e nunca
// persistido.
//
// Os campos de janela podem ser negativos quando o Meta revisa totais
// históricos para baixo entre coletas; o valor é preservado como veio.
type DeltaRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CampaignID string   `json:"campaign_id,omitempty"`
	AdsetID    string   `json:"adset_id,omitempty"`
	SpendToday float64  `json:"spend_today"`
	ConvToday  int      `json:"conv_today"`
	CPLToday   *float64 `json:"cpl_today"`
	Spend30m   float64  `json:"spend_30m"`
	Conv30m    int      `json:"conv_30m"`
	CPL30m     *float64 `json:"cpl_30m"`
}
