package domain

// CollectionSummary resume uma coleta bem sucedida para resposta da API e logs
type CollectionSummary struct {
	SnapshotID string           `json:"doc_id"`
	Counts     CollectionCounts `json:"counts"`
}

// CollectionCounts contém o número de registros coletados por nível
type CollectionCounts struct {
	Campaigns int `json:"campaigns"`
	Adsets    int `json:"adsets"`
	Ads       int `json:"ads"`
}
