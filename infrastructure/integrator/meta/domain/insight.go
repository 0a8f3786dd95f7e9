package metadomain

// Action é uma entrada das listas "actions" e "cost_per_action_type" da API
// de insights do Meta. Os valores numéricos chegam como string
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight é uma linha bruta de insights retornada pela API do Meta para
// qualquer um dos níveis (campaign, adset ou ad). Os campos de identificação
// preenchidos dependem do nível solicitado
type AdInsight struct {
	CampaignID        string   `json:"campaign_id"`
	CampaignName      string   `json:"campaign_name"`
	AdsetID           string   `json:"adset_id"`
	AdsetName         string   `json:"adset_name"`
	AdID              string   `json:"ad_id"`
	AdName            string   `json:"ad_name"`
	Spend             string   `json:"spend"`
	Actions           []Action `json:"actions"`
	CostPerActionType []Action `json:"cost_per_action_type"`
	DateStart         string   `json:"date_start"`
	DateStop          string   `json:"date_stop"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}
