package metadomain

type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	Objective       string `json:"objective"`
	EffectiveStatus string `json:"effective_status"`
	CreatedTime     string `json:"created_time"`
	UpdatedTime     string `json:"updated_time"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// CampaignInsight é o registro bruto de /insights. A API do Meta devolve os
// campos numéricos como strings.
type CampaignInsight struct {
	AccountID    string `json:"account_id"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Spend        string `json:"spend"`
	Impressions  string `json:"impressions"`
	Clicks       string `json:"clicks"`
	Reach        string `json:"reach"`
	CTR          string `json:"ctr"`
	CPC          string `json:"cpc"`
	CPM          string `json:"cpm"`
	Frequency    string `json:"frequency"`
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`
}
