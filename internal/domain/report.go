package domain

// CampaignStatusFilter controla quais campanhas entram na listagem.
type CampaignStatusFilter string

const (
	// CampaignStatusFilterAll inclui campanhas encerradas e arquivadas.
	CampaignStatusFilterAll CampaignStatusFilter = "all"
	// CampaignStatusFilterActiveOrPaused reproduz o comportamento legado
	// de listar apenas campanhas ativas ou pausadas.
	CampaignStatusFilterActiveOrPaused CampaignStatusFilter = "active_paused"
)

// ResponseShape controla onde as métricas aparecem no JSON de cada campanha.
type ResponseShape string

const (
	ResponseShapeNested    ResponseShape = "nested"
	ResponseShapeFlattened ResponseShape = "flattened"
)

const (
	ImageRefTypeImage     = "image"
	ImageRefTypeLinkImage = "link_image"
)

// MetricsSnapshot são as métricas de performance de uma campanha na janela
// consultada. Campos ausentes na origem viram zero, nunca null.
type MetricsSnapshot struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Reach       int     `json:"reach"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	Frequency   float64 `json:"frequency"`
}

// Totals agrega as métricas de todas as campanhas da resposta. CTR e CPC
// são recalculados a partir das somas para manter consistência com os
// totais, não somados das razões por campanha.
type Totals struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Reach       int     `json:"reach"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
}

type ImageRef struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type AdReport struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Status string     `json:"status"`
	Images []ImageRef `json:"images"`
}

// CampaignReport é a entrada de uma campanha na resposta do relatório.
// O ponteiro embutido só é preenchido no formato "flattened"; com ele nulo
// o encoding/json omite os campos promovidos e as métricas ficam apenas
// dentro de "insights".
type CampaignReport struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	Objective       string `json:"objective,omitempty"`
	EffectiveStatus string `json:"effective_status,omitempty"`
	CreatedTime     string `json:"created_time,omitempty"`
	UpdatedTime     string `json:"updated_time,omitempty"`

	*MetricsSnapshot

	Insights MetricsSnapshot `json:"insights"`
	Ads      []AdReport      `json:"ads"`
	Error    string          `json:"error,omitempty"`
}

type ReportDateRange struct {
	Start string `json:"start"` // DD-MM-YYYY
	End   string `json:"end"`   // DD-MM-YYYY
}

type ReportData struct {
	Campaigns []*CampaignReport `json:"campaigns"`
}

type CampaignReportResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	DateRange ReportDateRange `json:"dateRange"`
	Totals    Totals          `json:"totals"`
	Data      ReportData      `json:"data"`
}
