package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type ResponseAdCampaignInsights struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

const insightFields = "spend,impressions,clicks,reach,ctr,cpc,cpm,frequency,actions,cost_per_action_type"

// GetAdCampaignInsightsByID busca as métricas agregadas da campanha na
// janela informada. Uma campanha sem entrega no período devolve data vazio
// na API; isso não é erro, o retorno é (nil, nil).
func (c *MetaClient) GetAdCampaignInsightsByID(ctx context.Context, campaignID string, window *domain.InsightWindow) (*metadomain.CampaignInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("level", "campaign")

	if window.DatePreset != "" {
		params.Add("date_preset", window.DatePreset)
	} else {
		timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", window.Since, window.Until)
		params.Add("time_range", timeRange)
	}

	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdCampaignInsights
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}
