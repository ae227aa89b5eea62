package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type ResponseAdCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetAdCampaignsByAccountID lista as campanhas da conta. Por padrão sem
// filtro de effective_status, para que campanhas encerradas e arquivadas
// também apareçam no relatório.
func (c *MetaClient) GetAdCampaignsByAccountID(ctx context.Context, accountID string, statusFilter domain.CampaignStatusFilter, limit int) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,objective,created_time,updated_time,effective_status")
	params.Add("limit", strconv.Itoa(limit))
	if statusFilter == domain.CampaignStatusFilterActiveOrPaused {
		params.Add("effective_status", "['ACTIVE','PAUSED']")
	}
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	if response.Data == nil {
		return []metadomain.Campaign{}, nil
	}

	return response.Data, nil
}
