package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// GetAdsByCampaignID lista uma amostra limitada dos anúncios da campanha.
func (c *MetaClient) GetAdsByCampaignID(ctx context.Context, campaignID string, limit int) ([]metadomain.Ad, error) {
	baseURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("limit", strconv.Itoa(limit))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	if response.Data == nil {
		return []metadomain.Ad{}, nil
	}

	return response.Data, nil
}
