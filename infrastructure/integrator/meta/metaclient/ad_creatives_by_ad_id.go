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

type ResponseAdCreatives struct {
	Data   []metadomain.AdCreative `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetAdCreativesByAdID lista uma amostra limitada dos criativos do anúncio,
// com os campos necessários para extrair a referência de imagem.
func (c *MetaClient) GetAdCreativesByAdID(ctx context.Context, adID string, limit int) ([]metadomain.AdCreative, error) {
	baseURL := fmt.Sprintf("%s/%s/adcreatives", c.Cfg.Meta.URL, adID)

	params := url.Values{}
	params.Add("fields", "image_url,thumbnail_url,object_story_spec")
	params.Add("limit", strconv.Itoa(limit))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdCreatives
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	if response.Data == nil {
		return []metadomain.AdCreative{}, nil
	}

	return response.Data, nil
}
