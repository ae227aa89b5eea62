package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

// GetAdAccountByID busca os campos de fuso horário da conta de anúncios.
// accountID deve vir normalizado com o prefixo "act_".
func (c *MetaClient) GetAdAccountByID(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "timezone_id,timezone_name,timezone_offset_hours_utc")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var account metadomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	return &account, nil
}
