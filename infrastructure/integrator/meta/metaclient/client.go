package metaclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type Client interface {
	GetAdAccountByID(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	GetAdCampaignsByAccountID(ctx context.Context, accountID string, statusFilter domain.CampaignStatusFilter, limit int) ([]metadomain.Campaign, error)
	GetAdCampaignInsightsByID(ctx context.Context, campaignID string, window *domain.InsightWindow) (*metadomain.CampaignInsight, error)
	GetAdsByCampaignID(ctx context.Context, campaignID string, limit int) ([]metadomain.Ad, error)
	GetAdCreativesByAdID(ctx context.Context, adID string, limit int) ([]metadomain.AdCreative, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Meta.CallTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &MetaClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// doGet executa um GET na Graph API e devolve o corpo da resposta. Um
// envelope de erro do Meta é decodificado mesmo em respostas 200, já que a
// API ocasionalmente devolve o erro com status de sucesso.
func (c *MetaClient) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		logrus.WithFields(logrus.Fields{
			"status":     resp.StatusCode,
			"fbtrace_id": errResp.Error.FBTraceID,
			"error_type": errResp.Error.Type,
			"error_code": errResp.Error.Code,
		}).Error("Erro retornado pela API do Meta")
		return nil, errors.Errorf("meta api: %s", errResp.Error.String())
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("meta api: status inesperado %s", resp.Status)
	}

	return body, nil
}
