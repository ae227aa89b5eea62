package reporting

import (
	"context"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Reporter define a interface do relatório de campanhas consumido pelo
// dashboard.
type Reporter interface {
	// GetCampaignReport monta o relatório completo da conta configurada
	// para o intervalo opcional since/until (DD-MM-YYYY).
	GetCampaignReport(ctx context.Context, since, until string) (*domain.CampaignReportResponse, error)
}
