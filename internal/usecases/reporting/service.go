package reporting

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Service implementa Reporter orquestrando a cascata de chamadas à Graph
// API: campanhas, depois insights e anúncios por campanha, depois criativos
// por anúncio.
type Service struct {
	cfg            *config.Config
	accountService account.AccountService
	client         metaclient.Client

	now func() time.Time
}

func NewService(cfg *config.Config, accountService account.AccountService, client metaclient.Client) Reporter {
	return &Service{
		cfg:            cfg,
		accountService: accountService,
		client:         client,
		now:            time.Now,
	}
}

func (s *Service) GetCampaignReport(ctx context.Context, since, until string) (*domain.CampaignReportResponse, error) {
	acct, err := s.accountService.Context()
	if err != nil {
		return nil, err
	}

	if timeout := s.cfg.Report.RequestTimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	dateRange, err := ResolveDateRange(since, until, acct.TimezoneOffsetHours, s.cfg.Report.LookbackDays, s.now())
	if err != nil {
		return nil, err
	}

	window := InsightWindowFor(dateRange, s.cfg.Report.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"account_id":  acct.AccountID,
		"start":       dateRange.Start,
		"end":         dateRange.End,
		"date_preset": window.DatePreset,
	}).Debug("report: resolved date range")

	statusFilter := domain.CampaignStatusFilter(s.cfg.Report.CampaignStatusFilter)

	// Falha na listagem de campanhas é fatal para a requisição
	campaigns, err := s.client.GetAdCampaignsByAccountID(ctx, acct.AccountID, statusFilter, s.cfg.Report.CampaignLimit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acct.AccountID,
			"error":      err.Error(),
		}).Error("report: failed to fetch campaigns")
		return nil, errors.Wrap(err, "failed to fetch campaigns")
	}

	reports := s.fetchCampaignDetails(ctx, campaigns, window)

	if !s.cfg.Report.IncludeZeroSpend {
		reports = filterZeroSpend(reports)
	}

	totals := aggregateTotals(reports)

	if domain.ResponseShape(s.cfg.Report.ResponseShape) == domain.ResponseShapeFlattened {
		for _, report := range reports {
			snapshot := report.Insights
			report.MetricsSnapshot = &snapshot
		}
	}

	return &domain.CampaignReportResponse{
		Success: true,
		Message: "Data retrieved successfully",
		DateRange: domain.ReportDateRange{
			Start: dateRange.DisplayStart,
			End:   dateRange.DisplayEnd,
		},
		Totals: totals,
		Data:   domain.ReportData{Campaigns: reports},
	}, nil
}

// fetchCampaignDetails dispara uma goroutine por campanha, limitada por um
// semáforo, e junta os resultados por índice. Cada ramo escreve apenas na
// sua posição do slice, então não há estado compartilhado entre eles.
func (s *Service) fetchCampaignDetails(ctx context.Context, campaigns []metadomain.Campaign, window *domain.InsightWindow) []*domain.CampaignReport {
	reports := make([]*domain.CampaignReport, len(campaigns))

	maxConcurrent := s.cfg.Report.MaxConcurrentCampaigns
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	requestDelay := time.Duration(s.cfg.Report.RequestDelayMs) * time.Millisecond

	var wg sync.WaitGroup
	for i, campaign := range campaigns {
		// Pausa de melhor esforço entre disparos, para não rajar a API
		if i > 0 && requestDelay > 0 {
			time.Sleep(requestDelay)
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, c metadomain.Campaign) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			reports[idx] = s.buildCampaignReport(ctx, c, window)
		}(i, campaign)
	}

	wg.Wait()

	return reports
}

// buildCampaignReport monta a entrada de uma campanha. Qualquer falha no
// ramo (insights ou anúncios) rebaixa a entrada para métricas zeradas com a
// descrição do erro, sem derrubar o relatório inteiro.
func (s *Service) buildCampaignReport(ctx context.Context, campaign metadomain.Campaign, window *domain.InsightWindow) *domain.CampaignReport {
	report := &domain.CampaignReport{
		ID:              campaign.ID,
		Name:            campaign.Name,
		Status:          campaign.Status,
		Objective:       campaign.Objective,
		EffectiveStatus: campaign.EffectiveStatus,
		CreatedTime:     campaign.CreatedTime,
		UpdatedTime:     campaign.UpdatedTime,
		Ads:             []domain.AdReport{},
	}

	var (
		insight    *metadomain.CampaignInsight
		insightErr error
		ads        []metadomain.Ad
		adsErr     error
	)

	// Insights e anúncios da campanha são buscados em paralelo
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		insight, insightErr = s.client.GetAdCampaignInsightsByID(ctx, campaign.ID, window)
	}()

	go func() {
		defer wg.Done()
		ads, adsErr = s.client.GetAdsByCampaignID(ctx, campaign.ID, s.cfg.Report.AdsPerCampaign)
	}()

	wg.Wait()

	if insightErr != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       insightErr.Error(),
		}).Warn("report: failed to fetch campaign insights, degrading entry")
		report.Error = insightErr.Error()
		return report
	}

	if adsErr != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       adsErr.Error(),
		}).Warn("report: failed to fetch campaign ads, degrading entry")
		report.Error = adsErr.Error()
		return report
	}

	report.Insights = snapshotFromInsight(insight)
	report.Ads = s.fetchAdImages(ctx, ads)

	return report
}

// fetchAdImages busca os criativos de cada anúncio em paralelo e extrai a
// referência de imagem. Falha na busca de criativos não é erro: o anúncio
// sai com a lista de imagens vazia.
func (s *Service) fetchAdImages(ctx context.Context, ads []metadomain.Ad) []domain.AdReport {
	adReports := make([]domain.AdReport, len(ads))

	var wg sync.WaitGroup
	for i, ad := range ads {
		wg.Add(1)

		go func(idx int, ad metadomain.Ad) {
			defer wg.Done()

			adReport := domain.AdReport{
				ID:     ad.ID,
				Name:   ad.Name,
				Status: ad.Status,
				Images: []domain.ImageRef{},
			}

			creatives, err := s.client.GetAdCreativesByAdID(ctx, ad.ID, s.cfg.Report.CreativesPerAd)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"ad_id": ad.ID,
					"error": err.Error(),
				}).Warn("report: failed to fetch ad creatives")
				adReports[idx] = adReport
				return
			}

			for _, creative := range creatives {
				if ref, ok := extractImageRef(creative); ok {
					adReport.Images = append(adReport.Images, ref)
				}
			}

			adReports[idx] = adReport
		}(i, ad)
	}

	wg.Wait()

	return adReports
}

// extractImageRef prefere a image_url direta do criativo; na ausência, cai
// para a picture do link_data da object_story_spec. Sem nenhuma das duas, o
// criativo não contribui com imagem.
func extractImageRef(creative metadomain.AdCreative) (domain.ImageRef, bool) {
	if creative.ImageURL != "" {
		return domain.ImageRef{Type: domain.ImageRefTypeImage, URL: creative.ImageURL}, true
	}

	if creative.ObjectStorySpec != nil && creative.ObjectStorySpec.LinkData != nil && creative.ObjectStorySpec.LinkData.Picture != "" {
		return domain.ImageRef{Type: domain.ImageRefTypeLinkImage, URL: creative.ObjectStorySpec.LinkData.Picture}, true
	}

	return domain.ImageRef{}, false
}

// snapshotFromInsight converte o registro bruto da API (numéricos em
// string) para o snapshot do relatório. Campo ausente ou inconvertível vira
// zero, nunca null.
func snapshotFromInsight(insight *metadomain.CampaignInsight) domain.MetricsSnapshot {
	if insight == nil {
		return domain.MetricsSnapshot{}
	}

	return domain.MetricsSnapshot{
		Spend:       parseFloat(insight.Spend, "spend"),
		Impressions: parseInt(insight.Impressions, "impressions"),
		Clicks:      parseInt(insight.Clicks, "clicks"),
		Reach:       parseInt(insight.Reach, "reach"),
		CTR:         parseFloat(insight.CTR, "ctr"),
		CPC:         parseFloat(insight.CPC, "cpc"),
		CPM:         parseFloat(insight.CPM, "cpm"),
		Frequency:   parseFloat(insight.Frequency, "frequency"),
	}
}

// aggregateTotals soma as métricas de todas as campanhas e recalcula CTR e
// CPC a partir das somas, para manter as razões consistentes com os totais.
func aggregateTotals(reports []*domain.CampaignReport) domain.Totals {
	totals := domain.Totals{}

	for _, report := range reports {
		totals.Spend += report.Insights.Spend
		totals.Impressions += report.Insights.Impressions
		totals.Clicks += report.Insights.Clicks
		totals.Reach += report.Insights.Reach
	}

	if totals.Impressions > 0 {
		totals.CTR = utils.RoundWithTwoDecimalPlace(float64(totals.Clicks) / float64(totals.Impressions) * 100)
	}

	if totals.Clicks > 0 {
		totals.CPC = utils.RoundWithTwoDecimalPlace(totals.Spend / float64(totals.Clicks))
	}

	totals.Spend = utils.RoundWithTwoDecimalPlace(totals.Spend)

	return totals
}

// filterZeroSpend descarta campanhas sem gasto na janela, preservando as
// entradas rebaixadas por erro para que a degradação continue visível.
func filterZeroSpend(reports []*domain.CampaignReport) []*domain.CampaignReport {
	filtered := make([]*domain.CampaignReport, 0, len(reports))
	for _, report := range reports {
		if report.Insights.Spend > 0 || report.Error != "" {
			filtered = append(filtered, report)
		}
	}
	return filtered
}

func parseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("report: error converting insight value to float")
		return 0
	}

	return parsed
}

func parseInt(value, field string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("report: error converting insight value to integer")
		return 0
	}

	return parsed
}
