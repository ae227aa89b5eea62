package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	accountmocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/account/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Report: config.Report{
			LookbackDays:           30,
			CampaignStatusFilter:   "all",
			ResponseShape:          "nested",
			IncludeZeroSpend:       true,
			CampaignLimit:          200,
			AdsPerCampaign:         5,
			CreativesPerAd:         2,
			MaxConcurrentCampaigns: 2,
			RequestDelayMs:         0,
			RequestTimeoutSeconds:  5,
		},
	}
}

func testAccountContext() *domain.AccountContext {
	return &domain.AccountContext{
		AccessToken: "test-token",
		AccountID:   "act_123",
	}
}

func newTestService(cfg *config.Config, accountService account.AccountService, client *metamocks.MockClient) *Service {
	return &Service{
		cfg:            cfg,
		accountService: accountService,
		client:         client,
		now: func() time.Time {
			return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestGetCampaignReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := accountmocks.NewMockAccountService(ctrl)
	mockClient := metamocks.NewMockClient(ctrl)

	tests := []struct {
		name     string
		cfg      *config.Config
		since    string
		until    string
		setup    func(cfg *config.Config)
		validate func(t *testing.T, resp *domain.CampaignReportResponse, err error)
	}{
		{
			name:  "Relatório completo com agregação de totais",
			cfg:   testConfig(),
			since: "01-05-2024",
			until: "31-05-2024",
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)

				mockClient.EXPECT().
					GetAdCampaignsByAccountID(gomock.Any(), "act_123", domain.CampaignStatusFilterAll, 200).
					Return([]metadomain.Campaign{
						{ID: "c1", Name: "Campanha A", Status: "ACTIVE", Objective: "OUTCOME_ENGAGEMENT"},
						{ID: "c2", Name: "Campanha B", Status: "ARCHIVED"},
					}, nil)

				window := &domain.InsightWindow{Since: "2024-05-01", Until: "2024-05-31"}
				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c1", window).
					Return(&metadomain.CampaignInsight{
						Spend:       "100.50",
						Impressions: "1000",
						Clicks:      "50",
						Reach:       "800",
						CTR:         "5",
						CPC:         "2.01",
						CPM:         "100.5",
					}, nil)
				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c2", window).
					Return(nil, nil) // Campanha sem entrega no período

				mockClient.EXPECT().
					GetAdsByCampaignID(gomock.Any(), "c1", 5).
					Return([]metadomain.Ad{{ID: "a1", Name: "Anúncio 1", Status: "ACTIVE"}}, nil)
				mockClient.EXPECT().
					GetAdsByCampaignID(gomock.Any(), "c2", 5).
					Return([]metadomain.Ad{}, nil)

				mockClient.EXPECT().
					GetAdCreativesByAdID(gomock.Any(), "a1", 2).
					Return([]metadomain.AdCreative{{ImageURL: "https://cdn.example.com/img.png"}}, nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Equal(t, "Data retrieved successfully", resp.Message)
				assert.Equal(t, "01-05-2024", resp.DateRange.Start)
				assert.Equal(t, "31-05-2024", resp.DateRange.End)

				require.Len(t, resp.Data.Campaigns, 2)

				first := resp.Data.Campaigns[0]
				assert.Equal(t, "c1", first.ID)
				assert.Equal(t, 100.50, first.Insights.Spend)
				assert.Equal(t, 1000, first.Insights.Impressions)
				require.Len(t, first.Ads, 1)
				require.Len(t, first.Ads[0].Images, 1)
				assert.Equal(t, domain.ImageRefTypeImage, first.Ads[0].Images[0].Type)

				// Campanha sem insights sai zerada, nunca nula
				second := resp.Data.Campaigns[1]
				assert.Equal(t, domain.MetricsSnapshot{}, second.Insights)
				assert.Empty(t, second.Error)
				assert.Empty(t, second.Ads)

				// Totais somados e razões derivadas das somas
				assert.Equal(t, 100.50, resp.Totals.Spend)
				assert.Equal(t, 1000, resp.Totals.Impressions)
				assert.Equal(t, 50, resp.Totals.Clicks)
				assert.Equal(t, 800, resp.Totals.Reach)
				assert.Equal(t, 5.0, resp.Totals.CTR)
				assert.Equal(t, 2.01, resp.Totals.CPC)

				// Formato nested não promove métricas ao topo
				assert.Nil(t, first.MetricsSnapshot)
			},
		},
		{
			name: "Janela padrão usa o preset relativo",
			cfg:  testConfig(),
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)

				mockClient.EXPECT().
					GetAdCampaignsByAccountID(gomock.Any(), "act_123", domain.CampaignStatusFilterAll, 200).
					Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha A"}}, nil)

				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c1", &domain.InsightWindow{DatePreset: "last_30d"}).
					Return(nil, nil)
				mockClient.EXPECT().
					GetAdsByCampaignID(gomock.Any(), "c1", 5).
					Return([]metadomain.Ad{}, nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "16-05-2024", resp.DateRange.Start)
				assert.Equal(t, "15-06-2024", resp.DateRange.End)
			},
		},
		{
			name:  "Falha nos insights rebaixa a campanha sem derrubar o relatório",
			cfg:   testConfig(),
			since: "01-05-2024",
			until: "31-05-2024",
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)

				mockClient.EXPECT().
					GetAdCampaignsByAccountID(gomock.Any(), "act_123", domain.CampaignStatusFilterAll, 200).
					Return([]metadomain.Campaign{
						{ID: "c1", Name: "Campanha A"},
						{ID: "c2", Name: "Campanha B"},
					}, nil)

				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c1", gomock.Any()).
					Return(nil, errors.New("rate limit reached"))
				mockClient.EXPECT().
					GetAdsByCampaignID(gomock.Any(), "c1", 5).
					Return([]metadomain.Ad{}, nil)

				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c2", gomock.Any()).
					Return(&metadomain.CampaignInsight{Spend: "10", Impressions: "100", Clicks: "4"}, nil)
				mockClient.EXPECT().
					GetAdsByCampaignID(gomock.Any(), "c2", 5).
					Return([]metadomain.Ad{}, nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				require.Len(t, resp.Data.Campaigns, 2)

				degraded := resp.Data.Campaigns[0]
				assert.Equal(t, "c1", degraded.ID)
				assert.Equal(t, 0.0, degraded.Insights.Spend)
				assert.Contains(t, degraded.Error, "rate limit reached")
				assert.Empty(t, degraded.Ads)

				// Totais contam apenas a campanha saudável
				assert.Equal(t, 10.0, resp.Totals.Spend)
				assert.Equal(t, 100, resp.Totals.Impressions)
				assert.Equal(t, 4.0, resp.Totals.CTR)
				assert.Equal(t, 2.5, resp.Totals.CPC)
			},
		},
		{
			name:  "Criativo sem imagem direta cai para o link_data",
			cfg:   testConfig(),
			since: "01-05-2024",
			until: "31-05-2024",
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)

				mockClient.EXPECT().
					GetAdCampaignsByAccountID(gomock.Any(), "act_123", domain.CampaignStatusFilterAll, 200).
					Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha A"}}, nil)

				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c1", gomock.Any()).
					Return(nil, nil)
				mockClient.EXPECT().
					GetAdsByCampaignID(gomock.Any(), "c1", 5).
					Return([]metadomain.Ad{
						{ID: "a1", Name: "Com link_data"},
						{ID: "a2", Name: "Sem imagem"},
					}, nil)

				mockClient.EXPECT().
					GetAdCreativesByAdID(gomock.Any(), "a1", 2).
					Return([]metadomain.AdCreative{
						{
							ObjectStorySpec: &metadomain.ObjectStorySpec{
								LinkData: &metadomain.LinkData{Picture: "https://cdn.example.com/link.png"},
							},
						},
					}, nil)
				mockClient.EXPECT().
					GetAdCreativesByAdID(gomock.Any(), "a2", 2).
					Return([]metadomain.AdCreative{{ThumbnailURL: "ignored"}}, nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.NoError(t, err)
				require.Len(t, resp.Data.Campaigns, 1)
				ads := resp.Data.Campaigns[0].Ads
				require.Len(t, ads, 2)

				require.Len(t, ads[0].Images, 1)
				assert.Equal(t, domain.ImageRefTypeLinkImage, ads[0].Images[0].Type)
				assert.Equal(t, "https://cdn.example.com/link.png", ads[0].Images[0].URL)

				// Sem image_url e sem link_data a lista fica vazia, sem erro
				assert.Empty(t, ads[1].Images)
				assert.Empty(t, resp.Data.Campaigns[0].Error)
			},
		},
		{
			name:  "Formato flattened promove as métricas ao topo da campanha",
			since: "01-05-2024",
			until: "31-05-2024",
			cfg: func() *config.Config {
				cfg := testConfig()
				cfg.Report.ResponseShape = "flattened"
				return cfg
			}(),
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)

				mockClient.EXPECT().
					GetAdCampaignsByAccountID(gomock.Any(), "act_123", domain.CampaignStatusFilterAll, 200).
					Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha A"}}, nil)

				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c1", gomock.Any()).
					Return(&metadomain.CampaignInsight{Spend: "42.42", Impressions: "10"}, nil)
				mockClient.EXPECT().
					GetAdsByCampaignID(gomock.Any(), "c1", 5).
					Return([]metadomain.Ad{}, nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.NoError(t, err)
				require.Len(t, resp.Data.Campaigns, 1)

				campaign := resp.Data.Campaigns[0]
				require.NotNil(t, campaign.MetricsSnapshot)
				assert.Equal(t, campaign.Insights, *campaign.MetricsSnapshot)
			},
		},
		{
			name:  "Filtro de gasto zero descarta campanhas sem entrega mas preserva as com erro",
			since: "01-05-2024",
			until: "31-05-2024",
			cfg: func() *config.Config {
				cfg := testConfig()
				cfg.Report.IncludeZeroSpend = false
				return cfg
			}(),
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)

				mockClient.EXPECT().
					GetAdCampaignsByAccountID(gomock.Any(), "act_123", domain.CampaignStatusFilterAll, 200).
					Return([]metadomain.Campaign{
						{ID: "c1", Name: "Com gasto"},
						{ID: "c2", Name: "Sem gasto"},
						{ID: "c3", Name: "Com erro"},
					}, nil)

				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c1", gomock.Any()).
					Return(&metadomain.CampaignInsight{Spend: "5.00"}, nil)
				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c2", gomock.Any()).
					Return(nil, nil)
				mockClient.EXPECT().
					GetAdCampaignInsightsByID(gomock.Any(), "c3", gomock.Any()).
					Return(nil, errors.New("boom"))

				mockClient.EXPECT().
					GetAdsByCampaignID(gomock.Any(), gomock.Any(), 5).
					Return([]metadomain.Ad{}, nil).
					Times(3)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.NoError(t, err)
				require.Len(t, resp.Data.Campaigns, 2)
				assert.Equal(t, "c1", resp.Data.Campaigns[0].ID)
				assert.Equal(t, "c3", resp.Data.Campaigns[1].ID)
			},
		},
		{
			name: "Filtro de status legado é repassado à listagem",
			cfg: func() *config.Config {
				cfg := testConfig()
				cfg.Report.CampaignStatusFilter = "active_paused"
				return cfg
			}(),
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)

				mockClient.EXPECT().
					GetAdCampaignsByAccountID(gomock.Any(), "act_123", domain.CampaignStatusFilterActiveOrPaused, 200).
					Return([]metadomain.Campaign{}, nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.NoError(t, err)
				assert.Empty(t, resp.Data.Campaigns)
				assert.Equal(t, domain.Totals{}, resp.Totals)
			},
		},
		{
			name: "Falha na listagem de campanhas é fatal",
			cfg:  testConfig(),
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)

				mockClient.EXPECT().
					GetAdCampaignsByAccountID(gomock.Any(), "act_123", domain.CampaignStatusFilterAll, 200).
					Return(nil, errors.New("upstream unavailable"))
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.Error(t, err)
				assert.Nil(t, resp)
				assert.Contains(t, err.Error(), "upstream unavailable")
			},
		},
		{
			name:  "Data malformada é rejeitada antes de qualquer chamada",
			cfg:   testConfig(),
			since: "bad",
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(testAccountContext(), nil)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				assert.Nil(t, resp)
			},
		},
		{
			name: "Configuração ausente interrompe a requisição",
			cfg:  testConfig(),
			setup: func(cfg *config.Config) {
				mockAccount.EXPECT().Context().Return(nil, account.ErrMissingConfiguration)
			},
			validate: func(t *testing.T, resp *domain.CampaignReportResponse, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, account.ErrMissingConfiguration)
				assert.Nil(t, resp)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(tt.cfg)

			service := newTestService(tt.cfg, mockAccount, mockClient)
			resp, err := service.GetCampaignReport(context.Background(), tt.since, tt.until)

			tt.validate(t, resp, err)
		})
	}
}

func TestAggregateTotals(t *testing.T) {
	tests := []struct {
		name     string
		reports  []*domain.CampaignReport
		expected domain.Totals
	}{
		{
			name:     "Sem campanhas tudo zera",
			reports:  nil,
			expected: domain.Totals{},
		},
		{
			name: "CTR zera quando não há impressões",
			reports: []*domain.CampaignReport{
				{Insights: domain.MetricsSnapshot{Spend: 10, Clicks: 5}},
			},
			expected: domain.Totals{Spend: 10, Clicks: 5, CTR: 0, CPC: 2},
		},
		{
			name: "CPC zera quando não há cliques",
			reports: []*domain.CampaignReport{
				{Insights: domain.MetricsSnapshot{Spend: 10, Impressions: 100}},
			},
			expected: domain.Totals{Spend: 10, Impressions: 100, CTR: 0, CPC: 0},
		},
		{
			name: "Somas e razões com arredondamento em duas casas",
			reports: []*domain.CampaignReport{
				{Insights: domain.MetricsSnapshot{Spend: 10.333, Impressions: 300, Clicks: 7, Reach: 100}},
				{Insights: domain.MetricsSnapshot{Spend: 5.111, Impressions: 700, Clicks: 3, Reach: 200}},
			},
			expected: domain.Totals{
				Spend:       15.44,
				Impressions: 1000,
				Clicks:      10,
				Reach:       300,
				CTR:         1,    // 10/1000*100
				CPC:         1.54, // 15.444/10 arredondado
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregateTotals(tt.reports))
		})
	}
}
