package account

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// AccountService resolve e mantém o AccountContext usado pelo relatório.
type AccountService interface {
	// Context devolve um snapshot imutável do contexto da conta ou
	// ErrMissingConfiguration quando credencial/conta não estão configuradas.
	Context() (*domain.AccountContext, error)

	// Refresh reconsulta o fuso horário da conta na API do Meta e troca o
	// snapshot atual. Falha na consulta mantém o snapshot anterior.
	Refresh(ctx context.Context) error
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client

	mu      sync.RWMutex
	current *domain.AccountContext
}

func NewService(cfg *config.Config, client metaclient.Client) AccountService {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) Context() (*domain.AccountContext, error) {
	if s.cfg.Meta.AccessToken == "" || s.cfg.Meta.AdAccountID == "" {
		return nil, ErrMissingConfiguration
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current != nil {
		snapshot := *s.current
		return &snapshot, nil
	}

	// Sem snapshot carregado (Refresh nunca rodou ou falhou no boot):
	// segue com offset zero, como no comportamento de fallback do fuso.
	return &domain.AccountContext{
		AccessToken: s.cfg.Meta.AccessToken,
		AccountID:   NormalizeAccountID(s.cfg.Meta.AdAccountID),
	}, nil
}

func (s *Service) Refresh(ctx context.Context) error {
	if s.cfg.Meta.AccessToken == "" || s.cfg.Meta.AdAccountID == "" {
		return ErrMissingConfiguration
	}

	accountID := NormalizeAccountID(s.cfg.Meta.AdAccountID)

	account, err := s.client.GetAdAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("account: failed to fetch ad account timezone, keeping previous context")
		return err
	}

	next := &domain.AccountContext{
		AccessToken:         s.cfg.Meta.AccessToken,
		AccountID:           accountID,
		TimezoneID:          account.TimezoneID,
		TimezoneName:        account.TimezoneName,
		TimezoneOffsetHours: account.TimezoneOffsetHoursUTC,
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"account_id":      accountID,
		"timezone_name":   account.TimezoneName,
		"timezone_offset": account.TimezoneOffsetHoursUTC,
	}).Info("account: ad account context refreshed")

	return nil
}

// NormalizeAccountID garante o prefixo "act_" exigido pela Graph API.
func NormalizeAccountID(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
