package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
)

// AccountContextRefreshConfig representa a configuração do agendador de
// atualização do contexto da conta
type AccountContextRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// AccountContextRefreshService reconsulta periodicamente o fuso horário da
// conta de anúncios na API do Meta, mantendo o contexto carregado no boot
// equivalente ao que seria obtido consultando a conta a cada requisição.
type AccountContextRefreshService struct {
	scheduler      *gocron.Scheduler
	config         AccountContextRefreshConfig
	accountService account.AccountService
	refreshRunning bool
	refreshMutex   sync.Mutex
	lastRefreshAt  time.Time
}

// NewAccountContextRefreshService cria uma nova instância do serviço de
// atualização do contexto da conta
func NewAccountContextRefreshService(
	accountService account.AccountService,
	appConfig *config.Config,
) *AccountContextRefreshService {
	refreshConfig := AccountContextRefreshConfig{
		CronSchedule: appConfig.TimezoneRefresh.CronSchedule,
		Enabled:      appConfig.TimezoneRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de contexto da conta carregada")

	return &AccountContextRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		accountService: accountService,
	}
}

// Start inicia o agendador
func (s *AccountContextRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica do contexto da conta desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do contexto da conta")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAccountContext(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do contexto da conta: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do contexto da conta")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAccountContext executa uma atualização, ignorando disparos
// sobrepostos
func (s *AccountContextRefreshService) refreshAccountContext(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do contexto da conta já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	if err := s.accountService.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar o contexto da conta")
		return
	}

	s.lastRefreshAt = time.Now()
}
