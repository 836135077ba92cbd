// Package scheduler contém os serviços de agendamento de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portal-comercial-api/internal/config"
)

// RunPurger remove resumos de execução antigos
type RunPurger interface {
	DeleteRunsBefore(ctx context.Context, before time.Time) (int64, error)
}

type RunRetentionConfig struct {
	CronSchedule string
	Days         int
	Enabled      bool
}

// RunRetentionService apaga periodicamente os resumos de importação
// mais antigos que a janela configurada
type RunRetentionService struct {
	scheduler   *gocron.Scheduler
	runs        RunPurger
	config      RunRetentionConfig
	now         func() time.Time
	running     bool
	mutex       sync.Mutex
	lastPurgeAt time.Time
	lastDeleted int64
}

func NewRunRetentionService(runs RunPurger, cfg *config.Config) *RunRetentionService {
	retention := RunRetentionConfig{
		CronSchedule: cfg.RunRetention.CronSchedule,
		Days:         cfg.RunRetention.Days,
		Enabled:      cfg.RunRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retention.CronSchedule,
		"days":          retention.Days,
	}).Info("Configuração da limpeza de execuções carregada")

	return &RunRetentionService{
		scheduler: gocron.NewScheduler(time.Local),
		runs:      runs,
		config:    retention,
		now:       time.Now,
	}
}

func (s *RunRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled || s.config.Days <= 0 {
		logrus.Info("Limpeza de execuções desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de execuções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Purge(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de execuções")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de execuções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de execuções")
		s.scheduler.Stop()
	}()

	return nil
}

// Purge apaga as execuções iniciadas antes de now - Days. Chamadas
// concorrentes são ignoradas enquanto uma limpeza estiver em andamento
func (s *RunRetentionService) Purge(ctx context.Context) (int64, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Warn("Limpeza de execuções já está em execução")
		return 0, nil
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	cutoff := s.now().AddDate(0, 0, -s.config.Days)
	deleted, err := s.runs.DeleteRunsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("erro ao apagar execuções anteriores a %s: %w", cutoff.Format(time.DateOnly), err)
	}

	s.mutex.Lock()
	s.lastPurgeAt = s.now()
	s.lastDeleted = deleted
	s.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.Format(time.DateOnly),
		"deleted": deleted,
	}).Info("Limpeza de execuções concluída")

	return deleted, nil
}

// GetStatus retorna o status atual do agendador
func (s *RunRetentionService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":       s.config.Enabled,
		"cron":          s.config.CronSchedule,
		"days":          s.config.Days,
		"last_purge_at": s.lastPurgeAt,
		"last_deleted":  s.lastDeleted,
	}
}
