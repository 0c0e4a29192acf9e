package notifier

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler запускает ежедневные задачи в фиксированной таймзоне.
// Таймзона - это таймзона аудитории, а не сервера.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(loc *time.Location) *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(loc))}
}

// Daily регистрирует ежедневный запуск fn в timeStr ("HH:MM")
func (s *Scheduler) Daily(timeStr string, fn func()) error {
	hour, minute, err := parseTime(timeStr)
	if err != nil {
		return err
	}

	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := s.cron.AddFunc(spec, fn); err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func parseTime(timeStr string) (int, int, error) {
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %q (expected HH:MM)", timeStr)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", timeStr)
	}

	return hour, minute, nil
}
