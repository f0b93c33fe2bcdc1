package app

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/process"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() error {
	a.sched = cron.New(cron.WithLocation(time.Local), cron.WithParser(cronParser))

	interval := a.appConfig.Catalog.StatsInterval
	if interval == "" {
		interval = "@every 5m"
	}
	if _, err := a.sched.AddFunc(interval, a.SchedCatalogStatsTask); err != nil {
		return errors.Wrapf(err, "invalid catalog.stats_interval %q", interval)
	}

	a.sched.Start()
	return nil
}

// SchedCatalogStatsTask logs collection sizes and process memory usage
func (a *Application) SchedCatalogStatsTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	fields := []zap.Field{
		zap.Int("products", a.products.Len()),
		zap.Int("users", a.users.Len()),
	}

	p, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec // G115: PID is always within int32 range
	if err == nil {
		if meminfo, err := p.MemoryInfo(); err == nil {
			fields = append(fields, zap.Uint64("rss_mb", meminfo.RSS/1024/1024))
		}
	}

	zap.L().Info("catalog stats", fields...)
}
