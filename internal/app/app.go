// Package app wires configuration, logging, the catalog collections and
// background jobs into one Application.
package app

import (
	"path"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/store"
)

type Application struct {
	appConfig *config.AppConfig
	products  *store.Collection[domain.Product]
	users     *store.Collection[domain.User]
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ CatalogProvider   = (*Application)(nil)
	_ ConfigProvider    = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{
		appConfig: appConfig,
		products:  store.NewCollection[domain.Product](domain.ProductSchema{}, nil),
		users:     store.NewCollection[domain.User](domain.UserSchema{}, nil),
	}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

// Products returns the product collection
func (a *Application) Products() *store.Collection[domain.Product] {
	return a.products
}

// Users returns the user collection
func (a *Application) Users() *store.Collection[domain.User] {
	return a.users
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// Init installs the global logger, seeds the collections and starts the
// background jobs.
func (a *Application) Init() error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// debug forces the development logger so request bodies are logged
	if cfg.System.Debug {
		cfg.Logger.Mode = "development"
	}
	if cfg.Logger.FileEnable && cfg.Logger.Filename == "" {
		cfg.Logger.Filename = path.Join(cfg.GetLogDir(), cfg.System.Appid+".log")
	}
	logger, err := newLogger(cfg.Logger)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)

	if cfg.Catalog.Seed {
		if err := a.seed(); err != nil {
			return err
		}
	}

	return a.initJob()
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		<-a.sched.Stop().Done()
	}
	_ = zap.L().Sync()
}
