package app

import (
	"github.com/robfig/cron/v3"

	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/store"
)

// CatalogProvider provides the record collections
type CatalogProvider interface {
	Products() *store.Collection[domain.Product]
	Users() *store.Collection[domain.User]
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	CatalogProvider
	ConfigProvider
	SchedulerProvider

	// Release stops background jobs and flushes the logger
	Release()
}
