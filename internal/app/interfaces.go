package app

import (
	"github.com/robfig/cron/v3"

	"github.com/cloudwatchr/cloudwatchr/config"
	"github.com/cloudwatchr/cloudwatchr/internal/alertstore"
	"github.com/cloudwatchr/cloudwatchr/internal/metricstore"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// MetricStoreProvider provides the metric store owned by the application
type MetricStoreProvider interface {
	MetricStore() *metricstore.Store
}

// AlertStoreProvider provides the alert store
type AlertStoreProvider interface {
	AlertStore() *alertstore.Store
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context
// Services should depend on specific providers or this combined interface
type AppContext interface {
	ConfigProvider
	MetricStoreProvider
	AlertStoreProvider
	SchedulerProvider

	// Application lifecycle methods
	Init(cfg *config.AppConfig)
	Release()
}
