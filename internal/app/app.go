package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/cloudwatchr/cloudwatchr/config"
	"github.com/cloudwatchr/cloudwatchr/internal/alertstore"
	"github.com/cloudwatchr/cloudwatchr/internal/metricstore"
)

// DefaultAlertNodeId feeds the snowflake generator behind alert ids.
const DefaultAlertNodeId int64 = 1

type Application struct {
	appConfig *config.AppConfig
	metricSt  *metricstore.Store
	alertSt   *alertstore.Store
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider      = (*Application)(nil)
	_ MetricStoreProvider = (*Application)(nil)
	_ AlertStoreProvider  = (*Application)(nil)
	_ SchedulerProvider   = (*Application)(nil)
	_ AppContext          = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) MetricStore() *metricstore.Store {
	return a.metricSt
}

func (a *Application) AlertStore() *alertstore.Store {
	return a.alertSt
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	// The metric store is constructed here and injected into the web
	// server, nothing else owns stored metrics.
	a.metricSt = metricstore.NewStore()

	a.alertSt, err = alertstore.NewStore(DefaultAlertNodeId)
	if err != nil {
		panic(err)
	}

	a.initJob()

	zap.S().Infof("application initialized, appid: %s", cfg.System.Appid)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	_ = zap.L().Sync()
}
