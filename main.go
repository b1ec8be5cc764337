package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/allanhanan/duvc-ctl-sub002/cmd"
	"github.com/allanhanan/duvc-ctl-sub002/duvc"
	"github.com/allanhanan/duvc-ctl-sub002/internal/api"
	"github.com/allanhanan/duvc-ctl-sub002/internal/cameras"
	"github.com/allanhanan/duvc-ctl-sub002/internal/config"
	"github.com/allanhanan/duvc-ctl-sub002/internal/events"
	"github.com/allanhanan/duvc-ctl-sub002/internal/logging"
	"github.com/allanhanan/duvc-ctl-sub002/internal/metrics"
	"github.com/allanhanan/duvc-ctl-sub002/internal/updater"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"config.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8090" toml:"server.port" env:"SERVER_PORT"`

	// Auth settings
	AuthUsername string `help:"Basic auth username" default:"admin" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"password" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Update settings
	UpdateRepository   string `help:"GitHub repository for self-update (empty disables updates)" default:"allanhanan/duvc-ctl-sub002" toml:"update.repository" env:"UPDATE_REPOSITORY"`
	UpdatePrerelease   bool   `help:"Include prerelease versions in update checks" default:"false" toml:"update.prerelease" env:"UPDATE_PRERELEASE"`
	UpdateCheckOnStart bool   `help:"Check for updates when the daemon starts" default:"true" toml:"update.check_on_start" env:"UPDATE_CHECK_ON_START"`

	// Logging settings
	LoggingLevel   string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat  string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingAPI     string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
	LoggingCameras string `help:"Camera service logging level" default:"info" toml:"logging.cameras" env:"LOGGING_CAMERAS"`
	LoggingDuvc    string `help:"Camera core logging level" default:"warn" toml:"logging.duvc" env:"LOGGING_DUVC"`
	LoggingUpdater string `help:"Updater logging level" default:"info" toml:"logging.updater" env:"LOGGING_UPDATER"`
}

func main() {
	// Declared before New so the parse callback can reach the root command
	// for flag precedence handling.
	var cli humacli.CLI
	cli = humacli.New(func(hooks humacli.Hooks, opts *Options) {
		// Load configuration automatically
		if loadErr := config.LoadConfig(opts, cli.Root()); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		// Initialize logging system
		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"api":     opts.LoggingAPI,
				"cameras": opts.LoggingCameras,
				"duvc":    opts.LoggingDuvc,
				"updater": opts.LoggingUpdater,
			},
		})

		logger := logging.GetLogger("main")

		// Route the camera core's log sink into the module registry
		coreLogger := logging.GetLogger("duvc")
		duvc.SetLogLevel(coreLogLevel(opts.LoggingDuvc))
		duvc.SetLogSink(func(level duvc.LogLevel, message string) {
			switch level {
			case duvc.LogDebug:
				coreLogger.Debug(message)
			case duvc.LogInfo:
				coreLogger.Info(message)
			case duvc.LogWarning:
				coreLogger.Warn(message)
			case duvc.LogError:
				coreLogger.Error(message)
			default:
				coreLogger.Log(context.Background(), logging.LevelCritical, message)
			}
		})

		// Create event bus for in-process event handling
		eventBus := events.New()

		// Bridge every recorded log entry onto the bus for SSE streaming
		logging.SetLogCallback(func(entry logging.LogEntry) {
			eventBus.Publish(events.LogEntryEvent{
				Seq:        entry.Seq,
				Timestamp:  entry.Timestamp.Format(time.RFC3339Nano),
				Level:      entry.Level,
				Module:     entry.Module,
				Message:    entry.Message,
				Attributes: entry.Attributes,
			})
		})

		cameraService := cameras.NewService()

		// Self-update service, optional
		var updateService updater.Service
		if opts.UpdateRepository != "" {
			svc, updErr := updater.NewService(&updater.Options{
				Repository: opts.UpdateRepository,
				Prerelease: opts.UpdatePrerelease,
			})
			if updErr != nil {
				logger.Warn("Self-update unavailable", "error", updErr)
			} else {
				updateService = svc
			}
		}

		server := api.NewServer(&api.Options{
			AuthUsername:      opts.AuthUsername,
			AuthPassword:      opts.AuthPassword,
			Cameras:           cameraService,
			EventBus:          eventBus,
			UpdateService:     updateService,
			PrometheusHandler: promhttp.Handler(),
		})

		// Hot-reload logging levels when the config file changes
		watcher := config.NewConfigWatcher(
			opts.Config,
			func(path string) (logging.Config, error) {
				return config.LoadLoggingConfig(path), nil
			},
			logger,
			config.WithDebounce[logging.Config](1500*time.Millisecond),
		)
		watcher.OnReload(func(cfg logging.Config) {
			logger.Info("Reloading logging configuration")
			logging.Initialize(cfg)
			duvc.SetLogLevel(coreLogLevel(cfg.Modules["duvc"]))
		})

		hooks.OnStart(func() {
			if watchErr := watcher.Start(); watchErr != nil {
				logger.Warn("Config watcher unavailable, hot-reload disabled", "error", watchErr)
			}

			// Seed the device gauge and fan hot-plug events out through the bus
			if devices, listErr := duvc.ListDevices(); listErr == nil {
				metrics.SetDevicesPresent(len(devices))
			}
			hotplugErr := duvc.RegisterDeviceChangeCallback(func(added bool, devicePath string) {
				action := "removed"
				if added {
					action = "added"
				}
				metrics.RecordHotplug(action)

				deviceName := ""
				if devices, listErr := duvc.ListDevices(); listErr == nil {
					metrics.SetDevicesPresent(len(devices))
					for _, dev := range devices {
						if dev.Path != "" && strings.EqualFold(dev.Path, devicePath) {
							deviceName = dev.Name
							break
						}
					}
				}

				eventBus.Publish(events.DeviceChangeEvent{
					DeviceID:   duvc.EncodeDeviceID(devicePath),
					DeviceName: deviceName,
					DevicePath: devicePath,
					Action:     action,
					Timestamp:  time.Now().UTC().Format(time.RFC3339),
				})
				logger.Info("Device change", "action", action, "path", devicePath)
			})
			if hotplugErr != nil {
				logger.Warn("Hot-plug monitoring unavailable", "error", hotplugErr)
			}

			if updateService != nil && opts.UpdateCheckOnStart {
				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
					defer cancel()
					info, checkErr := updateService.CheckForUpdate(ctx)
					if checkErr != nil {
						logger.Debug("Startup update check failed", "error", checkErr)
						return
					}
					if info.UpdateAvailable {
						logger.Info("Update available",
							"current", info.CurrentVersion, "latest", info.LatestVersion)
					}
				}()
			}

			logger.Info("Starting HTTP server", "port", opts.Port)
			if startErr := server.Start(opts.Port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			duvc.UnregisterDeviceChangeCallback()
			if stopErr := watcher.Stop(); stopErr != nil {
				logger.Warn("Error stopping config watcher", "error", stopErr)
			}
			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}
		})
	})

	// One-shot camera control commands
	cli.Root().AddCommand(
		cmd.CreateListCmd(),
		cmd.CreateStatusCmd(),
		cmd.CreateGetCmd(),
		cmd.CreateSetCmd(),
		cmd.CreateRangeCmd(),
		cmd.CreateCapabilitiesCmd(),
		cmd.CreateMonitorCmd(),
		cmd.CreateVendorCmd(),
		cmd.CreateUpdateCmd(),
	)

	// Run the CLI
	cli.Run()
}

// coreLogLevel maps a configured level name onto the camera core's scale.
func coreLogLevel(level string) duvc.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return duvc.LogDebug
	case "info":
		return duvc.LogInfo
	case "warn", "warning":
		return duvc.LogWarning
	case "error":
		return duvc.LogError
	case "critical":
		return duvc.LogCritical
	default:
		return duvc.LogInfo
	}
}
