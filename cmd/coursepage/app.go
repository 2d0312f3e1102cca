package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursepage/internal/config"
	"coursepage/internal/content"
	"coursepage/internal/domain"
	"coursepage/internal/eventbus"
	"coursepage/internal/logging"
)

// app bundles what every command builds first: config, logger, bus and the page
type app struct {
	cfg    *config.Config
	cfgSvc config.ConfigService
	log    *zap.Logger
	bus    eventbus.EventBus
	page   *domain.Page
	md     *content.Markdown

	watcher *content.Watcher
}

// newApp loads config and content and wires the logger and event bus.
// toFile sends logs to the configured log file instead of stderr.
func newApp(cmd *cobra.Command, toFile bool) (*app, error) {
	cfgSvc := config.NewConfigService(configPath, nil)
	cfg, cfgErr := cfgSvc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	opts := logging.Options{Level: cfg.Log.Level, Console: !toFile}
	if toFile {
		opts.File = cfg.Log.File
	}
	if verbose {
		opts.Level = "debug"
	}
	log := logging.Nop()
	if !toFile || opts.File != "" {
		var err error
		if log, err = logging.New(opts); err != nil {
			return nil, err
		}
	}
	bus := eventbus.New(log)
	subscribeLogger(bus, log)
	if cfgErr != nil {
		log.Warn("config load failed, using defaults", zap.String("path", cfgSvc.Path()), zap.Error(cfgErr))
	} else {
		bus.Publish(eventbus.ConfigLoadedEvent{Path: cfgSvc.Path(), ContentFile: cfg.ContentFile})
	}

	page, err := content.Load(cfg.ContentFile)
	if err != nil {
		bus.Close()
		_ = log.Sync()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		cfgSvc: config.NewConfigService(cfgSvc.Path(), bus),
		log:    log,
		bus:    bus,
		page:   page,
		md:     content.NewMarkdown(cfg.UI.GlamourStyle),
	}, nil
}

// applyFlags layers command line flags over the loaded config
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if contentPath != "" {
		cfg.ContentFile = contentPath
	}
	if f := cmd.Flags().Lookup("no-autoplay"); f != nil && f.Changed && noAutoplay {
		cfg.Autoplay.Enabled = false
	}
	if f := cmd.Flags().Lookup("interval"); f != nil && f.Changed {
		cfg.Autoplay.IntervalMS = int(interval.Milliseconds())
	}
	return cfg.Validate()
}

// startWatcher starts hot reload when --watch is set
func (a *app) startWatcher(ctx context.Context) error {
	if !watch {
		return nil
	}
	if a.cfg.ContentFile == "" {
		return errors.New("--watch needs a content file (--content or content_file in the config)")
	}
	w, err := content.NewWatcher(a.cfg.ContentFile, a.bus, content.WatchOptions{Logger: a.log})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("watch %s: %w", a.cfg.ContentFile, err)
	}
	a.watcher = w
	return nil
}

func (a *app) contentLabel() string {
	if a.cfg.ContentFile == "" {
		return "built-in"
	}
	return a.cfg.ContentFile
}

// Close stops the watcher, drains the bus and flushes the logger
func (a *app) Close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.bus.Close()
	_ = a.log.Sync()
}

// subscribeLogger records page interactions and lifecycle events
func subscribeLogger(bus eventbus.EventBus, log *zap.Logger) {
	interactions := log.Named("interaction")
	debug := func(e eventbus.DomainEvent) {
		interactions.Debug(string(e.Type()), zap.Any("event", e))
	}
	bus.Subscribe(eventbus.EventSlideChanged, debug)
	bus.Subscribe(eventbus.EventAutoplayPaused, debug)
	bus.Subscribe(eventbus.EventPanelToggled, debug)
	bus.Subscribe(eventbus.EventSectionFocused, debug)

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ConfigLoadedEvent)
		log.Debug("config loaded", zap.String("path", ev.Path), zap.String("content_file", ev.ContentFile))
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		log.Info("config saved", zap.String("path", e.(eventbus.ConfigSavedEvent).Path))
	})
	bus.Subscribe(eventbus.EventContentReloaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ContentReloadedEvent)
		log.Info("content reloaded", zap.String("path", ev.Path), zap.Int("sections", len(ev.Page.Sections)))
	})
	bus.Subscribe(eventbus.EventContentInvalid, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ContentInvalidEvent)
		log.Warn("content invalid", zap.String("path", ev.Path), zap.Error(ev.Err))
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ErrorEvent)
		log.Error(ev.Message, zap.Error(ev.Err))
	})
}
