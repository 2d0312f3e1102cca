package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepage/internal/domain"
	"coursepage/internal/eventbus"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Second, cfg.Autoplay.Interval())
	assert.True(t, cfg.Autoplay.Enabled)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 100, cfg.UI.NarrowWidth)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Autoplay.IntervalMS = 100
	cfg.Log.Level = "loud"
	cfg.Server.Addr = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntervalTooShort)
	assert.ErrorIs(t, err, ErrLogLevel)
	assert.ErrorIs(t, err, ErrServerAddr)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path, nil)

	cfg := DefaultConfig()
	cfg.ContentFile = "page.yaml"
	cfg.Autoplay.IntervalMS = 3000
	cfg.UI.Mouse = false
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "absent.toml"), nil)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissingFileFails(t *testing.T) {
	svc := NewConfigService("", nil)
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[autoplay]\ninterval_ms = 8000\n"), 0o644))

	cfg, err := NewConfigService(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Autoplay.IntervalMS)
	assert.True(t, cfg.Autoplay.Enabled)
	assert.Equal(t, "coursepage.log", cfg.Log.File)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[autoplay]\ninterval_ms = 10\n"), 0o644))

	_, err := NewConfigService(path, nil).Load()
	assert.ErrorIs(t, err, ErrIntervalTooShort)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[autoplay\n"), 0o644))

	_, err := NewConfigService(path, nil).Load()
	assert.Error(t, err)
}

func TestServicePublishesEvents(t *testing.T) {
	bus := eventbus.New(nil)
	got := make(chan domain.DomainEvent, 2)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e domain.DomainEvent) { got <- e })
	bus.Subscribe(eventbus.EventConfigSaved, func(e domain.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path, bus)
	require.NoError(t, svc.Save(DefaultConfig()))
	_, err := svc.Load()
	require.NoError(t, err)
	bus.Close()

	saved := <-got
	loaded := <-got
	assert.Equal(t, domain.ConfigSavedEvent{Path: path}, saved)
	assert.Equal(t, domain.ConfigLoadedEvent{Path: path}, loaded)
}
