package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	domaincfg "wordhoard-backend/domain/config"
)

// ConfigWatcher watches a JSON overrides file for changes, enabling
// runtime tuning of game limits without a redeploy.
type ConfigWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  *DynamicConfig
	mu       sync.RWMutex
	onChange []func(*DynamicConfig)
	logger   *zap.Logger
	stopCh   chan struct{}
}

// DynamicConfig represents runtime-changeable configuration
type DynamicConfig struct {
	Limits   Limits         `json:"limits"`
	Epoch    EpochConfig    `json:"epoch"`
	Metadata ConfigMetadata `json:"metadata"`
}

// Limits holds runtime-tunable game limits
type Limits struct {
	MaxFeeRateBps          uint64 `json:"maxFeeRateBps"`
	MaxBookmarksPerAccount int    `json:"maxBookmarksPerAccount"`
}

// EpochConfig holds epoch clock tuning
type EpochConfig struct {
	DurationSeconds int `json:"durationSeconds"`
}

// ConfigMetadata holds metadata about the configuration
type ConfigMetadata struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// NewConfigWatcher creates a new configuration watcher
func NewConfigWatcher(configPath string, logger *zap.Logger) (*ConfigWatcher, error) {
	config, err := loadConfigFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(configPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config file: %w", err)
	}

	// Also watch the directory for atomic saves (rename operations)
	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		logger.Warn("failed to watch config directory", zap.Error(err))
	}

	return &ConfigWatcher{
		path:     configPath,
		watcher:  watcher,
		current:  config,
		onChange: make([]func(*DynamicConfig), 0),
		logger:   logger,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching for configuration changes
func (w *ConfigWatcher) Start() {
	go w.watchLoop()
	w.logger.Info("configuration watcher started", zap.String("path", w.path))
}

// Stop stops watching for configuration changes
func (w *ConfigWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("configuration watcher stopped")
}

func (w *ConfigWatcher) watchLoop() {
	// Debounce to avoid multiple reloads on editor save patterns
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					w.handleConfigChange()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", zap.Error(err))
		}
	}
}

func (w *ConfigWatcher) handleConfigChange() {
	w.logger.Info("configuration file changed, reloading", zap.String("path", w.path))

	newConfig, err := loadConfigFromFile(w.path)
	if err != nil {
		w.logger.Error("failed to reload configuration", zap.Error(err))
		return
	}

	if err := validateDynamicConfig(newConfig); err != nil {
		w.logger.Error("invalid configuration, keeping current", zap.Error(err))
		return
	}

	w.mu.Lock()
	oldConfig := w.current
	w.current = newConfig
	handlers := make([]func(*DynamicConfig), len(w.onChange))
	copy(handlers, w.onChange)
	w.mu.Unlock()

	w.logConfigChanges(oldConfig, newConfig)

	for _, handler := range handlers {
		go handler(newConfig)
	}

	w.logger.Info("configuration reloaded",
		zap.String("version", newConfig.Metadata.Version),
	)
}

func validateDynamicConfig(config *DynamicConfig) error {
	// An override may tighten the fee-rate cap but never loosen it past
	// the domain ceiling.
	maxFee := domaincfg.DefaultDomainConfig().MaxFeeRateBps
	if config.Limits.MaxFeeRateBps == 0 || config.Limits.MaxFeeRateBps > maxFee {
		return fmt.Errorf("maxFeeRateBps must be between 1 and %d", maxFee)
	}
	if config.Limits.MaxBookmarksPerAccount <= 0 {
		return fmt.Errorf("maxBookmarksPerAccount must be positive")
	}
	if config.Epoch.DurationSeconds <= 0 {
		return fmt.Errorf("epoch durationSeconds must be positive")
	}
	return nil
}

func (w *ConfigWatcher) logConfigChanges(oldConfig, newConfig *DynamicConfig) {
	changes := []string{}

	if oldConfig.Limits.MaxFeeRateBps != newConfig.Limits.MaxFeeRateBps {
		changes = append(changes, fmt.Sprintf("MaxFeeRateBps: %d -> %d",
			oldConfig.Limits.MaxFeeRateBps, newConfig.Limits.MaxFeeRateBps))
	}
	if oldConfig.Limits.MaxBookmarksPerAccount != newConfig.Limits.MaxBookmarksPerAccount {
		changes = append(changes, fmt.Sprintf("MaxBookmarksPerAccount: %d -> %d",
			oldConfig.Limits.MaxBookmarksPerAccount, newConfig.Limits.MaxBookmarksPerAccount))
	}
	if oldConfig.Epoch.DurationSeconds != newConfig.Epoch.DurationSeconds {
		changes = append(changes, fmt.Sprintf("EpochDurationSeconds: %d -> %d",
			oldConfig.Epoch.DurationSeconds, newConfig.Epoch.DurationSeconds))
	}

	if len(changes) > 0 {
		w.logger.Info("configuration changes detected", zap.Strings("changes", changes))
	}
}

// OnChange registers a callback for configuration changes
func (w *ConfigWatcher) OnChange(handler func(*DynamicConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, handler)
}

// GetCurrent returns the current configuration
func (w *ConfigWatcher) GetCurrent() *DynamicConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

func loadConfigFromFile(path string) (*DynamicConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config DynamicConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if config.Metadata.Version == "" {
		config.Metadata.Version = "1.0.0"
	}
	config.Metadata.UpdatedAt = time.Now()

	return &config, nil
}
