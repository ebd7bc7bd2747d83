package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dimfu/beatgen/internal/beat"
	"github.com/pkg/errors"
)

type Preset struct {
	Key      string `json:"key"`
	Tempo    int    `json:"tempo"`
	Duration int    `json:"duration"`
	Timesig  string `json:"timesig,omitempty"`
}

func (p Preset) String() string {
	timesig := p.Timesig
	if timesig == "" {
		timesig = beat.CommonTime.String()
	}
	return fmt.Sprintf("%s\ttempo=%d duration=%d timesig=%s", p.Key, p.Tempo, p.Duration, timesig)
}

type ConfigManager struct {
	Presets    []Preset
	ConfigPath string
}

// NewConfigManager reads the preset file at path. A missing or empty file
// yields no presets.
func NewConfigManager(path string) (*ConfigManager, error) {
	cm := &ConfigManager{
		ConfigPath: path,
		Presets:    []Preset{},
	}
	if err := cm.LoadConfig(); err != nil {
		return nil, err
	}
	return cm, nil
}

func (cm *ConfigManager) LoadConfig() error {
	f, err := os.Open(cm.ConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "opening config")
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(&cm.Presets)
	if err == io.EOF {
		return nil
	}
	return errors.Wrapf(err, "decoding config %s", cm.ConfigPath)
}

func (cm *ConfigManager) GetPreset(key string) *Preset {
	for i := range cm.Presets {
		if cm.Presets[i].Key == key {
			return &cm.Presets[i]
		}
	}
	return nil
}

func (cm *ConfigManager) WriteConfig() error {
	newConf, err := json.Marshal(cm.Presets)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cm.ConfigPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating config directory")
		}
	}
	return errors.Wrap(os.WriteFile(cm.ConfigPath, newConf, 0o644), "writing config")
}

func (cm *ConfigManager) CreatePreset(p Preset) error {
	if p.Key == "" {
		return errors.New("preset name must not be empty")
	}
	if cm.GetPreset(p.Key) != nil {
		return errors.Errorf("preset `%v` already exists", p.Key)
	}

	cm.Presets = append(cm.Presets, p)
	return cm.WriteConfig()
}

func (cm *ConfigManager) DeletePreset(key string) error {
	if cm.GetPreset(key) == nil {
		return errors.Errorf("preset `%v` not found", key)
	}

	kept := cm.Presets[:0]
	for _, p := range cm.Presets {
		if p.Key != key {
			kept = append(kept, p)
		}
	}
	cm.Presets = kept
	return cm.WriteConfig()
}
