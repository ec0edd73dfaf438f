// Package store persists the planner state through a diskv-backed
// key-value store. The whole serialized state lives under a single scoped
// key: load reads it once at startup, and every mutation writes the full
// replacement back.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/weekplan/pkg/logging"
	"tableflip.dev/weekplan/pkg/planner"
)

const stateKey = "weekplan-state"

// Load creates a planner.Persistence backed by diskv using the provided
// config. A nil config falls back to the default config chain.
func Load(cfg Config) (planner.Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Load() (planner.State, error) {
	val, err := p.d.Read(stateKey)
	if err != nil {
		return planner.State{}, fmt.Errorf("store: read state: %w", err)
	}
	var s planner.State
	if err := json.Unmarshal(val, &s); err != nil {
		logging.Warn("discarding corrupt planner state", "err", err)
		return planner.State{}, fmt.Errorf("store: decode state: %w", err)
	}
	if s.SelectedDay == "" || s.WeekStart == "" {
		logging.Warn("discarding incomplete planner state")
		return planner.State{}, fmt.Errorf("store: stored state missing day anchors")
	}
	return s, nil
}

func (p *persistence) Save(s planner.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: encode state: %w", err)
	}
	if err := p.d.Write(stateKey, data); err != nil {
		return fmt.Errorf("store: write state: %w", err)
	}
	return nil
}
