package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// fileConfig is the shape of an optional -config file. It is JSON-with-
// comments (JSONC), standardized to plain JSON before unmarshalling, the
// same way the teacher CLI reads its own config file.
type fileConfig struct {
	Capacity   uint64 `json:"capacity"`
	GrowPolicy string `json:"growPolicy"` // "doubling" or "fixed"
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}
