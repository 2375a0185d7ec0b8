// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"github.com/MKhiriev/go-presence-keeper/models"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// presenceFileStorage is the filesystem implementation of
// [PresenceFileStorage].
type presenceFileStorage struct {
	logger *logger.Logger
}

// NewPresenceFileStorage constructs a [PresenceFileStorage] reading
// descriptors from the local filesystem.
func NewPresenceFileStorage(logger *logger.Logger) PresenceFileStorage {
	return &presenceFileStorage{logger: logger}
}

// Load implements [PresenceFileStorage].
//
// Files ending in .yaml or .yml are decoded as YAML; anything else is decoded
// as JSON, with // and /* */ comments and trailing commas tolerated.
func (p *presenceFileStorage) Load(path string) (models.PresenceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.PresenceConfig{}, fmt.Errorf("%w: %s: %w", ErrConfigNotFound, path, err)
	}

	doc, err := decodePresenceDocument(path, data)
	if err != nil {
		return models.PresenceConfig{}, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	cfg, err := doc.toModel()
	if err != nil {
		return models.PresenceConfig{}, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	p.logger.Debug().
		Str("path", path).
		Str("status", string(cfg.Status)).
		Stringer("activity_type", cfg.Activity.Type).
		Msg("presence descriptor loaded")

	return cfg, nil
}

func decodePresenceDocument(path string, data []byte) (presenceDocument, error) {
	var doc presenceDocument

	if len(bytes.TrimSpace(data)) == 0 {
		return doc, ErrEmptyDocument
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return doc, err
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return doc, err
		}
	}

	return doc, nil
}
