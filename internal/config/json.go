// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON settings file.
type StructuredJSONConfig struct {
	Presence struct {
		FilePath     string   `json:"file"`
		UpdateBurst  int      `json:"update_burst"`
		UpdateWindow Duration `json:"update_window"`
	} `json:"presence,omitempty"`

	Credential struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"credential,omitempty"`

	Session struct {
		ConnectTimeout Duration `json:"connect_timeout"`
	} `json:"session,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Presence: Presence{
			FilePath:     jsonCfg.Presence.FilePath,
			UpdateBurst:  jsonCfg.Presence.UpdateBurst,
			UpdateWindow: time.Duration(jsonCfg.Presence.UpdateWindow),
		},
		Credential: Credential{
			URL:            jsonCfg.Credential.URL,
			RequestTimeout: time.Duration(jsonCfg.Credential.RequestTimeout),
		},
		Session: Session{
			ConnectTimeout: time.Duration(jsonCfg.Session.ConnectTimeout),
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
