// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CSRFToken      string   `json:"csrf_token"`
	} `json:"adapter,omitempty"`

	Viewer struct {
		FileURL                string   `json:"file_url"`
		FileID                 string   `json:"file_id"`
		AnnotationUser         string   `json:"annotation_user"`
		EnableAutoXfdfExport   bool     `json:"enable_auto_xfdf_export"`
		EnableAutoXfdfImport   bool     `json:"enable_auto_xfdf_import"`
		EnableXfdfExportButton bool     `json:"enable_xfdf_export_button"`
		EnableRealtimeSync     bool     `json:"enable_realtime_sync"`
		EnableSnapshotPolling  bool     `json:"enable_snapshot_polling"`
		EnableDocumentUpdates  bool     `json:"enable_document_updates"`
		EnableSaveAs           bool     `json:"enable_save_as"`
		ExportDebounce         Duration `json:"export_debounce"`
		PollInterval           Duration `json:"poll_interval"`
		SaveIndicatorFloor     Duration `json:"save_indicator_floor"`
		MaxPendingCommands     int      `json:"max_pending_commands"`
	} `json:"viewer,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CSRFToken      string   `json:"csrf_token"`
	} `json:"server,omitempty"`
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

	v := jsonCfg.Viewer
	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			CSRFToken:      jsonCfg.Adapter.CSRFToken,
		},
		Viewer: Viewer{
			FileURL:                v.FileURL,
			FileID:                 v.FileID,
			AnnotationUser:         v.AnnotationUser,
			EnableAutoXfdfExport:   v.EnableAutoXfdfExport,
			EnableAutoXfdfImport:   v.EnableAutoXfdfImport,
			EnableXfdfExportButton: v.EnableXfdfExportButton,
			EnableRealtimeSync:     v.EnableRealtimeSync,
			EnableSnapshotPolling:  v.EnableSnapshotPolling,
			EnableDocumentUpdates:  v.EnableDocumentUpdates,
			EnableSaveAs:           v.EnableSaveAs,
			ExportDebounce:         time.Duration(v.ExportDebounce),
			PollInterval:           time.Duration(v.PollInterval),
			SaveIndicatorFloor:     time.Duration(v.SaveIndicatorFloor),
			MaxPendingCommands:     v.MaxPendingCommands,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL: jsonCfg.Storage.Redis.URL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CSRFToken:      jsonCfg.Server.CSRFToken,
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
