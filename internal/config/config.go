// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// viewer client and the document store server. It is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the module version.
	App App `envPrefix:"APP_"`

	// Adapter holds the client's connection settings for the remote
	// document store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Viewer holds the widget properties of one mounted viewer.
	Viewer Viewer `envPrefix:"VIEWER_"`

	// Storage holds the document store persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the document
	// store HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by the module availability
	// endpoint (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the settings of the client transport layer.
type Adapter struct {
	// HTTPAddress is the base address of the document store
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CSRFToken is the forgery-protection token of the current session.
	// Env: ADAPTER_CSRF_TOKEN
	CSRFToken string `env:"CSRF_TOKEN"`
}

// Viewer holds the properties of a mounted viewer widget.
type Viewer struct {
	// FileURL is the document loaded on mount when no file URL attribute
	// is bound. Env: VIEWER_FILE_URL
	FileURL string `env:"FILE_URL"`

	// FileID is the externally managed file id attribute value.
	// Env: VIEWER_FILE_ID
	FileID string `env:"FILE_ID"`

	// AnnotationUser is the author name assigned to new annotations.
	// Env: VIEWER_ANNOTATION_USER
	AnnotationUser string `env:"ANNOTATION_USER"`

	// EnableAutoXfdfExport pushes the annotation snapshot into the XFDF
	// attribute after every change. Env: VIEWER_ENABLE_AUTO_XFDF_EXPORT
	EnableAutoXfdfExport bool `env:"ENABLE_AUTO_XFDF_EXPORT"`

	// EnableAutoXfdfImport loads the XFDF attribute while the document
	// loads. Env: VIEWER_ENABLE_AUTO_XFDF_IMPORT
	EnableAutoXfdfImport bool `env:"ENABLE_AUTO_XFDF_IMPORT"`

	// EnableXfdfExportButton enables the manual "Save XFDF" action.
	// Env: VIEWER_ENABLE_XFDF_EXPORT_BUTTON
	EnableXfdfExportButton bool `env:"ENABLE_XFDF_EXPORT_BUTTON"`

	// EnableRealtimeSync exchanges annotation commands with the store's
	// command log. Env: VIEWER_ENABLE_REALTIME_SYNC
	EnableRealtimeSync bool `env:"ENABLE_REALTIME_SYNC"`

	// EnableSnapshotPolling polls the document's XFDF snapshot.
	// Env: VIEWER_ENABLE_SNAPSHOT_POLLING
	EnableSnapshotPolling bool `env:"ENABLE_SNAPSHOT_POLLING"`

	// EnableDocumentUpdates enables the "Save document" action.
	// Env: VIEWER_ENABLE_DOCUMENT_UPDATES
	EnableDocumentUpdates bool `env:"ENABLE_DOCUMENT_UPDATES"`

	// EnableSaveAs enables the "Save As" action.
	// Env: VIEWER_ENABLE_SAVE_AS
	EnableSaveAs bool `env:"ENABLE_SAVE_AS"`

	// ExportDebounce is the quiescence window of automatic export.
	// Env: VIEWER_EXPORT_DEBOUNCE
	ExportDebounce time.Duration `env:"EXPORT_DEBOUNCE"`

	// PollInterval is the import polling period.
	// Env: VIEWER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// SaveIndicatorFloor is the minimum time the busy indicator stays open.
	// Env: VIEWER_SAVE_INDICATOR_FLOOR
	SaveIndicatorFloor time.Duration `env:"SAVE_INDICATOR_FLOOR"`

	// MaxPendingCommands bounds the list of exported commands awaiting
	// their echo. Env: VIEWER_MAX_PENDING_COMMANDS
	MaxPendingCommands int `env:"MAX_PENDING_COMMANDS"`
}

// Storage groups the configuration for all storage backends of the
// document store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the optional Redis command log settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file
	// name ("docstore.db", "file:docstore.db?_fk=1").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the settings of the Redis command log.
type Redis struct {
	// URL is a redis:// URL. When empty the command log lives in the
	// relational database. Env: STORAGE_REDIS_URL
	URL string `env:"URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CSRFToken, when set, must be presented in the X-Csrf-Token header of
	// every document store request. Env: SERVER_CSRF_TOKEN
	CSRFToken string `env:"CSRF_TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
