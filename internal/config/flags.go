// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a document store server address in format [host]:[port]
//	-server-timeout server request timeout (e.g., "30s", "1m")
//	-server-csrf-token token required by the server in X-Csrf-Token
//	-d database DSN
//	-redis redis URL of the command log
//	-c/-config json file path with configs
//	-version module version reported by the availability endpoint
//	-store document store base URL used by the client
//	-request-timeout client request timeout
//	-csrf-token session forgery-protection token sent by the client
//	-file-url document to load on mount
//	-file-id bound file id
//	-annotation-user annotation author
//	-auto-export, -auto-import, -xfdf-button, -realtime, -snapshot-polling,
//	-document-updates, -save-as viewer feature switches
//	-export-debounce, -poll-interval, -save-floor viewer timings
//	-max-pending bound of the pending exported command list
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serverTimeout, requestTimeout time.Duration
	var serverCSRFToken, csrfToken string
	var databaseDSN, redisURL string
	var jsonConfigPath string
	var version string
	var storeAddress string
	var viewer Viewer

	fs := flag.NewFlagSet("webviewer-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.StringVar(&serverCSRFToken, "server-csrf-token", "", "Token required in X-Csrf-Token")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis", "", "Redis URL of the command log")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Module version")

	fs.StringVar(&storeAddress, "store", "", "Document store base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&csrfToken, "csrf-token", "", "Session CSRF token")

	fs.StringVar(&viewer.FileURL, "file-url", "", "Document to load on mount")
	fs.StringVar(&viewer.FileID, "file-id", "", "Bound file id")
	fs.StringVar(&viewer.AnnotationUser, "annotation-user", "", "Annotation author")
	fs.BoolVar(&viewer.EnableAutoXfdfExport, "auto-export", false, "Export XFDF to the attribute on change")
	fs.BoolVar(&viewer.EnableAutoXfdfImport, "auto-import", false, "Import XFDF from the attribute on load")
	fs.BoolVar(&viewer.EnableXfdfExportButton, "xfdf-button", false, "Enable the Save XFDF action")
	fs.BoolVar(&viewer.EnableRealtimeSync, "realtime", false, "Exchange annotation commands")
	fs.BoolVar(&viewer.EnableSnapshotPolling, "snapshot-polling", false, "Poll the document XFDF snapshot")
	fs.BoolVar(&viewer.EnableDocumentUpdates, "document-updates", false, "Enable Save document")
	fs.BoolVar(&viewer.EnableSaveAs, "save-as", false, "Enable Save As")
	fs.DurationVar(&viewer.ExportDebounce, "export-debounce", 0, "Export quiescence window")
	fs.DurationVar(&viewer.PollInterval, "poll-interval", 0, "Import polling period")
	fs.DurationVar(&viewer.SaveIndicatorFloor, "save-floor", 0, "Minimum busy indicator time")
	fs.IntVar(&viewer.MaxPendingCommands, "max-pending", 0, "Pending exported command bound")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Adapter: Adapter{
			HTTPAddress:    storeAddress,
			RequestTimeout: requestTimeout,
			CSRFToken:      csrfToken,
		},
		Viewer: viewer,
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				URL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
			CSRFToken:      serverCSRFToken,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
