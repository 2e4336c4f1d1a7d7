// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/viewer"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer/memory"
)

// App is one headless viewer bound to the document store.
type App struct {
	viewer   *viewer.Viewer
	instance *memory.Instance
	xfdf     *binding.Attribute

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp builds the viewer from cfg. Without a file URL the document is
// downloaded from the store by its file id.
func NewApp(cfg *config.ClientConfig, in io.Reader, out io.Writer, log *logger.Logger) (*App, error) {
	session := binding.StaticSession(cfg.Adapter.CSRFToken)

	store, err := adapter.NewHTTPDocumentStore(cfg.Adapter, session, log)
	if err != nil {
		return nil, fmt.Errorf("create document store adapter: %w", err)
	}

	instance := memory.New(memory.WithLoader(newSourceLoader(cfg.Adapter, session)))

	viewerCfg := cfg.Viewer
	if viewerCfg.FileURL == "" && viewerCfg.FileID != "" {
		viewerCfg.FileURL = contentURL(cfg.Adapter.HTTPAddress, viewerCfg.FileID)
	}

	xfdf := binding.NewAttribute("")
	v := viewer.New(viewerCfg, instance, store, viewer.Attributes{Xfdf: xfdf}, log.ForFile(viewerCfg.FileID))

	return &App{
		viewer:   v,
		instance: instance,
		xfdf:     xfdf,
		in:       in,
		out:      out,
		logger:   log,
	}, nil
}

// Run mounts the viewer and executes input lines until "quit", the end of
// the input or ctx is done. The viewer is unmounted on return.
func (a *App) Run(ctx context.Context) error {
	defer a.viewer.Unmount()
	if err := a.viewer.Mount(ctx); err != nil {
		return fmt.Errorf("mount viewer: %w", err)
	}

	a.printf("viewer mounted, %s (type \"help\" for commands)\n", a.viewer.State())

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := a.execute(ctx, line); quit {
				return nil
			}
		}
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
