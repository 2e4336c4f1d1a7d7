// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/annotation"
	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/identity"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
	"github.com/MKhiriev/go-webviewer-sync/internal/workers"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// ClientSyncDeps are the collaborators of a sync engine. XfdfAttribute may
// be nil when the viewer has no XFDF attribute bound.
type ClientSyncDeps struct {
	Viewer        webviewer.DocumentViewer
	Annotations   *annotation.Adapter
	Store         adapter.DocumentStore
	Tracker       *identity.Tracker
	XfdfAttribute binding.EditableValue
	Scheduler     workers.Scheduler
}

type clientSyncEngine struct {
	cfg         config.ClientViewer
	viewer      webviewer.DocumentViewer
	annotations *annotation.Adapter
	store       adapter.DocumentStore
	tracker     *identity.Tracker
	xfdfAttr    binding.EditableValue

	// mu serializes export callbacks and poll ticks and guards state.
	mu    sync.Mutex
	state models.SyncState
	// syncedMu guards state.Synced. Import events consume it on the
	// goroutine that already holds mu.
	syncedMu sync.Mutex
	// localDirty is set by user edits and cleared once the local snapshot
	// reached the store. Only used with snapshot polling.
	localDirty atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool

	export  *workers.Debouncer[models.AnnotationChange]
	pollJob *workers.PollJob

	logger *logger.Logger
}

// NewClientSyncEngine builds the engine of one mounted viewer. cfg is
// expected to carry defaults (see config.ClientViewer.WithDefaults).
func NewClientSyncEngine(cfg config.ClientViewer, deps ClientSyncDeps, log *logger.Logger) ClientSyncEngine {
	scheduler := deps.Scheduler
	if scheduler == nil {
		scheduler = workers.NewTimeScheduler()
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &clientSyncEngine{
		cfg:         cfg,
		viewer:      deps.Viewer,
		annotations: deps.Annotations,
		store:       deps.Store,
		tracker:     deps.Tracker,
		xfdfAttr:    deps.XfdfAttribute,
		ctx:         ctx,
		cancel:      cancel,
		pollJob:     workers.NewPollJob(),
		logger:      log,
	}
	e.export = workers.NewDebouncer(scheduler, cfg.ExportDebounce, e.flushExport)
	return e
}

// OnAnnotationChanged takes no lock: the SDK delivers events synchronously,
// including those caused by imports running under mu.
// System-originated changes are never exported; import events only consume
// their ids from the synced set.
func (e *clientSyncEngine) OnAnnotationChanged(change models.AnnotationChange) {
	if e.closed.Load() {
		return
	}
	if change.Info.SystemOriginated() {
		e.consumeSynced(change)
		return
	}
	if !e.cfg.EnableAutoXfdfExport && !e.cfg.EnableRealtimeSync && !e.cfg.EnableSnapshotPolling {
		return
	}
	if e.cfg.EnableSnapshotPolling {
		e.localDirty.Store(true)
	}
	e.export.Call(change)
}

func (e *clientSyncEngine) consumeSynced(change models.AnnotationChange) {
	e.syncedMu.Lock()
	defer e.syncedMu.Unlock()

	if e.state.ConsumeSynced(models.AnnotationIDs(change.Annotations)) {
		e.logger.Debug().Str("action", string(change.Action)).Msg("change echoes a command import")
	}
}

func (e *clientSyncEngine) setSynced(ids []string) {
	e.syncedMu.Lock()
	defer e.syncedMu.Unlock()
	e.state.SetSynced(ids)
}

func (e *clientSyncEngine) flushExport(_ models.AnnotationChange) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed.Load() {
		return
	}

	if e.cfg.EnableAutoXfdfExport {
		if err := e.exportSnapshotLocked(e.ctx); err != nil {
			e.logExportError(err, "snapshot export failed")
		}
	}

	if e.cfg.EnableSnapshotPolling {
		if err := e.pushSnapshotLocked(e.ctx); err != nil {
			e.logExportError(err, "snapshot push failed")
		}
	}

	if e.cfg.EnableRealtimeSync {
		if err := e.exportCommandLocked(e.ctx); err != nil {
			e.logExportError(err, "command export failed")
		}
	}
}

func (e *clientSyncEngine) logExportError(err error, msg string) {
	switch {
	case errors.Is(err, context.Canceled):
	case errors.Is(err, ErrReadOnlyAttribute), errors.Is(err, ErrAttributeUnavailable):
		e.logger.Warn().Err(err).Msg(msg)
	default:
		e.logger.Error().Err(err).Msg(msg)
	}
}

func (e *clientSyncEngine) ExportXfdf(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.exportSnapshotLocked(ctx)
	if err != nil {
		e.logExportError(err, "snapshot export failed")
	}
	return err
}

// exportSnapshotLocked writes the snapshot into the attribute. It does not
// depend on the bound file id.
func (e *clientSyncEngine) exportSnapshotLocked(ctx context.Context) error {
	if !binding.IsAvailable(e.xfdfAttr) {
		return ErrAttributeUnavailable
	}
	if e.xfdfAttr.ReadOnly() {
		return ErrReadOnlyAttribute
	}

	snapshot, err := e.annotations.ExportSnapshot(ctx)
	if err != nil {
		return err
	}
	if err = e.xfdfAttr.SetValue(snapshot); err != nil {
		if errors.Is(err, binding.ErrReadOnly) {
			return ErrReadOnlyAttribute
		}
		return fmt.Errorf("error setting xfdf attribute: %w", err)
	}

	e.state.PreviousXfdf = snapshot
	return nil
}

// pushSnapshotLocked stores the local snapshot as the document's XFDF, so
// that snapshot polls of every viewer see local edits.
func (e *clientSyncEngine) pushSnapshotLocked(ctx context.Context) error {
	fileID, ok := e.tracker.Current()
	if !ok {
		e.logger.Debug().Msg("no file bound, snapshot push skipped")
		return nil
	}

	snapshot, err := e.annotations.ExportSnapshot(ctx)
	if err != nil {
		return err
	}
	if snapshot != e.state.RemoteXfdf {
		if err = e.store.UpdateXfdf(ctx, fileID, snapshot); err != nil {
			return fmt.Errorf("error updating xfdf: %w", err)
		}
		e.state.RemoteXfdf = snapshot
	}

	e.localDirty.Store(false)
	return nil
}

func (e *clientSyncEngine) exportCommandLocked(ctx context.Context) error {
	fileID, ok := e.tracker.Current()
	if !ok {
		e.logger.Debug().Msg("no file bound, command export skipped")
		return nil
	}

	command, err := e.annotations.ExportCommand(ctx)
	if err != nil {
		return err
	}
	if e.annotations.IsEmptyCommand(command) {
		return nil
	}

	if err = e.store.AppendCommand(ctx, fileID, command); err != nil {
		return fmt.Errorf("error appending command: %w", err)
	}

	e.state.AddPending(command, e.cfg.MaxPendingCommands)
	return nil
}

func (e *clientSyncEngine) RetrieveXfdf(_ context.Context) (string, bool) {
	if e.closed.Load() || !e.cfg.EnableAutoXfdfImport || !binding.IsAvailable(e.xfdfAttr) {
		return "", false
	}
	if _, ok := e.tracker.Current(); !ok {
		return "", false
	}

	value := e.xfdfAttr.Value()

	e.mu.Lock()
	e.state.PreviousXfdf = value
	e.mu.Unlock()

	return value, true
}

func (e *clientSyncEngine) PollOnce(ctx context.Context) error {
	// waiting happens outside mu so exports keep flowing while loading
	if err := e.viewer.WaitForDocumentLoaded(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed.Load() {
		return nil
	}
	fileID, ok := e.tracker.Current()
	if !ok {
		return nil
	}

	switch {
	case e.cfg.EnableRealtimeSync:
		return e.pollCommandsLocked(ctx, fileID)
	case e.cfg.EnableSnapshotPolling:
		return e.pollSnapshotLocked(ctx, fileID)
	default:
		return nil
	}
}

// pollCommandsLocked advances the cursor to the newest server timestamp it
// has seen. The client clock never enters the cursor, so clock skew cannot
// hide commands.
func (e *clientSyncEngine) pollCommandsLocked(ctx context.Context, fileID string) error {
	entries, err := e.store.ListCommandsSince(ctx, fileID, e.state.LastQuery)
	if err != nil {
		return fmt.Errorf("%w: list commands: %w", ErrPollFailure, err)
	}

	cursor := e.state.LastQuery
	for _, entry := range entries {
		if entry.Timestamp.After(cursor) {
			cursor = entry.Timestamp
		}
		if e.state.ConsumePending(entry.Command) {
			continue
		}

		targets, err := e.annotations.CommandTargets(entry.Command)
		if err != nil {
			e.logger.Warn().Err(err).Time("timestamp", entry.Timestamp).Msg("skipping command that cannot be decoded")
			continue
		}
		e.setSynced(targets)

		if _, err = e.annotations.ImportCommand(ctx, entry.Command); err != nil {
			e.logger.Warn().Err(err).Time("timestamp", entry.Timestamp).Msg("skipping command that cannot be imported")
		}
	}

	e.state.LastQuery = cursor
	return nil
}

// pollSnapshotLocked applies the store snapshot when it differs from the
// one last applied or pushed. It stands aside while local edits have not
// reached the store, and records the snapshot only once it was applied so
// that a failed tick is retried.
func (e *clientSyncEngine) pollSnapshotLocked(ctx context.Context, fileID string) error {
	if e.export.Pending() {
		e.logger.Debug().Msg("local export pending, snapshot poll skipped")
		return nil
	}
	if e.localDirty.Load() {
		if err := e.pushSnapshotLocked(ctx); err != nil {
			e.logExportError(err, "snapshot push failed, snapshot poll skipped")
			return nil
		}
	}

	info, err := e.store.FetchFileInfo(ctx, fileID)
	if err != nil {
		return fmt.Errorf("%w: fetch file info: %w", ErrPollFailure, err)
	}
	if info.UpdatedAt.After(e.state.LastQuery) {
		e.state.LastQuery = info.UpdatedAt
	}

	if info.Xfdf == e.state.RemoteXfdf {
		return nil
	}
	// deletions first so that re-added annotations survive
	if _, err = e.annotations.ReconcileDeletions(ctx, info.Xfdf); err != nil {
		e.logger.Warn().Err(err).Msg("remote snapshot cannot be reconciled")
		return nil
	}
	if err = e.annotations.ImportSnapshot(ctx, info.Xfdf); err != nil {
		e.logger.Warn().Err(err).Msg("remote snapshot cannot be imported")
		return nil
	}

	e.state.RemoteXfdf = info.Xfdf
	return nil
}

func (e *clientSyncEngine) StartPolling(ctx context.Context) {
	if e.closed.Load() || (!e.cfg.EnableRealtimeSync && !e.cfg.EnableSnapshotPolling) {
		return
	}

	e.pollJob.Start(ctx, e.cfg.PollInterval, func(ctx context.Context) error {
		err := e.PollOnce(ctx)
		if err != nil && ctx.Err() == nil {
			e.logger.Error().Err(err).Msg("polling stopped")
		}
		return err
	})
}

func (e *clientSyncEngine) OnFileChanged() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.LastQuery = time.Time{}
	e.state.PendingCommands = nil
	e.state.RemoteXfdf = ""
	e.setSynced(nil)
}

func (e *clientSyncEngine) OnDocumentUnloaded() {
	e.export.Cancel()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.syncedMu.Lock()
	e.state = models.SyncState{}
	e.syncedMu.Unlock()
	e.localDirty.Store(false)
}

func (e *clientSyncEngine) State() models.SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.syncedMu.Lock()
	defer e.syncedMu.Unlock()

	st := e.state
	st.PendingCommands = slices.Clone(e.state.PendingCommands)
	st.Synced = maps.Clone(e.state.Synced)
	return st
}

func (e *clientSyncEngine) Close() {
	if e.closed.Swap(true) {
		return
	}
	e.cancel()
	e.export.Stop()
	e.pollJob.Stop()
}

// PollErr reports the error that halted polling, if any.
func (e *clientSyncEngine) PollErr() error {
	return e.pollJob.Err()
}
