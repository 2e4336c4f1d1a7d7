// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/annotation"
	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/identity"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/mock"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer/memory"
	"github.com/MKhiriev/go-webviewer-sync/internal/workers"
	"github.com/MKhiriev/go-webviewer-sync/internal/xfdf"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

const testPDF = "%PDF-1.7\n1 0 obj << /Type /Page >> endobj\n%%EOF"

type engineFixture struct {
	engine    *clientSyncEngine
	sdk       *memory.Instance
	store     *mock.MockDocumentStore
	tracker   *identity.Tracker
	scheduler *workers.ManualScheduler
}

// newTestEngine loads a one-page document into a memory SDK and binds the
// engine's annotation handler to it. fileID "" leaves the tracker unbound.
func newTestEngine(t *testing.T, cfg config.ClientViewer, fileID string, attr binding.EditableValue) engineFixture {
	t.Helper()
	return newTestEngineWithManager(t, cfg, fileID, attr, nil)
}

// newTestEngineWithManager is newTestEngine with the engine reaching the SDK
// annotation manager through wrap.
func newTestEngineWithManager(
	t *testing.T,
	cfg config.ClientViewer,
	fileID string,
	attr binding.EditableValue,
	wrap func(webviewer.AnnotationManager) webviewer.AnnotationManager,
) engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	sdk := memory.New(memory.WithLoader(func(context.Context, string) ([]byte, error) {
		return []byte(testPDF), nil
	}))
	require.NoError(t, sdk.LoadDocument(context.Background(), "test.pdf"))

	tracker := identity.NewTracker()
	tracker.OnDocumentLoaded(fileID, fileID != "")

	store := mock.NewMockDocumentStore(ctrl)
	scheduler := workers.NewManualScheduler()

	var manager webviewer.AnnotationManager = sdk
	if wrap != nil {
		manager = wrap(sdk)
	}

	engine := NewClientSyncEngine(cfg.WithDefaults(), ClientSyncDeps{
		Viewer:        sdk,
		Annotations:   annotation.NewAdapter(manager, logger.Nop()),
		Store:         store,
		Tracker:       tracker,
		XfdfAttribute: attr,
		Scheduler:     scheduler,
	}, logger.Nop()).(*clientSyncEngine)
	t.Cleanup(engine.Close)

	sdk.Subscribe(webviewer.EventAnnotationChanged, func(e webviewer.Event) {
		engine.OnAnnotationChanged(e.Change)
	})

	return engineFixture{
		engine:    engine,
		sdk:       sdk,
		store:     store,
		tracker:   tracker,
		scheduler: scheduler,
	}
}

func realtimeConfig() config.ClientViewer {
	return config.ClientViewer{EnableRealtimeSync: true}
}

func square(id string) models.Annotation {
	return models.Annotation{ID: id, Type: "square", Page: 0, Rect: "10,10,50,50", Author: "remote"}
}

func addCommand(t *testing.T, annotations ...models.Annotation) string {
	t.Helper()
	command, err := xfdf.EncodeCommand(xfdf.Command{Add: annotations})
	require.NoError(t, err)
	return command
}

func annotationIDs(sdk *memory.Instance) []string {
	return models.AnnotationIDs(sdk.GetAnnotationsList())
}

// failingImports fails the first failures snapshot imports.
type failingImports struct {
	webviewer.AnnotationManager
	failures int
}

func (m *failingImports) ImportAnnotations(ctx context.Context, snapshot string) ([]models.Annotation, error) {
	if m.failures > 0 {
		m.failures--
		return nil, errors.New("viewer busy")
	}
	return m.AnnotationManager.ImportAnnotations(ctx, snapshot)
}

// ── OnAnnotationChanged ──────────────────────────────────────────────────────

func TestClientSyncEngine_OnAnnotationChanged_IgnoresSystemChanges(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	f.engine.OnAnnotationChanged(models.AnnotationChange{
		Annotations: []models.Annotation{square("a")},
		Action:      models.ActionAdd,
		Info:        models.ChangeInfo{Imported: true},
	})
	f.engine.OnAnnotationChanged(models.AnnotationChange{
		Annotations: []models.Annotation{square("b")},
		Action:      models.ActionDelete,
		Info:        models.ChangeInfo{Source: models.SourceSync},
	})

	assert.Equal(t, 0, f.scheduler.Pending())
}

func TestClientSyncEngine_OnAnnotationChanged_DisabledExport(t *testing.T) {
	f := newTestEngine(t, config.ClientViewer{EnableXfdfExportButton: true}, "F1", nil)

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)

	assert.Equal(t, 0, f.scheduler.Pending())
}

// ── command export ───────────────────────────────────────────────────────────

func TestClientSyncEngine_CommandExport_DebouncedAndRecordedAsPending(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	var sent string
	f.store.EXPECT().
		AppendCommand(gomock.Any(), "F1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, command string) error {
			sent = command
			return nil
		}).
		Times(1)

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)
	f.scheduler.Advance(500 * time.Millisecond)
	_, err = f.sdk.AddAnnotation(square("b"))
	require.NoError(t, err)

	f.scheduler.Advance(999 * time.Millisecond)
	assert.Empty(t, sent, "export fired before the window elapsed")

	f.scheduler.Advance(time.Millisecond)
	require.NotEmpty(t, sent)

	c, err := xfdf.DecodeCommand(sent)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, c.Touched())
	assert.Equal(t, []string{sent}, f.engine.State().PendingCommands)
}

func TestClientSyncEngine_CommandExport_SkippedWhileUnbound(t *testing.T) {
	// no AppendCommand expectation: any call fails the test
	f := newTestEngine(t, realtimeConfig(), "", nil)

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)
	f.scheduler.Advance(time.Second)

	assert.Empty(t, f.engine.State().PendingCommands)
}

func TestClientSyncEngine_CommandExport_StoreErrorKeepsPendingEmpty(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	f.store.EXPECT().
		AppendCommand(gomock.Any(), "F1", gomock.Any()).
		Return(adapter.ErrTransport)

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)
	f.scheduler.Advance(time.Second)

	assert.Empty(t, f.engine.State().PendingCommands)
}

func TestClientSyncEngine_CommandExport_PendingCapDropsOldest(t *testing.T) {
	cfg := realtimeConfig()
	cfg.MaxPendingCommands = 2
	f := newTestEngine(t, cfg, "F1", nil)

	var sent []string
	f.store.EXPECT().
		AppendCommand(gomock.Any(), "F1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, command string) error {
			sent = append(sent, command)
			return nil
		}).
		Times(3)

	for _, id := range []string{"a", "b", "c"} {
		_, err := f.sdk.AddAnnotation(square(id))
		require.NoError(t, err)
		f.scheduler.Advance(time.Second)
	}

	require.Len(t, sent, 3)
	assert.Equal(t, sent[1:], f.engine.State().PendingCommands)
}

func TestClientSyncEngine_EditAfterCommandImportIsExported(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)
	ctx := context.Background()

	f.store.EXPECT().
		ListCommandsSince(gomock.Any(), "F1", time.Time{}).
		Return([]models.CommandEntry{{Command: addCommand(t, square("x")), Timestamp: time.Now()}}, nil)

	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Empty(t, f.engine.State().Synced, "import events consume the synced set")
	assert.Equal(t, 0, f.scheduler.Pending(), "imports are not exported")

	var sent string
	f.store.EXPECT().
		AppendCommand(gomock.Any(), "F1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, command string) error {
			sent = command
			return nil
		}).
		Times(1)

	edited := square("x")
	edited.Contents = "user edit"
	_, err := f.sdk.ModifyAnnotation(edited)
	require.NoError(t, err)
	f.scheduler.Advance(time.Second)

	c, err := xfdf.DecodeCommand(sent)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, c.Touched())
	require.Len(t, c.Modify, 1)
	assert.Equal(t, "user edit", c.Modify[0].Contents)
	assert.Equal(t, []string{sent}, f.engine.State().PendingCommands)
}

func TestClientSyncEngine_ImportEventsConsumeOnlyTheirIDs(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)
	f.engine.setSynced([]string{"x", "y"})

	f.engine.OnAnnotationChanged(models.AnnotationChange{
		Annotations: []models.Annotation{square("x")},
		Action:      models.ActionAdd,
		Info:        models.ChangeInfo{Imported: true},
	})
	// a user change on a synced id neither consumes nor is suppressed
	f.engine.OnAnnotationChanged(models.AnnotationChange{
		Annotations: []models.Annotation{square("y")},
		Action:      models.ActionModify,
	})

	assert.Equal(t, map[string]struct{}{"y": {}}, f.engine.State().Synced)
	assert.Equal(t, 1, f.scheduler.Pending())
}

// ── snapshot export ──────────────────────────────────────────────────────────

func TestClientSyncEngine_SnapshotExport_WritesAttribute(t *testing.T) {
	attr := binding.NewAttribute("")
	f := newTestEngine(t, config.ClientViewer{EnableAutoXfdfExport: true}, "", attr)

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)
	f.scheduler.Advance(time.Second)

	ids, err := xfdf.AnnotationIDs(attr.Value())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
	assert.Equal(t, attr.Value(), f.engine.State().PreviousXfdf)
}

func TestClientSyncEngine_ExportXfdf(t *testing.T) {
	tests := []struct {
		name    string
		attr    binding.EditableValue
		wantErr error
	}{
		{name: "writable", attr: binding.NewAttribute("")},
		{name: "read only", attr: binding.NewReadOnlyAttribute("<old/>"), wantErr: ErrReadOnlyAttribute},
		{name: "not bound", attr: nil, wantErr: ErrAttributeUnavailable},
		{name: "loading", attr: func() binding.EditableValue {
			a := binding.NewAttribute("")
			a.Update("", binding.Loading)
			return a
		}(), wantErr: ErrAttributeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestEngine(t, config.ClientViewer{EnableXfdfExportButton: true}, "", tt.attr)
			_, err := f.sdk.AddAnnotation(square("a"))
			require.NoError(t, err)

			err = f.engine.ExportXfdf(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.engine.State().PreviousXfdf)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, tt.attr.Value(), `name="a"`)
		})
	}
}

func TestClientSyncEngine_ReadOnlyAttributeKeepsValue(t *testing.T) {
	attr := binding.NewReadOnlyAttribute("<old/>")
	f := newTestEngine(t, config.ClientViewer{EnableAutoXfdfExport: true}, "F1", attr)

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)
	f.scheduler.Advance(time.Second)

	assert.Equal(t, "<old/>", attr.Value())
}

// ── RetrieveXfdf ─────────────────────────────────────────────────────────────

func TestClientSyncEngine_RetrieveXfdf(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.ClientViewer
		fileID string
		attr   func() binding.EditableValue
		want   bool
	}{
		{
			name:   "bound with auto import",
			cfg:    config.ClientViewer{EnableAutoXfdfImport: true},
			fileID: "F1",
			attr:   func() binding.EditableValue { return binding.NewAttribute("<xfdf/>") },
			want:   true,
		},
		{
			name: "unbound",
			cfg:  config.ClientViewer{EnableAutoXfdfImport: true},
			attr: func() binding.EditableValue { return binding.NewAttribute("<xfdf/>") },
		},
		{
			name:   "auto import disabled",
			fileID: "F1",
			attr:   func() binding.EditableValue { return binding.NewAttribute("<xfdf/>") },
		},
		{
			name:   "attribute unavailable",
			cfg:    config.ClientViewer{EnableAutoXfdfImport: true},
			fileID: "F1",
			attr: func() binding.EditableValue {
				a := binding.NewAttribute("<xfdf/>")
				a.Update("", binding.Unavailable)
				return a
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestEngine(t, tt.cfg, tt.fileID, tt.attr())

			value, ok := f.engine.RetrieveXfdf(context.Background())
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, "<xfdf/>", value)
				assert.Equal(t, "<xfdf/>", f.engine.State().PreviousXfdf)
			} else {
				assert.Empty(t, value)
			}
		})
	}
}

// ── PollOnce, command variant ────────────────────────────────────────────────

func TestClientSyncEngine_PollOnce_ImportsForeignCommands(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)
	first := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Millisecond)

	f.store.EXPECT().
		ListCommandsSince(gomock.Any(), "F1", time.Time{}).
		Return([]models.CommandEntry{
			{Command: addCommand(t, square("x")), Timestamp: first},
			{Command: addCommand(t, square("y")), Timestamp: second},
		}, nil)

	require.NoError(t, f.engine.PollOnce(context.Background()))

	assert.ElementsMatch(t, []string{"x", "y"}, annotationIDs(f.sdk))
	assert.ElementsMatch(t, []string{"x", "y"}, f.sdk.Redrawn())
	assert.Empty(t, f.engine.State().Synced)
	assert.Equal(t, second, f.engine.State().LastQuery)
	assert.Equal(t, 0, f.scheduler.Pending())
}

func TestClientSyncEngine_PollOnce_DiscardsOwnCommands(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	var own string
	f.store.EXPECT().
		AppendCommand(gomock.Any(), "F1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, command string) error {
			own = command
			return nil
		})

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)
	f.scheduler.Advance(time.Second)
	require.NotEmpty(t, own)

	// drop the local copy so a re-import would be visible
	require.NoError(t, f.sdk.DeleteAnnotations(f.sdk.GetAnnotationsList(), models.ChangeInfo{Source: models.SourceSync}))

	f.store.EXPECT().
		ListCommandsSince(gomock.Any(), "F1", gomock.Any()).
		Return([]models.CommandEntry{{Command: own, Timestamp: time.Now()}}, nil)

	require.NoError(t, f.engine.PollOnce(context.Background()))

	assert.Empty(t, annotationIDs(f.sdk))
	assert.Empty(t, f.engine.State().PendingCommands)
}

func TestClientSyncEngine_PollOnce_CursorFollowsServerTimestamps(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)
	ctx := context.Background()

	// the server clock lags far behind the client
	t1 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Millisecond)

	gomock.InOrder(
		f.store.EXPECT().
			ListCommandsSince(gomock.Any(), "F1", time.Time{}).
			Return([]models.CommandEntry{{Command: addCommand(t, square("x")), Timestamp: t1}}, nil),
		f.store.EXPECT().
			ListCommandsSince(gomock.Any(), "F1", t1).
			Return(nil, nil),
		f.store.EXPECT().
			ListCommandsSince(gomock.Any(), "F1", t1).
			Return([]models.CommandEntry{{Command: addCommand(t, square("y")), Timestamp: t2}}, nil),
	)

	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Equal(t, t1, f.engine.State().LastQuery)

	// an empty result keeps the cursor
	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Equal(t, t1, f.engine.State().LastQuery)

	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Equal(t, t2, f.engine.State().LastQuery)
	assert.ElementsMatch(t, []string{"x", "y"}, annotationIDs(f.sdk))
}

func TestClientSyncEngine_PollOnce_SkipsMalformedCommand(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	f.store.EXPECT().
		ListCommandsSince(gomock.Any(), "F1", gomock.Any()).
		Return([]models.CommandEntry{
			{Command: "<not-xfdf", Timestamp: time.Now()},
			{Command: addCommand(t, square("x")), Timestamp: time.Now()},
		}, nil)

	require.NoError(t, f.engine.PollOnce(context.Background()))
	assert.Equal(t, []string{"x"}, annotationIDs(f.sdk))
}

func TestClientSyncEngine_PollOnce_TransportFailure(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	f.store.EXPECT().
		ListCommandsSince(gomock.Any(), "F1", gomock.Any()).
		Return(nil, adapter.ErrTransport)

	err := f.engine.PollOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollFailure)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.True(t, f.engine.State().LastQuery.IsZero())
}

func TestClientSyncEngine_PollOnce_UnboundIsNoop(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "", nil)

	require.NoError(t, f.engine.PollOnce(context.Background()))
}

func TestClientSyncEngine_PollOnce_WaitsForDocument(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)
	require.NoError(t, f.sdk.CloseDocument(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := f.engine.PollOnce(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── PollOnce, snapshot variant ───────────────────────────────────────────────

func TestClientSyncEngine_PollOnce_SnapshotReconcilesDeletions(t *testing.T) {
	f := newTestEngine(t, config.ClientViewer{EnableSnapshotPolling: true}, "F1", nil)
	ctx := context.Background()
	updatedAt := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	local, err := xfdf.EncodeSnapshot([]models.Annotation{square("a"), square("b"), square("c")})
	require.NoError(t, err)
	_, err = f.sdk.ImportAnnotations(ctx, local)
	require.NoError(t, err)

	remote, err := xfdf.EncodeSnapshot([]models.Annotation{square("a"), square("c")})
	require.NoError(t, err)

	f.store.EXPECT().
		FetchFileInfo(gomock.Any(), "F1").
		Return(models.FileInfo{ID: "F1", Xfdf: remote, UpdatedAt: updatedAt}, nil).
		Times(2)

	require.NoError(t, f.engine.PollOnce(ctx))
	assert.ElementsMatch(t, []string{"a", "c"}, annotationIDs(f.sdk))
	assert.Equal(t, remote, f.engine.State().RemoteXfdf)
	assert.Equal(t, updatedAt, f.engine.State().LastQuery)
	assert.Empty(t, f.engine.State().PreviousXfdf, "the attribute side is not touched")

	// unchanged snapshot: nothing to reconcile
	require.NoError(t, f.sdk.DeleteAnnotations(f.sdk.GetAnnotationsList()[:1], models.ChangeInfo{Source: models.SourceSync}))
	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Equal(t, []string{"c"}, annotationIDs(f.sdk))
}

func TestClientSyncEngine_PollOnce_SnapshotImportFailureIsRetried(t *testing.T) {
	manager := &failingImports{failures: 1}
	f := newTestEngineWithManager(t, config.ClientViewer{EnableSnapshotPolling: true}, "F1", nil,
		func(m webviewer.AnnotationManager) webviewer.AnnotationManager {
			manager.AnnotationManager = m
			return manager
		})
	ctx := context.Background()

	remote, err := xfdf.EncodeSnapshot([]models.Annotation{square("r")})
	require.NoError(t, err)
	f.store.EXPECT().
		FetchFileInfo(gomock.Any(), "F1").
		Return(models.FileInfo{ID: "F1", Xfdf: remote}, nil).
		Times(2)

	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Empty(t, annotationIDs(f.sdk))
	assert.Empty(t, f.engine.State().RemoteXfdf)

	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Equal(t, []string{"r"}, annotationIDs(f.sdk))
	assert.Equal(t, remote, f.engine.State().RemoteXfdf)
}

func TestClientSyncEngine_SnapshotPolling_LocalEditsReachStoreAndSurvivePolls(t *testing.T) {
	attr := binding.NewAttribute("")
	cfg := config.ClientViewer{EnableAutoXfdfExport: true, EnableSnapshotPolling: true}
	f := newTestEngine(t, cfg, "F1", attr)
	ctx := context.Background()

	var stored string
	f.store.EXPECT().
		UpdateXfdf(gomock.Any(), "F1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot string) error {
			stored = snapshot
			return nil
		}).
		Times(1)
	f.store.EXPECT().
		FetchFileInfo(gomock.Any(), "F1").
		DoAndReturn(func(context.Context, string) (models.FileInfo, error) {
			return models.FileInfo{ID: "F1", Xfdf: stored}, nil
		}).
		Times(2)

	_, err := f.sdk.AddAnnotation(square("local"))
	require.NoError(t, err)

	// a tick inside the debounce window leaves the edit alone
	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Equal(t, []string{"local"}, annotationIDs(f.sdk))

	f.scheduler.Advance(time.Second)
	ids, err := xfdf.AnnotationIDs(stored)
	require.NoError(t, err)
	assert.Equal(t, []string{"local"}, ids)
	assert.Equal(t, stored, attr.Value())
	assert.Equal(t, stored, f.engine.State().RemoteXfdf)

	require.NoError(t, f.engine.PollOnce(ctx))
	require.NoError(t, f.engine.PollOnce(ctx))
	assert.Equal(t, []string{"local"}, annotationIDs(f.sdk))
}

func TestClientSyncEngine_SnapshotPolling_FailedPushRetriedBeforePoll(t *testing.T) {
	f := newTestEngine(t, config.ClientViewer{EnableSnapshotPolling: true}, "F1", nil)
	ctx := context.Background()

	var stored string
	gomock.InOrder(
		f.store.EXPECT().
			UpdateXfdf(gomock.Any(), "F1", gomock.Any()).
			Return(adapter.ErrTransport),
		f.store.EXPECT().
			UpdateXfdf(gomock.Any(), "F1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, snapshot string) error {
				stored = snapshot
				return nil
			}),
		f.store.EXPECT().
			FetchFileInfo(gomock.Any(), "F1").
			DoAndReturn(func(context.Context, string) (models.FileInfo, error) {
				return models.FileInfo{ID: "F1", Xfdf: stored}, nil
			}),
	)

	_, err := f.sdk.AddAnnotation(square("local"))
	require.NoError(t, err)
	f.scheduler.Advance(time.Second)
	require.Empty(t, stored)

	require.NoError(t, f.engine.PollOnce(ctx))
	assert.NotEmpty(t, stored)
	assert.Equal(t, []string{"local"}, annotationIDs(f.sdk))
}

func TestClientSyncEngine_SnapshotPolling_UnboundSkipsPush(t *testing.T) {
	f := newTestEngine(t, config.ClientViewer{EnableSnapshotPolling: true}, "", nil)

	_, err := f.sdk.AddAnnotation(square("local"))
	require.NoError(t, err)
	f.scheduler.Advance(time.Second)

	assert.Empty(t, f.engine.State().RemoteXfdf)
}

func TestClientSyncEngine_PollOnce_SnapshotTransportFailure(t *testing.T) {
	f := newTestEngine(t, config.ClientViewer{EnableSnapshotPolling: true}, "F1", nil)

	f.store.EXPECT().
		FetchFileInfo(gomock.Any(), "F1").
		Return(models.FileInfo{}, errors.Join(adapter.ErrTransport, adapter.ErrNotFound))

	err := f.engine.PollOnce(context.Background())
	assert.ErrorIs(t, err, ErrPollFailure)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestClientSyncEngine_StartPolling_StopsOnFirstFailure(t *testing.T) {
	cfg := realtimeConfig()
	cfg.PollInterval = 5 * time.Millisecond
	f := newTestEngine(t, cfg, "F1", nil)

	f.store.EXPECT().
		ListCommandsSince(gomock.Any(), "F1", gomock.Any()).
		Return(nil, adapter.ErrTransport).
		Times(1)

	f.engine.StartPolling(context.Background())

	select {
	case <-f.engine.pollJob.Done():
	case <-time.After(time.Second):
		t.Fatal("poll job did not stop after the failure")
	}
	assert.ErrorIs(t, f.engine.PollErr(), ErrPollFailure)
}

func TestClientSyncEngine_OnFileChanged_ResetsCursor(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	f.store.EXPECT().
		ListCommandsSince(gomock.Any(), "F1", gomock.Any()).
		Return([]models.CommandEntry{{Command: addCommand(t, square("x")), Timestamp: time.Now()}}, nil)
	require.NoError(t, f.engine.PollOnce(context.Background()))
	require.False(t, f.engine.State().LastQuery.IsZero())

	f.tracker.OnExternalIDChanged("F2", true)
	f.engine.OnFileChanged()

	f.store.EXPECT().ListCommandsSince(gomock.Any(), "F2", time.Time{}).Return(nil, nil)
	require.NoError(t, f.engine.PollOnce(context.Background()))
}

func TestClientSyncEngine_OnDocumentUnloaded_DropsPendingExport(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)
	require.Equal(t, 1, f.scheduler.Pending())

	f.engine.OnDocumentUnloaded()
	f.scheduler.Advance(time.Second)

	assert.Equal(t, models.SyncState{}, f.engine.State())
}

func TestClientSyncEngine_Close(t *testing.T) {
	f := newTestEngine(t, realtimeConfig(), "F1", nil)

	_, err := f.sdk.AddAnnotation(square("a"))
	require.NoError(t, err)

	f.engine.Close()
	f.engine.Close()
	f.scheduler.Advance(time.Second)

	_, err = f.sdk.AddAnnotation(square("b"))
	require.NoError(t, err)
	assert.Equal(t, 0, f.scheduler.Pending())

	require.NoError(t, f.engine.PollOnce(context.Background()))
	_, ok := f.engine.RetrieveXfdf(context.Background())
	assert.False(t, ok)
}
