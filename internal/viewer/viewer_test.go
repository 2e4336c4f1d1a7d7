// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/identity"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/mock"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer/memory"
	"github.com/MKhiriev/go-webviewer-sync/internal/workers"
	"github.com/MKhiriev/go-webviewer-sync/internal/xfdf"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

const testPDF = "%PDF-1.7\n1 0 obj << /Type /Page >> endobj\n%%EOF"

type fixture struct {
	sdk       *memory.Instance
	store     *mock.MockDocumentStore
	scheduler *workers.ManualScheduler
	loaded    *[]string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	var loaded []string
	sdk := memory.New(memory.WithLoader(func(_ context.Context, source string) ([]byte, error) {
		loaded = append(loaded, source)
		return []byte(testPDF), nil
	}))
	return fixture{
		sdk:       sdk,
		store:     mock.NewMockDocumentStore(gomock.NewController(t)),
		scheduler: workers.NewManualScheduler(),
		loaded:    &loaded,
	}
}

func (f fixture) viewer(cfg config.ClientViewer, attrs Attributes) *Viewer {
	// keep the poll ticker out of the way of the tests
	cfg.PollInterval = time.Hour
	cfg.SaveIndicatorFloor = time.Millisecond
	return New(cfg, f.sdk, f.store, attrs, logger.Nop(), WithScheduler(f.scheduler))
}

func snapshotOf(t *testing.T, ids ...string) string {
	t.Helper()
	annotations := make([]models.Annotation, 0, len(ids))
	for _, id := range ids {
		annotations = append(annotations, models.Annotation{ID: id, Type: "square", Rect: "0,0,1,1"})
	}
	s, err := xfdf.EncodeSnapshot(annotations)
	require.NoError(t, err)
	return s
}

func TestViewer_Mount_LoadsFromURLAttributeFirst(t *testing.T) {
	f := newFixture(t)
	v := f.viewer(config.ClientViewer{FileURL: "static.pdf"}, Attributes{
		FileURL: binding.NewAttribute("attr.pdf"),
	})

	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	assert.Equal(t, []string{"attr.pdf"}, *f.loaded)
	assert.True(t, f.sdk.IsDocumentLoaded())
}

func TestViewer_Mount_FallsBackToStaticURL(t *testing.T) {
	f := newFixture(t)
	urlAttr := binding.NewAttribute("")
	urlAttr.Update("", binding.Unavailable)

	v := f.viewer(config.ClientViewer{FileURL: "static.pdf"}, Attributes{FileURL: urlAttr})

	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	assert.Equal(t, []string{"static.pdf"}, *f.loaded)
}

func TestViewer_Mount_Twice(t *testing.T) {
	f := newFixture(t)
	v := f.viewer(config.ClientViewer{}, Attributes{})

	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	assert.ErrorIs(t, v.Mount(context.Background()), ErrAlreadyMounted)
	assert.Empty(t, *f.loaded)
}

func TestViewer_FileIDAttribute(t *testing.T) {
	f := newFixture(t)
	fileID := binding.NewAttribute("F1")
	v := f.viewer(config.ClientViewer{FileURL: "doc.pdf"}, Attributes{FileID: fileID})

	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	assert.Equal(t, models.FileIdentity{Current: "F1"}, v.Tracker().Identity())
	assert.Equal(t, identity.Bound, v.State())

	require.NoError(t, fileID.SetValue("F2"))
	assert.Equal(t, models.FileIdentity{Current: "F2", Previous: "F1"}, v.Tracker().Identity())

	fileID.Update("", binding.Loading)
	assert.Equal(t, "F2", v.Tracker().Identity().Current)
}

func TestViewer_AutoImportThroughRetriever(t *testing.T) {
	f := newFixture(t)
	v := f.viewer(config.ClientViewer{
		FileURL:              "doc.pdf",
		FileID:               "F1",
		EnableAutoXfdfImport: true,
	}, Attributes{Xfdf: binding.NewAttribute(snapshotOf(t, "a", "b"))})

	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	assert.ElementsMatch(t, []string{"a", "b"}, models.AnnotationIDs(f.sdk.GetAnnotationsList()))
}

func TestViewer_AutoImportIntoLoadedDocument(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sdk.LoadDocument(context.Background(), "preloaded.pdf"))

	v := f.viewer(config.ClientViewer{
		FileID:               "F1",
		EnableAutoXfdfImport: true,
	}, Attributes{Xfdf: binding.NewAttribute(snapshotOf(t, "a"))})

	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	assert.Equal(t, []string{"a"}, models.AnnotationIDs(f.sdk.GetAnnotationsList()))
}

func TestViewer_NoAutoImportWhileUnbound(t *testing.T) {
	f := newFixture(t)
	v := f.viewer(config.ClientViewer{
		FileURL:              "doc.pdf",
		EnableAutoXfdfImport: true,
	}, Attributes{Xfdf: binding.NewAttribute(snapshotOf(t, "a"))})

	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	assert.Empty(t, f.sdk.GetAnnotationsList())
}

func TestViewer_RealtimeExport(t *testing.T) {
	f := newFixture(t)
	v := f.viewer(config.ClientViewer{
		FileURL:            "doc.pdf",
		FileID:             "F1",
		AnnotationUser:     "alice",
		EnableRealtimeSync: true,
	}, Attributes{})

	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	f.store.EXPECT().AppendCommand(gomock.Any(), "F1", gomock.Any()).Return(nil)

	a, err := f.sdk.AddAnnotation(models.Annotation{Type: "square", Rect: "0,0,1,1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", a.Author)

	f.scheduler.Advance(time.Second)
}

func TestViewer_SaveButtons(t *testing.T) {
	tests := []struct {
		name       string
		available  bool
		wantSave   bool
		wantSaveAs bool
	}{
		{name: "module available", available: true, wantSave: true, wantSaveAs: true},
		{name: "module unavailable", available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.store.EXPECT().CheckAvailability(gomock.Any()).Return(tt.available)

			v := f.viewer(config.ClientViewer{
				EnableDocumentUpdates: true,
				EnableSaveAs:          true,
			}, Attributes{})
			require.NoError(t, v.Mount(context.Background()))
			t.Cleanup(v.Unmount)

			assert.Equal(t, tt.wantSave, v.SaveEnabled())
			assert.Equal(t, tt.wantSaveAs, v.SaveAsEnabled())

			if !tt.available {
				assert.ErrorIs(t, v.Save(context.Background()), ErrSaveDisabled)
				_, err := v.SaveAs(context.Background())
				assert.ErrorIs(t, err, ErrSaveAsDisabled)
			}
		})
	}
}

func TestViewer_SaveAsRebindsAndResetsCursor(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().CheckAvailability(gomock.Any()).Return(true)

	v := f.viewer(config.ClientViewer{
		FileURL:            "doc.pdf",
		FileID:             "F1",
		EnableSaveAs:       true,
		EnableRealtimeSync: true,
	}, Attributes{})
	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)

	f.store.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return("F2", nil)

	id, err := v.SaveAs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "F2", id)
	assert.Equal(t, models.FileIdentity{Current: "F2", Previous: "F1"}, v.Tracker().Identity())
	assert.True(t, v.services.SyncEngine.State().LastQuery.IsZero())
}

func TestViewer_ExportXfdfButton(t *testing.T) {
	f := newFixture(t)
	attr := binding.NewAttribute("")

	disabled := f.viewer(config.ClientViewer{FileURL: "doc.pdf"}, Attributes{Xfdf: attr})
	require.NoError(t, disabled.Mount(context.Background()))
	assert.ErrorIs(t, disabled.ExportXfdf(context.Background()), ErrExportDisabled)
	disabled.Unmount()

	enabled := f.viewer(config.ClientViewer{FileURL: "doc.pdf", EnableXfdfExportButton: true}, Attributes{Xfdf: attr})
	require.NoError(t, enabled.Mount(context.Background()))
	t.Cleanup(enabled.Unmount)

	_, err := f.sdk.AddAnnotation(models.Annotation{ID: "a", Type: "square", Rect: "0,0,1,1"})
	require.NoError(t, err)
	require.NoError(t, enabled.ExportXfdf(context.Background()))
	assert.Contains(t, attr.Value(), `name="a"`)
}

func TestViewer_Unmount(t *testing.T) {
	f := newFixture(t)
	fileID := binding.NewAttribute("F1")
	v := f.viewer(config.ClientViewer{
		FileURL:              "doc.pdf",
		EnableAutoXfdfImport: true,
		EnableRealtimeSync:   true,
	}, Attributes{FileID: fileID, Xfdf: binding.NewAttribute("")})

	require.NoError(t, v.Mount(context.Background()))
	require.Equal(t, 3, f.sdk.Subscribers())
	require.Equal(t, 1, fileID.Listeners())

	_, err := f.sdk.AddAnnotation(models.Annotation{Type: "square", Rect: "0,0,1,1"})
	require.NoError(t, err)

	v.Unmount()
	v.Unmount()

	assert.Equal(t, 0, f.sdk.Subscribers())
	assert.Equal(t, 0, fileID.Listeners())
	assert.Equal(t, 0, f.scheduler.Pending())
	assert.ErrorIs(t, v.Save(context.Background()), ErrNotMounted)

	// no AppendCommand expectation: a late export would fail the test
	f.scheduler.Advance(time.Second)
}
