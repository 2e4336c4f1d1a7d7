// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memory

import (
	"bytes"
	"context"

	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
)

var (
	xfdfBegin = []byte("\n%%XFDF-BEGIN\n")
	xfdfEnd   = []byte("\n%%XFDF-END\n")
)

// document keeps the original bytes of a loaded file. Annotations are
// stored as a trailing section so that saved files restore their layer on
// the next load.
type document struct {
	data  []byte
	pages int
}

func (d *document) PageCount() int {
	return d.pages
}

func (d *document) FileData(_ context.Context, opts webviewer.FileDataOptions) ([]byte, error) {
	out := bytes.Clone(d.data)
	if opts.Xfdf == "" {
		return out, nil
	}
	out = append(out, xfdfBegin...)
	out = append(out, opts.Xfdf...)
	out = append(out, xfdfEnd...)
	return out, nil
}

// splitXFDF separates the trailing annotation section from the document body.
func splitXFDF(data []byte) (body []byte, snapshot string) {
	begin := bytes.LastIndex(data, xfdfBegin)
	if begin < 0 {
		return data, ""
	}
	rest := data[begin+len(xfdfBegin):]
	end := bytes.LastIndex(rest, xfdfEnd)
	if end < 0 {
		return data, ""
	}
	return data[:begin], string(rest[:end])
}

func countPages(data []byte) int {
	n := bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
	if n < 1 {
		return 1
	}
	return n
}
