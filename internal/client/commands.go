// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

const helpText = `commands:
  add <page> <x1,y1,x2,y2> [text]   add a square annotation
  note <id> <text>                  replace the contents of an annotation
  delete <id>                       delete an annotation
  list                              list annotations
  save                              save the document to the store
  saveas                            save a copy and rebind to it
  export                            write the xfdf snapshot to the attribute
  xfdf                              print the xfdf attribute
  state                             print the file identity
  quit                              unmount and exit
`

// execute runs one command line and reports whether the client should stop.
// Failures are printed and logged; they never stop the client.
func (a *App) execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	var err error
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "help":
		a.printf(helpText)
	case "quit", "exit":
		return true
	case "add":
		err = a.add(args)
	case "note":
		err = a.note(args)
	case "delete":
		if len(args) != 1 {
			err = errUsage
			break
		}
		err = a.instance.DeleteAnnotation(args[0])
	case "list":
		for _, ann := range a.instance.GetAnnotationsList() {
			a.printf("%s %s page=%d rect=%s author=%s %q\n", ann.ID, ann.Type, ann.Page, ann.Rect, ann.Author, ann.Contents)
		}
	case "save":
		err = a.viewer.Save(ctx)
	case "saveas":
		var id string
		if id, err = a.viewer.SaveAs(ctx); err == nil {
			a.printf("saved as %s\n", id)
		}
	case "export":
		err = a.viewer.ExportXfdf(ctx)
	case "xfdf":
		a.printf("%s\n", a.xfdf.Value())
	case "state":
		identity := a.viewer.Tracker().Identity()
		a.printf("%s current=%q previous=%q\n", a.viewer.State(), identity.Current, identity.Previous)
	default:
		err = errUnknownCommand
	}

	if err != nil {
		a.logger.Warn().Err(err).Str("command", line).Msg("command failed")
		a.printf("error: %v\n", err)
	}
	return false
}

func (a *App) add(args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 0 {
		return errUsage
	}

	ann, err := a.instance.AddAnnotation(models.Annotation{
		Type:     "square",
		Page:     page,
		Rect:     args[1],
		Contents: strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}
	a.printf("added %s\n", ann.ID)
	return nil
}

func (a *App) note(args []string) error {
	if len(args) < 2 {
		return errUsage
	}

	for _, ann := range a.instance.GetAnnotationsList() {
		if ann.ID == args[0] {
			ann.Contents = strings.Join(args[1:], " ")
			_, err := a.instance.ModifyAnnotation(ann)
			return err
		}
	}
	return webviewer.ErrUnknownAnnotation
}
