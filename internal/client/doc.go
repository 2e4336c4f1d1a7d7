// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless viewer client runtime.
//
// It mounts one viewer on the in-memory rendering SDK against the remote
// document store and drives it with line commands, which exercises the
// annotation synchronization end to end without a browser.
package client
