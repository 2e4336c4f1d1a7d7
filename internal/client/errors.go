// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errUsage          = errors.New("invalid arguments, see help")
	errUnknownCommand = errors.New("unknown command, see help")
)
