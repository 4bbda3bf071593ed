// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrNotListening     = errors.New("server is not listening")
	ErrAlreadyListening = errors.New("server is already listening")
)
