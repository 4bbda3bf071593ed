// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the site and drives its startup sequence.
//
// An [App] moves through these states:
//
//	UNINITIALIZED -> DB_CONNECTING -> DB_CONNECTED -> LISTENING -> STOPPED
//	                      |
//	                      +-> FAILED
//
// Templates and configuration are prepared by [New], before the database is
// contacted. The connection is attempted once; a failure is logged, moves
// the app to FAILED and is returned to the caller. Nothing retries.
package app
