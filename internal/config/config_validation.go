// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the value ranges of the merged [StructuredConfig]. Any
// NODE_ENV other than production counts as non-production, and required
// fields are left to [StructuredConfig.RequireServe] and
// [StructuredConfig.RequireStorage] so commands that do not use them can
// start without them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

// RequireStorage fails when no database URL is configured.
func (cfg *StructuredConfig) RequireStorage() error {
	if cfg.Storage.DB.URL == "" {
		return fmt.Errorf("%w: MONGO_URL is required", ErrInvalidStorageConfigs)
	}
	return nil
}

// RequireServe checks the fields the web server cannot run without: the
// database URL and the secret that signs tokens and cookies.
func (cfg *StructuredConfig) RequireServe() error {
	if cfg.App.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET is required", ErrInvalidAppConfigs)
	}
	return cfg.RequireStorage()
}
