// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, STORAGE_DB_* and SERVER_* variables plus
// CONFIG. Unset variables leave fields at their zero value so that flags and
// the JSON file can still provide them during the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("parse env config: %w", err)
	}

	return nil
}
