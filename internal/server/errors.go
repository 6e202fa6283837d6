// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the handlers carry
	// neither an HTTP router nor a gRPC service.
	errNoServersAreCreated = errors.New("no servers are created: handlers carry no HTTP or gRPC endpoint")
	errNoServersToRun      = errors.New("no servers to run")
)
