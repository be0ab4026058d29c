// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransports means both SERVER_ADDRESS and SERVER_GRPC_ADDRESS are
// empty, so the server would expose neither the catalog API nor health.
var errNoTransports = errors.New("no transport configured: set SERVER_ADDRESS or SERVER_GRPC_ADDRESS")
