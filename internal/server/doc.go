// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
// During shutdown the gRPC health service reports NOT_SERVING before the
// listeners stop accepting requests.
package server
