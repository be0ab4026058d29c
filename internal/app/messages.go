// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// game library server handlers and the command line client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or printed by the client to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording throughout
// the API.
package app

const (
	// MsgUserCreated is the message of a successful registration response.
	MsgUserCreated = "user created successfully"

	// MsgLoggedIn is the message of a successful login response.
	MsgLoggedIn = "logged in successfully"

	// MsgGameUpdated is printed by the client after a successful update.
	MsgGameUpdated = "game updated"

	// MsgGameDeleted is printed by the client after a successful delete.
	MsgGameDeleted = "game deleted"
)
