// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy decides whether an authenticated user may perform an action
// on a game. Decisions are pure: they depend only on the action, the state
// of the resource and the acting user, never on the store or transport.
package policy

import "fmt"

// Action is an operation a user attempts on the game catalog.
type Action int

const (
	ActionList Action = iota
	ActionRead
	ActionListMine
	ActionCreate
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionRead:
		return "read"
	case ActionListMine:
		return "list_mine"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Decision is the outcome of [Authorize].
type Decision int

const (
	Allow Decision = iota
	DenyNotFound
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyNotFound:
		return "deny_not_found"
	case DenyForbidden:
		return "deny_forbidden"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// Resource is the state of the targeted game as seen by the caller.
// For actions without a target it is ignored.
type Resource struct {
	Exists  bool
	OwnerID int64
}

// Authorize returns the decision for actingUserID performing action on
// resource. For update and delete, existence is checked before ownership.
// Unknown actions are denied as forbidden.
func Authorize(action Action, resource Resource, actingUserID int64) Decision {
	switch action {
	case ActionList, ActionRead, ActionListMine, ActionCreate:
		return Allow
	case ActionUpdate, ActionDelete:
		if !resource.Exists {
			return DenyNotFound
		}
		if resource.OwnerID != actingUserID {
			return DenyForbidden
		}
		return Allow
	default:
		return DenyForbidden
	}
}

// Err converts a decision into an error: nil for [Allow], otherwise an
// error matching both [ErrNotAuthorized] and the specific denial.
func (d Decision) Err() error {
	switch d {
	case Allow:
		return nil
	case DenyNotFound:
		return fmt.Errorf("%w: %w", ErrNotAuthorized, ErrNotFound)
	default:
		return fmt.Errorf("%w: %w", ErrNotAuthorized, ErrForbidden)
	}
}
