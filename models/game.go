// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Game is a catalog entry owned by exactly one user.
type Game struct {
	// ID is assigned by the store on creation.
	ID int64 `json:"id"`

	// Name is the title of the game.
	Name string `json:"name"`

	// Studio is the optional developer or publisher name.
	Studio *string `json:"studio,omitempty"`

	// CoverImageURL points to the cover art.
	CoverImageURL string `json:"coverImageUrl"`

	// Price is optional and bounded to [0, 1000].
	Price *float64 `json:"price,omitempty"`

	// Description is a free-form summary of the game.
	Description string `json:"description"`

	// SteamLink is an optional storefront URL.
	SteamLink *string `json:"steamLink,omitempty"`

	// OwnerID is the user that created the game. It is set by the server from
	// the authenticated identity and never read from client input.
	OwnerID int64 `json:"ownerId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateGameRequest is the client payload for creating a game.
// It deliberately has no owner field.
type CreateGameRequest struct {
	Name          string   `json:"name" validate:"required,notblank,min=3,max=100"`
	Studio        *string  `json:"studio,omitempty" validate:"omitempty,max=100"`
	CoverImageURL string   `json:"coverImageUrl" validate:"required,notblank,url"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Description   string   `json:"description" validate:"required,notblank,min=10,max=500"`
	SteamLink     *string  `json:"steamLink,omitempty" validate:"omitempty,url"`
}

// ToGame builds a [Game] owned by ownerID from the request.
func (r CreateGameRequest) ToGame(ownerID int64) Game {
	return Game{
		Name:          r.Name,
		Studio:        r.Studio,
		CoverImageURL: r.CoverImageURL,
		Price:         r.Price,
		Description:   r.Description,
		SteamLink:     r.SteamLink,
		OwnerID:       ownerID,
	}
}

// GameUpdate represents a partial update of a single game.
// Only non-nil fields will be updated.
type GameUpdate struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,notblank,min=3,max=100"`
	Studio        *string  `json:"studio,omitempty" validate:"omitempty,max=100"`
	CoverImageURL *string  `json:"coverImageUrl,omitempty" validate:"omitempty,notblank,url"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,notblank,min=10,max=500"`
	SteamLink     *string  `json:"steamLink,omitempty" validate:"omitempty,url"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u GameUpdate) IsEmpty() bool {
	return u.Name == nil && u.Studio == nil && u.CoverImageURL == nil &&
		u.Price == nil && u.Description == nil && u.SteamLink == nil
}
