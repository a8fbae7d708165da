package models

import "time"

// Favorite associates an anonymous browsing session with a property.
// The (session_id, property_id) pair is unique; adding it twice returns
// the original record unchanged.
type Favorite struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id"`
	PropertyID int64     `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteInput identifies a (session, property) pair for add/remove.
type FavoriteInput struct {
	SessionID  string `json:"session_id" binding:"required"`
	PropertyID int64  `json:"property_id" binding:"required"`
}
