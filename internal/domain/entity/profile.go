package entity

import (
	"github.com/google/uuid"
)

// UserProfile is the slice of profile data the proximity engine needs when
// announcing encounters. Full profile CRUD lives outside this service.
type UserProfile struct {
	UserID          uuid.UUID `json:"user_id"`                    // The profile owner.
	DisplayName     string    `json:"display_name"`               // Name shown in notifications.
	InstagramHandle string    `json:"instagram_handle,omitempty"` // Revealed only after mutual consent.
}
