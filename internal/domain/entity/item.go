// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemType discriminates the two tracked item variants.
type ItemType string

const (
	ItemTypeFood     ItemType = "FOOD"
	ItemTypeDocument ItemType = "DOCUMENT"
)

// ExpiryStatus is derived from the item's expiry date, never stored.
type ExpiryStatus string

const (
	ExpirySafe         ExpiryStatus = "SAFE"
	ExpiryExpiringSoon ExpiryStatus = "EXPIRING_SOON"
	ExpiryExpired      ExpiryStatus = "EXPIRED"
)

// expiringSoonWindow is the number of days ahead within which an item
// counts as expiring soon.
const expiringSoonWindow = 7

// Item is a tracked object with an expiry date. All variants share the
// common envelope; the variant payload is populated according to Type.
type Item struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the item.
	UserID     uuid.UUID `json:"user_id"`     // The ID of the user who owns this item.
	Type       ItemType  `json:"type"`        // The item variant (FOOD, DOCUMENT).
	Name       string    `json:"name"`        // Display name of the item.
	ExpiryDate time.Time `json:"expiry_date"` // Date the item expires. Time-of-day is irrelevant.
	Notes      string    `json:"notes"`       // Free-form user notes.
	PhotoURL   string    `json:"photo_url"`   // Public URL of the item photo, empty when none.

	// Food payload, meaningful only when Type == ItemTypeFood.
	Category    string `json:"category,omitempty"`     // Food category (DAIRY, MEAT, ...).
	StorageType string `json:"storage_type,omitempty"` // Where the food is kept (FRIDGE, FREEZER, PANTRY).
	Quantity    string `json:"quantity,omitempty"`     // Free-form quantity, e.g. "2L".

	// Document payload, meaningful only when Type == ItemTypeDocument.
	DocumentType   string     `json:"document_type,omitempty"`   // Document kind (PASSPORT, VISA, LICENSE, ...).
	CustomType     string     `json:"custom_type,omitempty"`     // User-supplied kind when DocumentType is OTHER.
	DocumentNumber string     `json:"document_number,omitempty"` // Reference number printed on the document.
	IssuedDate     *time.Time `json:"issued_date,omitempty"`     // When the document was issued.

	CreatedAt time.Time `json:"created_at"` // Timestamp of when this item was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// DaysUntilExpiry returns the whole number of days between now and the
// expiry date, comparing calendar dates rather than instants. Negative
// for items that already expired.
func (i *Item) DaysUntilExpiry(now time.Time) int {
	expiry := time.Date(i.ExpiryDate.Year(), i.ExpiryDate.Month(), i.ExpiryDate.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return int(expiry.Sub(today) / (24 * time.Hour))
}

// ExpiryStatus derives the item's status from its expiry date.
func (i *Item) ExpiryStatus(now time.Time) ExpiryStatus {
	days := i.DaysUntilExpiry(now)
	switch {
	case days < 0:
		return ExpiryExpired
	case days <= expiringSoonWindow:
		return ExpiryExpiringSoon
	default:
		return ExpirySafe
	}
}
