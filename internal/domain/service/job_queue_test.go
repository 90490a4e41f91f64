package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExpiryJobKey_Deterministic(t *testing.T) {
	itemID := uuid.MustParse("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b")

	key := ExpiryJobKey(itemID, 7)

	assert.Equal(t, "expiry-0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b-7", key)
	// Same inputs always produce the same key.
	assert.Equal(t, key, ExpiryJobKey(itemID, 7))
	assert.NotEqual(t, key, ExpiryJobKey(itemID, 1))
}

func TestBroadcastJobKey(t *testing.T) {
	broadcastID := uuid.MustParse("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b")
	userID := uuid.MustParse("0190ffff-0000-7111-8222-333344445555")

	key := BroadcastJobKey(broadcastID, userID)

	assert.Equal(t, "broadcast-0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b-0190ffff-0000-7111-8222-333344445555", key)
}
