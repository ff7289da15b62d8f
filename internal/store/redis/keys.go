package redis

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/curator/internal/store"
)

// KeyPrefix namespaces every key written by curator.
const KeyPrefix = "curator:"

// SlotKey returns the Redis key of a slot for a profile.
// Example: SlotKey("default", store.SlotResources) -> "curator:default:resources"
func SlotKey(profile string, slot store.Slot) string {
	return KeyPrefix + profile + ":" + string(slot)
}

// ProfilePattern matches every key of a profile (for SCAN).
func ProfilePattern(profile string) string {
	return KeyPrefix + profile + ":*"
}

// ExtractSlot extracts the slot name from a profile key.
func ExtractSlot(profile, key string) (store.Slot, error) {
	prefix := KeyPrefix + profile + ":"
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return "", fmt.Errorf("invalid slot key: %s", key)
	}
	return store.Slot(key[len(prefix):]), nil
}
