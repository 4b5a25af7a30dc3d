package cache

import (
	"fmt"
)

// cache key for a specific property.
func PropertyKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}

// cache key for the set of cache keys associated with a property.
func PropertyKeysSetKey(propertyID string) string {
	return fmt.Sprintf("property:keys:%s", propertyID)
}

// cache key for the listing of one owner's properties.
func OwnerListingKey(ownerID string) string {
	return fmt.Sprintf("properties:owner:%s", ownerID)
}

// lock key guarding writes to a property.
func PropertyLockKey(id string) string {
	return fmt.Sprintf("lock:property:%s", id)
}

// generation counter bumped by every invalidation of a property.
func PropertyGenerationKey(id string) string {
	return fmt.Sprintf("property:gen:%s", id)
}

// generation counter bumped by every invalidation of an owner listing.
func OwnerListingGenerationKey(ownerID string) string {
	return fmt.Sprintf("properties:owner:gen:%s", ownerID)
}
