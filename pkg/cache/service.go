package cache

import "time"

// CacheService is the in-process cache used for upstream orders and the
// enums payload.
type CacheService interface {
	// Get returns the value and true when present and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value for the given duration. Zero uses the default TTL.
	Set(key string, value interface{}, duration time.Duration)

	Delete(key string)

	// DeletePrefix drops every entry whose key starts with prefix.
	DeletePrefix(prefix string)

	// ItemCount reports entries currently held, expired ones included until cleanup.
	ItemCount() int

	Flush()
}

// OrderKey is the cache key of a single order.
func OrderKey(orderID string) string {
	return "order:" + orderID
}

// ClientOrdersPrefix prefixes every cached client order list.
const ClientOrdersPrefix = "orders:client:"

// ClientOrdersKey is the cache key of a client's order list.
func ClientOrdersKey(clientID string) string {
	return ClientOrdersPrefix + clientID
}
