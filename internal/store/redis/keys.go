package redis

const (
	// KeyPrefixSearch is the prefix for cached search results
	KeyPrefixSearch = "flightdeck:search:"
)

// SearchKey returns the Redis key for a cached search by request hash
func SearchKey(hash string) string {
	return KeyPrefixSearch + hash
}
