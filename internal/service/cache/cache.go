package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL. Analysis
// responses are cached as marshaled JSON so hits skip the whole pipeline.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
