package cache

// Cache defines the interface for caching decoded data tables.
// Values are written at most once per key after a successful load and are
// never invalidated; entries live for the process lifetime.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Flush()
}
