// Package cache provides a small generic TTL cache used to keep hot lookups
// (such as provider settings) off the database.
//
// Two backends implement [Cache]: [Memory] keeps entries in process and
// [Redis] stores JSON-encoded values in a shared Redis instance so every
// replica sees the same entry.
//
// [Loader] reads through a cache and computes missing values with a single
// call per key, no matter how many goroutines miss at the same time:
//
//	c := cache.NewMemory[settings.Settings](cache.WithDefaultTTL(time.Minute))
//	defer c.Close()
//
//	l := cache.NewLoader[settings.Settings](c)
//	s, err := l.Get(ctx, "settings", time.Minute, store.Load)
package cache
