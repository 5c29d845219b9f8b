// Package settings loads the system settings the gateway depends on, most
// importantly the map from sender domain to Resend API token.
//
// Sources:
//   - PostgresStore reads the single row of the "setting" table
//   - FileStore reads a YAML file, for deployments without a settings table
//   - Static wraps a fixed value (tests, local runs)
//
// Wrap any source with Cached to serve repeated loads from pkg/cache
// (in-memory or Redis) with singleflight protection against stampedes:
//
//	store := settings.NewCached(
//		settings.NewPostgresStore(pool),
//		cache.NewRedis[settings.Settings](client, nil, cache.WithPrefix("mailgate")),
//		time.Minute,
//	)
//
//	s, err := store.Load(ctx)
//	token, ok := s.Token("example.com")
//
// Settings values are immutable once loaded; callers must not modify the maps.
package settings
