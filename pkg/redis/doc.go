// Package redis opens go-redis clients from a [Config] and exposes the
// health check and shutdown hooks the server wires into its lifecycle.
//
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	app := mailgate.New(mailgate.WithHealthChecks(mailgate.Check("redis", redis.Healthcheck(client))))
package redis
