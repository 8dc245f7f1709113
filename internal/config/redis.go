package config

// Redis backs the token denylist consulted on logout and the rate limiter
// on the auth endpoints. Both callers tolerate a nil client, so a Redis
// outage at boot degrades the service instead of failing it: the limiter
// switches off and revoked tokens die by expiry only.

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisPingTimeout bounds the connectivity probe at startup.
const redisPingTimeout = 2 * time.Second

// NewRedisClient builds a client from REDIS_* environment variables and
// probes the server once. It returns nil when the probe fails.
//
//	REDIS_HOST     hostname, paired with REDIS_PORT (wins over REDIS_ADDR)
//	REDIS_ADDR     host:port shorthand, default localhost:6379
//	REDIS_PASSWORD optional
//	REDIS_DB       database number, default 0
//	REDIS_TLS      "true"/"1" to connect over TLS
func NewRedisClient() *redis.Client {
	opts := &redis.Options{
		Addr:     redisAddr(),
		Password: envStr("REDIS_PASSWORD", ""),
		DB:       envInt("REDIS_DB", 0),
	}
	if envBool("REDIS_TLS", false) {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}

func redisAddr() string {
	host := envStr("REDIS_HOST", "")
	port := envStr("REDIS_PORT", "")
	if host != "" && port != "" {
		return host + ":" + port
	}
	return envStr("REDIS_ADDR", "localhost:6379")
}
