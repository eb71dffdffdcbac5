package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisMock *Redis

// Redis is an in-process Redis server with a connected client.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisMock = &Redis{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return redisMock
}

func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// Expire moves the server clock forward so cached keys older than d expire.
func (r *Redis) Expire(d time.Duration) {
	r.Server.FastForward(d)
}

// Keys lists the keys currently stored.
func (r *Redis) Keys() []string {
	return r.Server.Keys()
}
