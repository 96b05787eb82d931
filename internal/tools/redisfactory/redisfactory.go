package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// One shared connection for the extraction responses cache. If another
// cache with different lifetime requirements shows up it gets its own
// client and accessor.

type Factory struct {
	responsesCache *redis.Client
}

func New() *Factory {
	opt, err := redis.ParseURL(os.Getenv("RESPONSES_CACHE_REDIS_URI"))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		responsesCache: redis.NewClient(opt),
	}
}

// NewWithClient wires a preconstructed client, used by tests with redismock.
func NewWithClient(client *redis.Client) *Factory {
	return &Factory{
		responsesCache: client,
	}
}

func (f *Factory) ResponsesCacheClient() *redis.Client {
	return f.responsesCache
}
