package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

var limiterStore limiter.Store = memory.NewStore()

func NewMemoryStore() limiter.Store {
	return memory.NewStore()
}

func NewRedisStore(redisURL string) (limiter.Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return sredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{
		Prefix: "gaunghar:ratelimit",
	})
}

// UseLimiterStore replaces the store backing IPRateLimitPeriod.
func UseLimiterStore(store limiter.Store) {
	limiterStore = store
}

type RateLimitConfig struct {
	RequestsPerPeriod int
	Period            time.Duration
	Store             limiter.Store
	RealIPHeader      string
}

func RateLimit(cfg RateLimitConfig) mux.MiddlewareFunc {
	store := cfg.Store
	if store == nil {
		store = limiterStore
	}
	period := cfg.Period
	if period <= 0 {
		period = time.Second
	}
	opts := []limiter.Option{}
	if cfg.RealIPHeader != "" {
		opts = append(opts, limiter.WithClientIPHeader(cfg.RealIPHeader))
	}
	instance := limiter.New(store, limiter.Rate{Period: period, Limit: int64(cfg.RequestsPerPeriod)}, opts...)
	mw := stdlib.NewMiddleware(instance, stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
	}))
	return mw.Handler
}

// IPRateLimitPeriod limits each client IP to requests per period.
func IPRateLimitPeriod(requests int, period time.Duration) mux.MiddlewareFunc {
	return RateLimit(RateLimitConfig{RequestsPerPeriod: requests, Period: period})
}
