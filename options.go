package dakoda

import (
	"runtime"

	"golang.org/x/time/rate"

	"github.com/dakoda-project/dakoda-go/blobstore"
	"github.com/dakoda-project/dakoda-go/cache"
)

type options struct {
	logger       *Logger
	cacheStore   blobstore.Store
	compression  cache.CompressionType
	indexWorkers int
	limiter      *rate.Limiter
	noCache      bool
}

// Option configures corpus construction.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:       NewLogger(nil),
		compression:  cache.CompressionZSTD,
		indexWorkers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger configures the logger. Pass NoopLogger() to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCacheStore configures where index cache files live. The default is a
// local store rooted at the source location, writing under ".index". Use a
// blobstore/s3 or blobstore/minio store to share caches across machines.
func WithCacheStore(store blobstore.Store) Option {
	return func(o *options) {
		o.cacheStore = store
	}
}

// WithCacheCompression configures the cache payload compression. The
// default is ZSTD; CompressionNone trades disk for CPU.
func WithCacheCompression(c cache.CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithIndexWorkers bounds the number of documents indexed concurrently.
// The default is GOMAXPROCS; values below 1 mean serial indexing.
func WithIndexWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.indexWorkers = n
		} else {
			o.indexWorkers = 1
		}
	}
}

// WithIndexRateLimit throttles document loads during corpus indexing to
// docsPerSecond with the given burst. Useful when the source is a shared
// remote service.
func WithIndexRateLimit(docsPerSecond float64, burst int) Option {
	return func(o *options) {
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(docsPerSecond), burst)
	}
}

// WithoutCache disables index persistence entirely. Indexes are still
// memoized for the corpus lifetime, but each new process rebuilds them
// from the source.
func WithoutCache() Option {
	return func(o *options) {
		o.noCache = true
	}
}
