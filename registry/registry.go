package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libtimeseries/sample"
)

// Registry keeps named sample series, e.g. one per sensor, and forgets the ones
// that were not captured to for IdleExpiration.
//
// The registry itself may be used from several goroutines, each series must
// still have a single writer.
type Registry[T comparable] struct {
	logger  l.Wrapper
	factory func() *sample.Series[T]

	lock   sync.Mutex
	series *cache.Cache
}

type Config struct {
	// IdleExpiration is how long a series survives without captures. 0 keeps
	// series forever.
	IdleExpiration time.Duration
}

// NewRegistry panics when factory is nil.
func NewRegistry[T comparable](cfg Config, factory func() *sample.Series[T], logger l.Wrapper) *Registry[T] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "Registry"))

	if factory == nil {
		logger.Error("no series factory")

		panic("registry: no series factory")
	}

	expiration, cleanupInterval := cache.NoExpiration, time.Duration(0)
	if cfg.IdleExpiration > 0 {
		expiration, cleanupInterval = cfg.IdleExpiration, cfg.IdleExpiration
	}

	r := &Registry[T]{
		logger:  logger,
		factory: factory,
		series:  cache.New(expiration, cleanupInterval),
	}

	r.series.OnEvicted(func(key string, _ interface{}) {
		r.logger.WithFields(l.StringField("key", key)).Debug("series removed")
	})

	return r
}

func (r *Registry[T]) Get(key string) (*sample.Series[T], bool) {
	i, ok := r.series.Get(key)
	if !ok {
		return nil, false
	}

	s, ok := i.(*sample.Series[T])

	return s, ok
}

// Series returns the series named key, creating it when needed, and restarts
// its idle expiration.
func (r *Registry[T]) Series(key string) *sample.Series[T] {
	r.lock.Lock()
	defer r.lock.Unlock()

	s, ok := r.Get(key)
	if !ok {
		s = r.factory()

		r.logger.WithFields(l.StringField("key", key)).Debug("series created")
	}

	r.series.Set(key, s, cache.DefaultExpiration)

	return s
}

func (r *Registry[T]) Capture(key string, v T, at float64) error {
	return r.Series(key).Capture(v, at)
}

func (r *Registry[T]) CaptureNow(key string, v T) error {
	return r.Capture(key, v, sample.Now())
}

func (r *Registry[T]) Delete(key string) {
	r.series.Delete(key)
}

// Keys returns the names of the live series in ascending order.
func (r *Registry[T]) Keys() []string {
	items := r.series.Items()

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func (r *Registry[T]) Len() int {
	return len(r.series.Items())
}
