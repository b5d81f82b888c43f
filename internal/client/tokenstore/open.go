package tokenstore

import (
	"context"
	"time"

	"github.com/dmitrijs2005/shiftboard/internal/filex"
	"github.com/dmitrijs2005/shiftboard/internal/logging"
	"github.com/go-redis/redis/v8"
)

// Kind names the Store variant chosen by Open.
type Kind string

const (
	KindRedis  Kind = "redis"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

const defaultRedisDialTimeout = 2 * time.Second

// Options controls store selection. Empty Path and RedisAddr disable the
// corresponding persistent variant.
type Options struct {
	BaseURL          string
	Path             string
	RedisAddr        string
	RedisDialTimeout time.Duration
}

// Opened is the result of Open. Close releases whatever backs Store.
type Opened struct {
	Store Store
	Kind  Kind
	close func() error
}

func (o *Opened) Close() error {
	if o.close == nil {
		return nil
	}
	return o.close()
}

// newRedisClient is a test seam.
var newRedisClient = redis.NewClient

// Open selects the token store once at startup: Redis if configured and
// answering PING, else the SQLite file if it opens and migrates, else
// memory. Open never fails; an unusable persistent store only degrades the
// session to in-memory credentials.
func Open(ctx context.Context, opts Options, logger logging.Logger) *Opened {
	if logger == nil {
		logger = logging.Nop()
	}

	origin, err := Origin(opts.BaseURL)
	if err != nil {
		logger.Warn(ctx, "token persistence disabled", "error", err)
		return memoryStore(ctx, logger)
	}

	if opts.RedisAddr != "" {
		if o, ok := openRedis(ctx, opts, origin, logger); ok {
			return o
		}
	}

	if opts.Path != "" {
		if o, ok := openSQLite(ctx, opts.Path, origin, logger); ok {
			return o
		}
	}

	return memoryStore(ctx, logger)
}

func openRedis(ctx context.Context, opts Options, origin string, logger logging.Logger) (*Opened, bool) {
	timeout := opts.RedisDialTimeout
	if timeout <= 0 {
		timeout = defaultRedisDialTimeout
	}

	rdb := newRedisClient(&redis.Options{
		Addr:        opts.RedisAddr,
		DialTimeout: timeout,
		MaxRetries:  -1,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn(ctx, "redis token store unreachable", "addr", opts.RedisAddr, "error", err)
		_ = rdb.Close()
		return nil, false
	}

	s := NewRedis(rdb, origin)
	logger.Info(ctx, "token store selected", "kind", KindRedis, "addr", opts.RedisAddr, "origin", origin)
	return &Opened{Store: s, Kind: KindRedis, close: s.Close}, true
}

func openSQLite(ctx context.Context, path, origin string, logger logging.Logger) (*Opened, bool) {
	if path != ":memory:" {
		if _, err := filex.EnsureParentDir(path); err != nil {
			logger.Warn(ctx, "sqlite token store unavailable", "path", path, "error", err)
			return nil, false
		}
	}

	s, err := OpenSQLite(ctx, path, origin)
	if err != nil {
		logger.Warn(ctx, "sqlite token store unavailable", "path", path, "error", err)
		return nil, false
	}

	logger.Info(ctx, "token store selected", "kind", KindSQLite, "path", path, "origin", origin)
	return &Opened{Store: s, Kind: KindSQLite, close: s.Close}, true
}

func memoryStore(ctx context.Context, logger logging.Logger) *Opened {
	logger.Info(ctx, "token store selected", "kind", KindMemory)
	return &Opened{Store: NewMemory(), Kind: KindMemory}
}
