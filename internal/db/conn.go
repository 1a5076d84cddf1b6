package db

import (
	"context"
	"database/sql"
	"sync"
	"time"

	intconfig "github.com/SiddharthDaryani/Bus-booking-system/internal/config"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/utils"

	_ "github.com/go-sql-driver/mysql"
)

// Conn owns the backing-store handle for one unit of work (one request).
// The handle is opened lazily on first Acquire and must be released by the
// caller when the unit of work ends, whatever the outcome. A Conn must not
// be shared across concurrent units of work.
type Conn struct {
	cfg intconfig.DBConfig

	mu     sync.Mutex
	handle *sql.DB
	owned  bool
}

func New(cfg intconfig.DBConfig) *Conn {
	return &Conn{cfg: cfg, owned: true}
}

// FromHandle wraps an already-open handle (tests seed sqlmock through this).
// The caller keeps ownership; Release detaches without closing it.
func FromHandle(h *sql.DB) *Conn {
	return &Conn{handle: h, owned: false}
}

// Acquire returns a live handle, opening and pinging one if needed.
// Repository operations call this before every query rather than assuming
// the caller pre-acquired; a dropped handle is re-established transparently
// by the database/sql pool underneath. Failure to reach the store or a
// credential rejection surfaces as domain.ConnectionError and is not
// retried here.
func (c *Conn) Acquire() (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle != nil {
		return c.handle, nil
	}

	utils.LogEvent("", "db", "acquire", "establishing new database connection")

	h, err := sql.Open("mysql", c.cfg.DSN())
	if err != nil {
		return nil, domain.ConnectionError{Err: err}
	}

	h.SetMaxOpenConns(intconfig.MaxOpenConns)
	h.SetMaxIdleConns(intconfig.MaxIdleConns)
	h.SetConnMaxLifetime(intconfig.ConnMaxLifetime)
	h.SetConnMaxIdleTime(intconfig.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := h.PingContext(ctx); err != nil {
		_ = h.Close()
		return nil, domain.ConnectionError{Err: err}
	}

	c.handle = h
	return c.handle, nil
}

// IsLive reports whether a usable handle is currently held. The pool
// re-validates individual connections itself, so a non-nil handle that
// pinged at open time counts as live.
func (c *Conn) IsLive() bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle != nil
}

// Release closes the handle if one is open. Idempotent: safe to call
// repeatedly, safe when Acquire was never called or already failed, and
// safe on a nil Conn, so callers can defer it unconditionally.
func (c *Conn) Release() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == nil {
		return
	}
	if c.owned {
		_ = c.handle.Close()
	}
	c.handle = nil
	utils.LogEvent("", "db", "release", "database connection closed")
}
