package db

import (
	"testing"

	intconfig "github.com/SiddharthDaryani/Bus-booking-system/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
)

func testConfig() intconfig.DBConfig {
	return intconfig.DBConfig{Host: "127.0.0.1:3306", User: "test", Name: "test"}
}

func TestReleaseWithoutAcquire(t *testing.T) {
	c := New(testConfig())

	// Never acquired, released repeatedly: must not panic.
	c.Release()
	c.Release()

	if c.IsLive() {
		t.Fatalf("conn should not be live before acquire")
	}
}

func TestReleaseIsIdempotentAfterAcquire(t *testing.T) {
	h, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer h.Close()

	c := FromHandle(h)
	if !c.IsLive() {
		t.Fatalf("seeded conn should be live")
	}

	c.Release()
	if c.IsLive() {
		t.Fatalf("conn should not be live after release")
	}
	c.Release()
	c.Release()
}

func TestNilConnIsSafe(t *testing.T) {
	var c *Conn
	if c.IsLive() {
		t.Fatalf("nil conn must not report live")
	}
	c.Release()
}

func TestAcquireReturnsSeededHandle(t *testing.T) {
	h, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer h.Close()

	c := FromHandle(h)
	got, err := c.Acquire()
	if err != nil {
		t.Fatalf("acquire on seeded conn: %v", err)
	}
	if got != h {
		t.Fatalf("acquire should return the seeded handle")
	}

	// Multiple acquires within one unit of work share the handle.
	again, err := c.Acquire()
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if again != got {
		t.Fatalf("second acquire returned a different handle")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
