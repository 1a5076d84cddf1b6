package config

import (
	"fmt"
	"time"
)

// Pool sizing mirrors one handle per in-flight request with headroom.
const (
	MaxOpenConns    = 25
	MaxIdleConns    = 25
	ConnMaxLifetime = 10 * time.Minute
	ConnMaxIdleTime = 5 * time.Minute
)

// DSN renders the MySQL connection string for the configured store.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		c.User,
		c.Password,
		c.Host,
		c.Name,
	)
}
