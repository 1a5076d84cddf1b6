package handlers

import (
	intconfig "github.com/SiddharthDaryani/Bus-booking-system/internal/config"
	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/http/middleware"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/services"

	"github.com/gin-gonic/gin"
)

// API wires handlers to configuration. Each request opens its own Conn
// through conn() and must release it before returning; no handle is
// shared across concurrent requests.
type API struct {
	Env intconfig.Env

	// ConnFactory lets tests substitute a seeded connection manager.
	ConnFactory func() *intdb.Conn
}

func NewAPI(env intconfig.Env) *API {
	return &API{Env: env}
}

func (a *API) conn() *intdb.Conn {
	if a.ConnFactory != nil {
		return a.ConnFactory()
	}
	return intdb.New(a.Env.DB)
}

func (a *API) bookingService(c *gin.Context, conn *intdb.Conn) services.BookingService {
	return services.NewBookingService(conn, middleware.GetRequestID(c))
}
