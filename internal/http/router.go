package api

import (
	"net/http"
	"os"
	"strings"
	"time"

	intconfig "github.com/SiddharthDaryani/Bus-booking-system/internal/config"
	h "github.com/SiddharthDaryani/Bus-booking-system/internal/http/handlers"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsPolicy())
	r.Use(middleware.AuthOptional([]byte(env.JWTSecret)))

	_ = r.SetTrustedProxies(nil)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := h.NewAPI(env)

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/db-check", a.DBCheck)

		schedules := api.Group("/schedules")
		schedules.GET("", a.SearchSchedules)
		schedules.GET("/dates", a.ScheduleDates)
		schedules.GET("/:id", a.ScheduleDetails)
		schedules.GET("/:id/seats", a.SeatAvailability)

		bookings := api.Group("/bookings")
		bookings.POST("", a.CreateBooking)
		bookings.GET("/ticket", a.ETicket)

		auth := api.Group("/auth")
		auth.POST("/register", a.Register)
		auth.POST("/login", a.Login)
	}

	return r
}

func corsPolicy() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins := []string{}
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
