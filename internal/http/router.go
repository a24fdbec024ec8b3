package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/config"
	"limoapi/internal/http/handlers"
	"limoapi/internal/http/middleware"
	"limoapi/internal/identity"
	"limoapi/internal/repositories"
)

// NewRouter wires every route against the given database handle and
// identity provider. Nothing here reaches for globals so tests can pass
// in sqlmock handles and fake providers.
func NewRouter(env config.Env, db *sql.DB, provider identity.Provider) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	dev := env.IsDevelopment()

	vehicleRepo := repositories.VehicleRepository{DB: db}
	serviceRepo := repositories.ServiceRepository{DB: db}
	tripTypeRepo := repositories.TripTypeRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	contactRepo := repositories.ContactRepository{DB: db}

	vehicles := handlers.VehicleHandler{Repo: vehicleRepo, Dev: dev}
	svcs := handlers.ServiceHandler{Repo: serviceRepo, Dev: dev}
	tripTypes := handlers.TripTypeHandler{Repo: tripTypeRepo, Dev: dev}
	bookings := handlers.BookingHandler{
		Bookings:  bookingRepo,
		Vehicles:  vehicleRepo,
		TripTypes: tripTypeRepo,
		Services:  serviceRepo,
		Dev:       dev,
	}
	contacts := handlers.ContactHandler{Repo: contactRepo, Dev: dev}
	system := handlers.SystemHandler{DB: db, Env: env.AppEnv, Dev: dev}
	seed := handlers.SeedHandler{
		Vehicles:  vehicleRepo,
		Services:  serviceRepo,
		TripTypes: tripTypeRepo,
		Dev:       dev,
	}

	authed := middleware.RequireAuth(provider)
	admin := middleware.RequireRole(identity.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)

		api.POST("/seed", authed, admin, seed.Run)

		v := api.Group("/vehicles")
		v.GET("", vehicles.List)
		v.GET("/:id", vehicles.GetByID)
		v.POST("", authed, admin, vehicles.Create)
		v.PUT("/:id", authed, admin, vehicles.Update)
		v.DELETE("/:id", authed, admin, vehicles.Delete)

		s := api.Group("/services")
		s.GET("", svcs.List)
		s.GET("/admin/all", authed, admin, svcs.ListAdmin)
		s.GET("/slug/:slug", svcs.GetBySlug)
		s.GET("/:id", svcs.GetByID)
		s.POST("", authed, admin, svcs.Create)
		s.PUT("/:id", authed, admin, svcs.Update)
		s.DELETE("/:id", authed, admin, svcs.Delete)

		t := api.Group("/trip-types")
		t.GET("", tripTypes.List)
		t.GET("/admin/all", authed, admin, tripTypes.ListAdmin)
		t.GET("/slug/:slug", tripTypes.GetBySlug)
		t.GET("/:id", tripTypes.GetByID)
		t.POST("", authed, admin, tripTypes.Create)
		t.PUT("/:id", authed, admin, tripTypes.Update)
		t.DELETE("/:id", authed, admin, tripTypes.Delete)

		b := api.Group("/bookings", authed)
		b.POST("", bookings.Create)
		b.GET("", admin, bookings.List)
		b.GET("/user", bookings.ListMine)
		b.GET("/number/:bookingNumber", bookings.GetByNumber)
		b.GET("/:id", bookings.GetByID)
		b.GET("/:id/confirmation", admin, bookings.Confirmation)
		b.PUT("/:id", admin, bookings.Update)
		b.DELETE("/:id", admin, bookings.Delete)

		ct := api.Group("/contacts")
		ct.POST("", contacts.Create)
		ct.GET("", authed, admin, contacts.List)
		ct.GET("/:id", authed, admin, contacts.GetByID)
		ct.PATCH("/:id/status", authed, admin, contacts.UpdateStatus)
		ct.DELETE("/:id", authed, admin, contacts.Delete)
	}

	return r
}
