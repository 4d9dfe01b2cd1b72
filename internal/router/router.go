package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListUpcomingEvents(c *ginext.Context)
	ListEventsByCreator(c *ginext.Context)
	GetEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	SeedDemoEvents(c *ginext.Context)
	JoinEvent(c *ginext.Context)
	ListJoinedEvents(c *ginext.Context)
	SyncUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	SetUserRole(c *ginext.Context)
	ListUsers(c *ginext.Context)
	Stats(c *ginext.Context)
	TestDB(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, "Event Directory Service is running")
	})

	router.GET("/stats", h.Stats)
	router.GET("/test-db", h.TestDB)
	router.GET("/seed-demo-events", h.SeedDemoEvents)

	// Users
	router.POST("/users/sync", h.SyncUser)
	router.GET("/users/:email", h.GetUser)
	router.PATCH("/users/:email/role", h.SetUserRole)
	router.GET("/users", h.ListUsers)

	// Events. Static segments are registered before the :id parameter.
	router.POST("/events", h.CreateEvent)
	router.GET("/events", h.ListEvents)
	router.GET("/events/upcoming", h.ListUpcomingEvents)
	router.GET("/events/user", h.ListEventsByCreator)
	router.GET("/events/:id", h.GetEvent)
	router.PUT("/events/:id", h.UpdateEvent)
	router.DELETE("/events/:id", h.DeleteEvent)

	// Joins
	router.POST("/join-event", h.JoinEvent)
	router.GET("/joined", h.ListJoinedEvents)

	return router
}
