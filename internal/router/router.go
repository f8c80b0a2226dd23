package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCourse(c *ginext.Context)
	GetCourse(c *ginext.Context)
	ListCourses(c *ginext.Context)
	EnrollCourse(c *ginext.Context)
	ApproveEnrollment(c *ginext.Context)
	RejectEnrollment(c *ginext.Context)
	GetUserEnrollments(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	ApproveReservation(c *ginext.Context)
	RejectReservation(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Courses
		api.POST("/courses", h.CreateCourse)
		api.GET("/courses", h.ListCourses)
		api.GET("/courses/:id", h.GetCourse)

		// Enrollments
		api.POST("/courses/:id/enroll", h.EnrollCourse)
		api.POST("/enrollments/:id/approve", h.ApproveEnrollment)
		api.POST("/enrollments/:id/reject", h.RejectEnrollment)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/availability", h.CheckAvailability)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/reject", h.RejectReservation)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/enrollments", h.GetUserEnrollments)
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
