// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crosspath/internal/delivery/http/middleware"
	"crosspath/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler  *handler.LocationHandler
	ProximityHandler *handler.ProximityHandler
	MatchHandler     *handler.MatchHandler
	FriendHandler    *handler.FriendHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler  *handler.LocationHandler
	proximityHandler *handler.ProximityHandler
	matchHandler     *handler.MatchHandler
	friendHandler    *handler.FriendHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:  params.LocationHandler,
		proximityHandler: params.ProximityHandler,
		matchHandler:     params.MatchHandler,
		friendHandler:    params.FriendHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location routes require authentication
	locationGroup := e.Group("/location")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.POST("", r.locationHandler.RecordLocation)
		locationGroup.GET("", r.locationHandler.GetLocation)
		locationGroup.PUT("/visibility", r.locationHandler.SetVisibility)
		locationGroup.DELETE("", r.locationHandler.DeleteLocation)
	}

	// Proximity routes: scanning and event lifecycle
	proximityGroup := e.Group("/proximity")
	proximityGroup.Use(r.authMiddleware.Authenticate)
	{
		proximityGroup.GET("/nearby", r.proximityHandler.ScanNearby)
		proximityGroup.GET("/events", r.proximityHandler.ListEvents)
		proximityGroup.GET("/events/:id", r.proximityHandler.GetEvent)
		proximityGroup.POST("/events/:id/viewed", r.proximityHandler.MarkEventViewed)
		proximityGroup.POST("/events/:id/connect", r.matchHandler.Connect)
		proximityGroup.POST("/events/:id/skip", r.matchHandler.Skip)
		proximityGroup.POST("/events/:id/friend-request", r.friendHandler.RequestFriend)
	}

	// Match routes
	matchGroup := e.Group("/matches")
	matchGroup.Use(r.authMiddleware.Authenticate)
	{
		matchGroup.GET("", r.matchHandler.ListMatches)
		matchGroup.GET("/:id", r.matchHandler.GetMatch)
		matchGroup.PUT("/:id/instagram", r.matchHandler.ShareInstagram)
		matchGroup.POST("/:id/message", r.matchHandler.RecordMessage)
		matchGroup.DELETE("/:id", r.matchHandler.Unmatch)
	}

	// Friend routes
	friendGroup := e.Group("/friends")
	friendGroup.Use(r.authMiddleware.Authenticate)
	{
		friendGroup.GET("", r.friendHandler.ListFriends)
		friendGroup.GET("/requests", r.friendHandler.ListIncomingRequests)
		friendGroup.POST("/requests/:id/respond", r.friendHandler.RespondToRequest)
	}

	// Push device routes
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.DELETE("/:deviceID", r.deviceHandler.RemoveDevice)
	}
}
