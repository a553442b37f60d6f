package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/willfong/flight-analytics/internal/analytics"
)

// Analytics is the view-model service behind the HTTP API
type Analytics interface {
	Dashboard(ctx context.Context) analytics.Dashboard
	Cities(ctx context.Context) analytics.CityList
	SearchRoute(ctx context.Context, q analytics.RouteQuery) (analytics.RouteResult, error)
	AirlineShare(ctx context.Context) analytics.AirlineShareReport
	BusyAirports(ctx context.Context, limit int) analytics.AirportReport
	DailyTrend(ctx context.Context) analytics.DailyReport
}

var _ Analytics = (*analytics.Service)(nil)

// FlightHandler serves the dashboard, search and analytics views as JSON
type FlightHandler struct {
	service      Analytics
	airportLimit int
}

func NewFlightHandler(service Analytics, airportLimit int) *FlightHandler {
	return &FlightHandler{service: service, airportLimit: airportLimit}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/dashboard", h.dashboard)
	router.GET("/cities", h.cities)
	router.GET("/flights", h.search)
	router.GET("/analytics/airlines", h.airlines)
	router.GET("/analytics/airports", h.airports)
	router.GET("/analytics/daily", h.daily)
	router.GET("/about", h.about)
}

func (h *FlightHandler) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Dashboard(c.Request.Context()))
}

func (h *FlightHandler) cities(c *gin.Context) {
	list := h.service.Cities(c.Request.Context())
	if from := c.Query("from"); from != "" {
		list.Cities = analytics.Destinations(list.Cities, from)
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) search(c *gin.Context) {
	result, err := h.service.SearchRoute(c.Request.Context(), analytics.RouteQuery{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
		SortBy:      c.Query("sort"),
	})
	if err != nil {
		if analytics.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) airlines(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.AirlineShare(c.Request.Context()))
}

func (h *FlightHandler) airports(c *gin.Context) {
	limit := h.airportLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.service.BusyAirports(c.Request.Context(), limit))
}

func (h *FlightHandler) daily(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DailyTrend(c.Request.Context()))
}

func (h *FlightHandler) about(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.AboutInfo())
}
