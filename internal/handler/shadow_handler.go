package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/render"
	"github.com/jengzang/shadowside-backend-go/internal/service"
	"github.com/jengzang/shadowside-backend-go/pkg/response"
)

// travelTimeLayouts are accepted forms of travel_time; the zone-less ones
// come from HTML datetime-local inputs and are read in the request timezone
var travelTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// AnalyzeRequest is the body of an analysis request
type AnalyzeRequest struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	TravelTime string `json:"travel_time"`
	Timezone   string `json:"timezone"` // IANA name, defaults to UTC
}

// ShadowHandler handles HTTP requests for shade analyses
type ShadowHandler struct {
	service *service.ShadowService
}

// NewShadowHandler creates a new shadow handler
func NewShadowHandler(service *service.ShadowService) *ShadowHandler {
	return &ShadowHandler{service: service}
}

// Analyze runs a new analysis and makes it the current result
// POST /api/v1/shadow/analyze
func (h *ShadowHandler) Analyze(c *gin.Context) {
	var body AnalyzeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	travelTime, err := ParseTravelTime(body.TravelTime, body.Timezone)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), models.AnalysisRequest{
		Start:      body.Start,
		End:        body.End,
		TravelTime: travelTime,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

// Latest returns the current result
// GET /api/v1/shadow/latest
func (h *ShadowHandler) Latest(c *gin.Context) {
	result := h.service.Current()
	if result == nil {
		response.NotFound(c, msgNoResult)
		return
	}
	response.Success(c, result)
}

// LatestGeoJSON returns the map overlay of the current result
// GET /api/v1/shadow/latest/geojson
func (h *ShadowHandler) LatestGeoJSON(c *gin.Context) {
	result := h.service.Current()
	if result == nil {
		response.NotFound(c, msgNoResult)
		return
	}
	c.JSON(http.StatusOK, render.FeatureCollection(result))
}

// LatestSummary returns the text report of the current result
// GET /api/v1/shadow/latest/summary
func (h *ShadowHandler) LatestSummary(c *gin.Context) {
	result := h.service.Current()
	if result == nil {
		response.NotFound(c, msgNoResult)
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/plain; charset=utf-8")
	if err := render.WriteText(c.Writer, result); err != nil {
		_ = c.Error(err)
	}
}

// ParseTravelTime parses value in one of the accepted layouts. An empty value
// yields the zero time, meaning "now".
func ParseTravelTime(value, timezone string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	loc := time.UTC
	if timezone != "" {
		var err error
		if loc, err = time.LoadLocation(timezone); err != nil {
			return time.Time{}, fmt.Errorf("invalid timezone %q", timezone)
		}
	}

	for _, layout := range travelTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid travel_time %q", value)
}
