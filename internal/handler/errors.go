package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/shadowside-backend-go/internal/repository"
	"github.com/jengzang/shadowside-backend-go/internal/routing"
	"github.com/jengzang/shadowside-backend-go/internal/service"
	"github.com/jengzang/shadowside-backend-go/pkg/response"
	"github.com/rs/zerolog/log"
)

// User-facing messages
const (
	msgMissingLocation = "Please enter both start and end points."
	msgUnresolved      = "Couldn't resolve one or both locations."
	msgNoRoute         = "No route found."
	msgSuperseded      = "A newer analysis was started; this result was discarded."
	msgNoResult        = "No analysis has been run yet."
)

// writeError maps service errors to HTTP responses
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var providerErr *service.ProviderError
	switch {
	case errors.Is(err, service.ErrMissingLocation):
		response.BadRequest(c, msgMissingLocation)
	case errors.Is(err, service.ErrUnresolvedLocation):
		response.NotFound(c, msgUnresolved)
	case errors.Is(err, routing.ErrNoRoute):
		response.NotFound(c, msgNoRoute)
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSuperseded):
		response.Conflict(c, msgSuperseded)
	case errors.As(err, &providerErr):
		response.BadGateway(c, providerErr.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}
