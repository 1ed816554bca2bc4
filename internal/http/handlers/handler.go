package handlers

import (
	"busfinder/internal/db"
	"busfinder/internal/http/middleware"
	"busfinder/internal/services"
	"busfinder/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler carries what every endpoint needs. Nothing in it is per-request.
type Handler struct {
	Routes   services.RouteLister
	Buses    services.BusSearcher
	Conn     db.Opener
	Sessions *session.Manager

	// Fatal ends the process after a connection failure has been reported.
	Fatal func(error)
}

func (h Handler) search(c *gin.Context) services.SearchService {
	return services.SearchService{
		Routes:    h.Routes,
		Buses:     h.Buses,
		RequestID: middleware.GetRequestID(c),
	}
}

// terminate flushes what has been written and hands err to Fatal.
func (h Handler) terminate(c *gin.Context, err error) {
	c.Writer.Flush()
	if h.Fatal != nil {
		h.Fatal(err)
	}
}
