package handlers

import (
	"net/http"

	"busfinder/internal/domain"
	"busfinder/internal/domain/models"
	"busfinder/internal/http/middleware"
	"busfinder/internal/services"
	"busfinder/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/routes
func (h Handler) ListRoutes(c *gin.Context) {
	routes, err := h.Routes.ListRoutes(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]models.Route, 0, len(routes))
	for _, r := range routes {
		out = append(out, models.Route{Name: r})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}

// GET /api/routes/link?route=
func (h Handler) ResolveLink(c *gin.Context) {
	name := utils.NormalizeSpace(c.Query("route"))
	if name == "" {
		RespondDomainError(c, domain.ValidationError{Field: "route", Msg: "is required"})
		return
	}
	link, found, err := h.Routes.ResolveLink(c.Request.Context(), name)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !found {
		RespondDomainError(c, domain.NotFoundError{Resource: "route link for " + name})
		return
	}
	c.JSON(http.StatusOK, models.RouteLink{Route: name, Link: link, Found: true})
}

// GET /api/options
func (h Handler) Options(c *gin.Context) {
	def := services.DefaultPageInput()
	c.JSON(http.StatusOK, gin.H{
		"route_placeholder": services.RoutePlaceholder,
		"time_slots":        utils.DefaultTimeSlots(),
		"fare_brackets":     utils.DefaultFareBrackets(),
		"defaults": gin.H{
			"start": def.StartTime,
			"end":   def.EndTime,
			"min":   def.MinFare,
			"max":   def.MaxFare,
		},
	})
}

// GET /api/buses?route=&start=&end=&min=&max=
func (h Handler) SearchBuses(c *gin.Context) {
	in, err := parsePageInput(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !in.RouteChosen() {
		RespondDomainError(c, domain.ValidationError{Field: "route", Msg: "is required"})
		return
	}
	in.Submitted = true

	out, msgs, err := h.search(c).Lookup(c.Request.Context(), in)
	if err == nil {
		err = out.QueryErr
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if !out.LinkFound {
		respondError(c, http.StatusNotFound, "not_found", "no route link found for route: "+in.Route, msgs)
		return
	}

	trips := out.Trips
	if trips == nil {
		trips = []models.BusTrip{}
	}
	c.JSON(http.StatusOK, gin.H{
		"route":    in.Route,
		"filter":   in.Filter(out.Link),
		"trips":    trips,
		"messages": msgs,
	})
}

// GET /api/session
func (h Handler) Session(c *gin.Context) {
	st := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{"session": st, "phase": st.Phase()})
}

type bookRequest struct {
	Key string `json:"key" binding:"required"`
}

// POST /api/book
func (h Handler) BookAPI(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if _, err := parseBookKey(req.Key); err != nil {
		RespondDomainError(c, err)
		return
	}

	st := middleware.GetSession(c).Acknowledge()
	if err := h.Sessions.Save(c.Writer, st); err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "could not store session", Err: err})
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "booking", "acknowledge", "session="+st.ID+" key="+req.Key)
	c.JSON(http.StatusOK, gin.H{"session": st, "phase": st.Phase()})
}
