package handlers

import (
	"fmt"
	"net/http"

	"busfinder/internal/domain"
	"busfinder/internal/http/middleware"
	"busfinder/internal/services"
	"busfinder/internal/utils"

	"github.com/gin-gonic/gin"
)

const pageTemplate = "page.tmpl"

// GET /
func (h Handler) Page(c *gin.Context) {
	st := middleware.GetSession(c)
	in, parseErr := parsePageInput(c.Request.URL.Query())

	view, err := h.search(c).Page(c.Request.Context(), in, st)
	if saveErr := h.Sessions.Save(c.Writer, st); saveErr != nil {
		utils.LogEvent(middleware.GetRequestID(c), "session", "save", saveErr.Error())
	}

	if err != nil {
		c.HTML(http.StatusServiceUnavailable, pageTemplate, view)
		h.terminate(c, err)
		return
	}

	status := http.StatusOK
	if parseErr != nil {
		status = http.StatusBadRequest
		view.Messages = append([]services.Message{{Level: "error", Text: parseErr.Error()}}, view.Messages...)
	}
	c.HTML(status, pageTemplate, view)
}

// POST /book
//
// Any book action moves the session to booking-acknowledged, then the page is
// rendered again from the same selections.
func (h Handler) Book(c *gin.Context) {
	values := formValues(c)
	idx, err := parseBookKey(values.Get("book"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	in, err := parsePageInput(values)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	in.Submitted = true

	st := middleware.GetSession(c).Acknowledge()
	if err := h.Sessions.Save(c.Writer, st); err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "could not store session", Err: err})
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "acknowledge",
		fmt.Sprintf("session=%s key=%s route=%q bus=%q", st.ID, services.BookKey(idx), in.Route, values.Get("bus")))
	c.Redirect(http.StatusSeeOther, "/?"+selectionQuery(in))
}
