package handlers

import (
	"busfinder/internal/domain"
	"busfinder/internal/http/middleware"
	"busfinder/internal/services"

	"github.com/gin-gonic/gin"
)

func (h Handler) exportInput(c *gin.Context) (services.PageInput, services.SearchOutcome, bool) {
	in, err := parsePageInput(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return in, services.SearchOutcome{}, false
	}
	if !in.RouteChosen() {
		RespondDomainError(c, domain.ValidationError{Field: "route", Msg: "is required"})
		return in, services.SearchOutcome{}, false
	}
	in.Submitted = true

	out, _, err := h.search(c).Lookup(c.Request.Context(), in)
	if err == nil {
		err = out.QueryErr
	}
	if err != nil {
		h.fail(c, err)
		return in, out, false
	}
	return in, out, true
}

// GET /export.csv
func (h Handler) ExportCSV(c *gin.Context) {
	in, out, ok := h.exportInput(c)
	if !ok {
		return
	}
	data, name, err := services.ExportService{RequestID: middleware.GetRequestID(c)}.CSV(in.Route, out.Trips)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "could not build csv", Err: err})
		return
	}
	attachment(c, "text/csv; charset=utf-8", name, data)
}

// GET /export.pdf
func (h Handler) ExportPDF(c *gin.Context) {
	in, out, ok := h.exportInput(c)
	if !ok {
		return
	}
	data, name, err := services.ExportService{RequestID: middleware.GetRequestID(c)}.PDF(in.Route, in, out.Trips)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "could not build pdf", Err: err})
		return
	}
	attachment(c, "application/pdf", name, data)
}
