package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"busfinder/internal/domain"
	"busfinder/internal/http/middleware"
	"busfinder/internal/services"
	"busfinder/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// parsePageInput reads the sidebar selections. Missing values fall back to
// the widest defaults. On a malformed value it returns the input parsed so far
// (never submitted) together with a domain.ValidationError.
func parsePageInput(v url.Values) (services.PageInput, error) {
	in := services.DefaultPageInput()
	in.Route = utils.NormalizeSpace(v.Get("route"))
	in.Submitted = v.Get("submit") != ""

	if s := strings.TrimSpace(v.Get("start")); s != "" {
		m, err := utils.ClockMinutes(s)
		if err != nil {
			in.Submitted = false
			return in, domain.ValidationError{Field: "start", Msg: "must be a time of day (HH:MM)", Err: err}
		}
		in.StartTime = utils.FormatClock(m)
	}
	if s := strings.TrimSpace(v.Get("end")); s != "" {
		m, err := utils.ClockMinutes(s)
		if err != nil {
			in.Submitted = false
			return in, domain.ValidationError{Field: "end", Msg: "must be a time of day (HH:MM)", Err: err}
		}
		in.EndTime = utils.FormatClock(m)
	}
	for _, f := range []struct {
		key string
		dst *int64
	}{{"min", &in.MinFare}, {"max", &in.MaxFare}} {
		s := strings.TrimSpace(v.Get(f.key))
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			in.Submitted = false
			return in, domain.ValidationError{Field: f.key, Msg: "must be a whole number", Err: err}
		}
		*f.dst = n
	}
	return in, nil
}

// selectionQuery is the inverse of parsePageInput.
func selectionQuery(in services.PageInput) string {
	v := url.Values{}
	if in.Route != "" {
		v.Set("route", in.Route)
	}
	v.Set("start", in.StartTime)
	v.Set("end", in.EndTime)
	v.Set("min", strconv.FormatInt(in.MinFare, 10))
	v.Set("max", strconv.FormatInt(in.MaxFare, 10))
	if in.Submitted {
		v.Set("submit", "1")
	}
	return v.Encode()
}

// parseBookKey accepts "book_<index>".
func parseBookKey(key string) (int, error) {
	key = strings.TrimSpace(key)
	idx, ok := strings.CutPrefix(key, "book_")
	if !ok {
		return 0, domain.ValidationError{Field: "book", Msg: fmt.Sprintf("unknown book key %q", key)}
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 {
		return 0, domain.ValidationError{Field: "book", Msg: fmt.Sprintf("unknown book key %q", key), Err: err}
	}
	return n, nil
}

func formValues(c *gin.Context) url.Values {
	if err := c.Request.ParseForm(); err != nil {
		return c.Request.URL.Query()
	}
	return c.Request.Form
}

func attachment(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
