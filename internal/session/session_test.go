package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"busfinder/internal/domain/models"
)

func TestRoundTripKeepsBookingFlag(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	rec := httptest.NewRecorder()
	st := models.SessionState{ID: "abc"}.Acknowledge()
	if err := m.Save(rec, st); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	got := m.Load(req)
	if got.ID != "abc" || !got.BookingSuccess {
		t.Fatalf("unexpected state after round trip: %+v", got)
	}
	if got.Phase() != "booking_acknowledged" {
		t.Fatalf("unexpected phase %q", got.Phase())
	}
}

func TestLoadWithoutCookieStartsBrowsing(t *testing.T) {
	m, _ := NewManager("", time.Hour)
	st := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	if st.BookingSuccess || st.ID == "" {
		t.Fatalf("fresh session should be browsing with an id, got %+v", st)
	}
	if st.Phase() != "browsing" {
		t.Fatalf("unexpected phase %q", st.Phase())
	}
}

func TestTamperedOrForeignTokenIsIgnored(t *testing.T) {
	a, _ := NewManager("secret-a", time.Hour)
	b, _ := NewManager("secret-b", time.Hour)

	token, err := a.Encode(models.SessionState{ID: "x", BookingSuccess: true})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if _, err := b.Decode(token); err == nil {
		t.Fatalf("token signed with another key must not verify")
	}
	if _, err := a.Decode(token + "x"); err == nil {
		t.Fatalf("modified token must not verify")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	if st := b.Load(req); st.BookingSuccess {
		t.Fatalf("foreign cookie should start a fresh session")
	}
}

func TestExpiredTokenIsIgnored(t *testing.T) {
	m, _ := NewManager("secret", time.Minute)
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }

	token, err := m.Encode(models.SessionState{ID: "x", BookingSuccess: true})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	m.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, err := m.Decode(token); err == nil {
		t.Fatalf("expired token must not verify")
	}
}
