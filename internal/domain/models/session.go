package models

// SessionState is everything the page remembers about one visitor.
// BookingSuccess starts false and, once set, stays set.
type SessionState struct {
	ID             string `json:"id"`
	BookingSuccess bool   `json:"booking_success"`
}

// Acknowledge records a book action.
func (s SessionState) Acknowledge() SessionState {
	s.BookingSuccess = true
	return s
}

// Phase names the page state the session is in.
func (s SessionState) Phase() string {
	if s.BookingSuccess {
		return "booking_acknowledged"
	}
	return "browsing"
}
