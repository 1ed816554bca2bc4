// Package session keeps the per-visitor page state in a signed cookie so the
// server holds nothing between requests.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"busfinder/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const (
	CookieName = "busfinder_session"
	issuer     = "busfinder"
)

type claims struct {
	BookingSuccess bool `json:"booking_success"`
	jwt.RegisteredClaims
}

// Manager reads and writes SessionState cookies.
type Manager struct {
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewManager derives the signing key from secret. An empty secret gets a
// random one, which means sessions do not survive a restart.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	ikm := []byte(secret)
	if len(ikm) == 0 {
		ikm = make([]byte, 32)
		if _, err := rand.Read(ikm); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, []byte(issuer), []byte("session-cookie")), key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{key: key, ttl: ttl, now: time.Now}, nil
}

// SetSecure marks cookies Secure (HTTPS-only).
func (m *Manager) SetSecure(secure bool) { m.secure = secure }

// Load returns the state carried by r. A missing, expired or tampered cookie
// starts a fresh session.
func (m *Manager) Load(r *http.Request) models.SessionState {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return m.fresh()
	}
	st, err := m.Decode(c.Value)
	if err != nil {
		return m.fresh()
	}
	return st
}

// Save writes st back to the client.
func (m *Manager) Save(w http.ResponseWriter, st models.SessionState) error {
	token, err := m.Encode(st)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Encode signs st as an HS256 token.
func (m *Manager) Encode(st models.SessionState) (string, error) {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	now := m.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		BookingSuccess: st.BookingSuccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        st.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	return tok.SignedString(m.key)
}

// Decode verifies token and returns the state it carries.
func (m *Manager) Decode(token string) (models.SessionState, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return models.SessionState{}, err
	}
	if !parsed.Valid || c.ID == "" {
		return models.SessionState{}, errors.New("session token invalid")
	}
	return models.SessionState{ID: c.ID, BookingSuccess: c.BookingSuccess}, nil
}

func (m *Manager) fresh() models.SessionState {
	return models.SessionState{ID: uuid.NewString()}
}
