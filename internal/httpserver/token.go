package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errNoToken = errors.New("no round token")

// signToken creates an HS256 JWT naming the session and its expiry.
func (s *Server) signToken(sessionID string) (string, time.Time, error) {
	now := s.opts.Now()
	exp := now.Add(s.opts.TokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.opts.JWTSecret))
	return ss, exp, err
}

// sessionID extracts and verifies the round token on r.
func (s *Server) sessionID(r *http.Request) (string, error) {
	tok := bearerOrCookie(r, s.opts.CookieName)
	if tok == "" {
		return "", errNoToken
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.opts.Now))
	if err != nil {
		return "", err
	}
	if !t.Valid {
		return "", errors.New("invalid round token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("round token has no session")
	}
	return sid, nil
}

// setRoundCookie writes the round token cookie with appropriate security attributes.
func (s *Server) setRoundCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.Secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the named cookie.
func bearerOrCookie(r *http.Request, cookie string) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookie); err == nil {
		return c.Value
	}
	return ""
}
