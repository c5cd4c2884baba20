package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/David-iadg/consult-ia/internal/config"
)

func newTestManager(secret string) *Manager {
	return NewManager(config.SessionConfig{Secret: secret, Name: "test_session", MaxAgeSeconds: 86400})
}

// roundTrip 用上一响应的 Cookie 构造新请求
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestLoginIdentityRoundTrip(t *testing.T) {
	m := newTestManager("secret-one")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.Login(rec, req, Identity{UserID: 7, Username: "admin"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "test_session" || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}
	if cookies[0].MaxAge != 86400 {
		t.Fatalf("expected 24h max age, got %d", cookies[0].MaxAge)
	}

	identity := m.Identity(roundTrip(rec))
	if !identity.Authenticated() || identity.UserID != 7 || identity.Username != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestFreshRequestIsAnonymous(t *testing.T) {
	m := newTestManager("secret-one")
	identity := m.Identity(httptest.NewRequest(http.MethodGet, "/", nil))
	if identity.Authenticated() {
		t.Fatalf("fresh request should be anonymous, got %+v", identity)
	}
}

func TestForeignCookieIsIgnored(t *testing.T) {
	issuer := newTestManager("secret-one")
	rec := httptest.NewRecorder()
	if err := issuer.Login(rec, httptest.NewRequest(http.MethodPost, "/", nil), Identity{UserID: 1, Username: "admin"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	other := newTestManager("secret-two")
	if identity := other.Identity(roundTrip(rec)); identity.Authenticated() {
		t.Fatalf("cookie signed with another secret must not authenticate")
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	m := newTestManager("secret-one")
	rec := httptest.NewRecorder()
	if err := m.Login(rec, httptest.NewRequest(http.MethodPost, "/", nil), Identity{UserID: 1, Username: "admin"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	out := httptest.NewRecorder()
	if err := m.Logout(out, roundTrip(rec)); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	cookies := out.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %+v", cookies)
	}
}

func TestLinkedInStatePersists(t *testing.T) {
	m := newTestManager("secret-one")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.Login(rec, req, Identity{UserID: 1, Username: "admin"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	rec2 := httptest.NewRecorder()
	req2 := roundTrip(rec)
	if err := m.SetLinkedInState(rec2, req2, "abc"); err != nil {
		t.Fatalf("set state failed: %v", err)
	}

	next := roundTrip(rec2)
	if got := m.LinkedInState(next); got != "abc" {
		t.Fatalf("unexpected state: %q", got)
	}
	if identity := m.Identity(next); identity.UserID != 1 {
		t.Fatalf("identity lost after state update: %+v", identity)
	}
}

func TestParseSameSite(t *testing.T) {
	cases := map[string]http.SameSite{
		"":       http.SameSiteLaxMode,
		"Strict": http.SameSiteStrictMode,
		"none":   http.SameSiteNoneMode,
		"weird":  http.SameSiteDefaultMode,
	}
	for raw, want := range cases {
		if got := parseSameSite(raw); got != want {
			t.Fatalf("parseSameSite(%q) = %v, want %v", raw, got, want)
		}
	}
}
