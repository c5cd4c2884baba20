package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, validToken string, shared *map[string]interface{}) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v2/accessToken", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.Form.Get("grant_type") != "authorization_code" || r.Form.Get("client_secret") != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_request"}`))
			return
		}
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"` + validToken + `","expires_in":5184000}`))
	})
	mux.HandleFunc("/v2/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc123","localizedFirstName":"Ana","localizedLastName":"Lopez"}`))
	})
	mux.HandleFunc("/v2/ugcPosts", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Restli-Protocol-Version") != "2.0.0" {
			t.Errorf("missing restli header")
		}
		body, _ := io.ReadAll(r.Body)
		if shared != nil {
			_ = json.Unmarshal(body, shared)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"urn:li:share:42"}`))
	})
	return httptest.NewServer(mux)
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		ClientID:     " cid ",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:5000/api/auth/linkedin/callback",
		AuthURL:      server.URL + "/oauth/v2/authorization",
		TokenURL:     server.URL + "/oauth/v2/accessToken",
		APIBaseURL:   server.URL + "/v2/",
	}, server.Client())
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	return client
}

func TestValidateConfig(t *testing.T) {
	cfg := Config{ClientID: "cid", ClientSecret: "secret", RedirectURL: "https://example.com/cb"}
	cfg.normalize()
	if err := ValidateConfig(&cfg); err != nil {
		t.Fatalf("ValidateConfig should pass, got: %v", err)
	}
	if len(cfg.Scopes) != 3 || cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("defaults not applied: %+v", cfg)
	}

	missing := Config{ClientID: "cid"}
	missing.normalize()
	if err := ValidateConfig(&missing); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestAuthCodeURL(t *testing.T) {
	server := newTestServer(t, "tok", nil)
	defer server.Close()
	client := newTestClient(t, server)

	raw := client.AuthCodeURL("state-1")
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	q := parsed.Query()
	if q.Get("response_type") != "code" || q.Get("client_id") != "cid" || q.Get("state") != "state-1" {
		t.Fatalf("unexpected query: %s", parsed.RawQuery)
	}
	if q.Get("scope") != "r_liteprofile r_emailaddress w_member_social" {
		t.Fatalf("unexpected scope: %q", q.Get("scope"))
	}
	if q.Get("redirect_uri") != "http://localhost:5000/api/auth/linkedin/callback" {
		t.Fatalf("unexpected redirect uri: %q", q.Get("redirect_uri"))
	}
}

func TestExchange(t *testing.T) {
	server := newTestServer(t, "tok", nil)
	defer server.Close()
	client := newTestClient(t, server)

	token, err := client.Exchange(context.Background(), "good-code")
	if err != nil || token != "tok" {
		t.Fatalf("exchange failed: %q %v", token, err)
	}
	if _, err := client.Exchange(context.Background(), "bad-code"); !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
}

func TestProfileUnauthorized(t *testing.T) {
	server := newTestServer(t, "tok", nil)
	defer server.Close()
	client := newTestClient(t, server)

	profile, err := client.Profile(context.Background(), "tok")
	if err != nil || profile.ID != "abc123" || profile.FirstName != "Ana" {
		t.Fatalf("profile failed: %+v %v", profile, err)
	}
	if _, err := client.Profile(context.Background(), "expired"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestShareBuildsUGCPayload(t *testing.T) {
	var captured map[string]interface{}
	server := newTestServer(t, "tok", &captured)
	defer server.Close()
	client := newTestClient(t, server)

	result, err := client.Share(context.Background(), "tok", ShareInput{
		Text:     "Nouvel article",
		Title:    "L'IA au service de la transformation",
		URL:      "https://example.com/blog/ia",
		ImageURL: "https://example.com/ia.jpg",
	})
	if err != nil {
		t.Fatalf("share failed: %v", err)
	}
	if result["id"] != "urn:li:share:42" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if captured["author"] != "urn:li:person:abc123" {
		t.Fatalf("unexpected author: %v", captured["author"])
	}
	if got := readString(captured, "specificContent", "com.linkedin.ugc.ShareContent", "media", "0", "thumbnail"); got != "https://example.com/ia.jpg" {
		t.Fatalf("unexpected thumbnail: %q", got)
	}
	if got := readString(captured, "specificContent", "com.linkedin.ugc.ShareContent", "shareCommentary", "text"); got != "Nouvel article" {
		t.Fatalf("unexpected commentary: %q", got)
	}

	if _, err := client.Share(context.Background(), "tok", ShareInput{Text: "x"}); !errors.Is(err, ErrInputInvalid) {
		t.Fatalf("expected ErrInputInvalid, got %v", err)
	}
}

func TestBuildSharePayloadOmitsEmptyThumbnail(t *testing.T) {
	payload := buildSharePayload("id", ShareInput{Text: "t", Title: "T", URL: "https://x"})
	raw, _ := json.Marshal(payload)
	if strings.Contains(string(raw), "thumbnail") {
		t.Fatalf("thumbnail should be omitted: %s", raw)
	}
}
