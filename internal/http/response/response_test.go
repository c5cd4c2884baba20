package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorCarriesStatusAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(RequestIDKey, "req-1")

	NotFound(c, "Post not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d", w.Code)
	}
	if !c.IsAborted() {
		t.Fatalf("expected context to be aborted")
	}
	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if body.Message != "Post not found" || body.RequestID != "req-1" || body.Errors != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationError(c, "Invalid request", []FieldError{{Field: "title", Rule: "required"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := raw["request_id"]; ok {
		t.Fatalf("request_id should be omitted when unknown: %v", raw)
	}
	fields, ok := raw["errors"].([]interface{})
	if !ok || len(fields) != 1 {
		t.Fatalf("unexpected errors: %v", raw["errors"])
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	base := errors.New("db down")
	err := WrapError(http.StatusInternalServerError, "Failed", base)
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to unwrap")
	}
	if err.Error() != "Failed: db down" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRedirectPageKeepsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/callback", nil)

	RedirectPage(c, http.StatusForbidden, "/admin?linkedinError=true&x=<b>")

	if w.Code != http.StatusForbidden || !c.IsAborted() {
		t.Fatalf("status want 403 and aborted, got %d %v", w.Code, c.IsAborted())
	}
	if loc := w.Header().Get("Location"); loc != "/admin?linkedinError=true&x=<b>" {
		t.Fatalf("unexpected location %q", loc)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `content="0;url=/admin?linkedinError=true&amp;x=&lt;b&gt;"`) {
		t.Fatalf("refresh target not escaped: %s", body)
	}
}
