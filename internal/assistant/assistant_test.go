// ABOUTME: Tests for the AI dietitian client.
// ABOUTME: Uses a local HTTP server standing in for the Gemini API.
package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jamiekretzschmar/gastrocare/internal/models"
)

func geminiStub(t *testing.T, answer string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("missing API key header")
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.SystemInstruction == nil || len(req.SystemInstruction.Parts) == 0 {
			t.Error("missing system instruction")
		}

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": answer}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestAskReturnsAnswer(t *testing.T) {
	srv := geminiStub(t, "Saltines are fine if chewed well.")
	defer srv.Close()

	d := NewDietitian("test-key", WithBaseURL(srv.URL))
	got := d.Ask(context.Background(), "Can I eat saltines?", nil)
	if got != "Saltines are fine if chewed well." {
		t.Errorf("unexpected answer: %q", got)
	}
}

func TestAskWithoutAPIKey(t *testing.T) {
	d := NewDietitian("")
	got := d.Ask(context.Background(), "anything", nil)
	if !strings.Contains(got, "GEMINI_API_KEY") {
		t.Errorf("expected setup instructions, got %q", got)
	}
}

func TestAskEmptyCompletion(t *testing.T) {
	srv := geminiStub(t, "")
	defer srv.Close()

	d := NewDietitian("test-key", WithBaseURL(srv.URL))
	got := d.Ask(context.Background(), "hello", nil)
	if got != msgNoReply {
		t.Errorf("expected %q, got %q", msgNoReply, got)
	}
}

func TestAskServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := NewDietitian("test-key", WithBaseURL(srv.URL))
	got := d.Ask(context.Background(), "hello", nil)
	if got != msgAPIError {
		t.Errorf("expected %q, got %q", msgAPIError, got)
	}
}

func TestAskConnectionRefused(t *testing.T) {
	d := NewDietitian("test-key", WithBaseURL("http://127.0.0.1:1"))
	got := d.Ask(context.Background(), "hello", nil)
	if got != msgAPIError {
		t.Errorf("expected %q, got %q", msgAPIError, got)
	}
}

func TestBuildContextCapsAtSevenEntries(t *testing.T) {
	var logs []*models.LogEntry
	for i := 0; i < 10; i++ {
		logs = append(logs, models.NewLogEntry("meal"))
	}

	ctx := BuildContext(logs)
	if got := strings.Count(ctx, "Meal:"); got != 7 {
		t.Errorf("expected 7 context lines, got %d", got)
	}
}

func TestBuildContextEmptyHistory(t *testing.T) {
	ctx := BuildContext(nil)
	if !strings.Contains(ctx, "No recent logs available.") {
		t.Errorf("missing empty-history marker: %q", ctx)
	}
}

func TestBuildContextEntryLine(t *testing.T) {
	bs := 9.2
	entry := models.NewLogEntry("Blended Soup").
		WithTexture(models.TexturePureed).
		WithSymptoms("Nausea", "Bloating").
		WithSeverity(6).
		WithActivity(models.ActivityWalked).
		WithBloodSugar(nil, &bs)

	ctx := BuildContext([]*models.LogEntry{entry})
	for _, want := range []string{
		"Blended Soup (Pureed)",
		"Nausea, Bloating",
		"Severity: 6/10",
		"BS: 9.2",
		"Activity: Walked",
	} {
		if !strings.Contains(ctx, want) {
			t.Errorf("context missing %q:\n%s", want, ctx)
		}
	}
}

func TestBuildContextMissingOptionalFields(t *testing.T) {
	entry := models.NewLogEntry("Broth")

	ctx := BuildContext([]*models.LogEntry{entry})
	if !strings.Contains(ctx, "Unspecified Texture") {
		t.Error("missing texture fallback")
	}
	if !strings.Contains(ctx, "Symptoms: None") {
		t.Error("missing symptom fallback")
	}
	if !strings.Contains(ctx, "BS: Not recorded") {
		t.Error("missing blood sugar fallback")
	}
}
