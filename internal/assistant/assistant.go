// ABOUTME: AI dietitian backed by the Gemini generateContent API.
// ABOUTME: Builds patient context from recent logs and maps failures to friendly text.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jamiekretzschmar/gastrocare/internal/models"
)

// DefaultModel is the Gemini model used for dietitian answers.
const DefaultModel = "gemini-3-flash-preview"

// DefaultBaseURL is the Gemini API endpoint prefix.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Canned replies shown instead of raw errors. The assistant never fails
// hard; a chat surface should always say something.
const (
	msgNoAPIKey = "Please set GEMINI_API_KEY in your environment or .env file to use the AI Dietitian."
	msgNoReply  = "I couldn't generate a response at this time."
	msgAPIError = "Sorry, I'm having trouble connecting to the service right now. Please try again later."
)

// systemInstruction pins the dietitian persona and the patient's standing
// restrictions. The data context is appended per request.
const systemInstruction = `You are an expert Gastroenterology Dietitian specializing in Gastroparesis.

Your patient context:
- Diagnosis: Gastroparesis.
- Status: Immunosuppressed (Transplant patient).
- Risk: High risk of infection from raw foods.
- Risk: High risk of bezoars from fiber.
- Protocol: "Small Particle" diet (low fat, low fiber, soft texture).

CRITICAL RULES:
1. NO raw vegetables or unpeeled fruits.
2. NO high fiber (nuts, seeds, corn, skins).
3. NO frying/grease.
4. Suggest small, frequent meals.

When answering:
- Be empathetic but firm on safety rules.
- If they ask about a specific food, analyze it against the Gastroparesis AND Immunosuppression rules.
- Keep answers concise and practical.

Current User Data Context: %s`

// Dietitian answers food and symptom questions with log history as context.
type Dietitian struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Option adjusts a Dietitian.
type Option func(*Dietitian)

// WithBaseURL points the client at a different API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(d *Dietitian) { d.baseURL = strings.TrimSuffix(url, "/") }
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(d *Dietitian) {
		if model != "" {
			d.model = model
		}
	}
}

// NewDietitian builds a dietitian client. An empty API key is allowed;
// Ask will answer with setup instructions instead of calling the API.
func NewDietitian(apiKey string, opts ...Option) *Dietitian {
	d := &Dietitian{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// generateRequest is the Gemini generateContent request body.
type generateRequest struct {
	SystemInstruction *contentBlock  `json:"system_instruction,omitempty"`
	Contents          []contentBlock `json:"contents"`
}

type contentBlock struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Ask sends the question with recent-log context and returns the answer.
// Missing credentials, transport failures, and empty completions all map
// to canned replies rather than errors.
func (d *Dietitian) Ask(ctx context.Context, question string, logs []*models.LogEntry) string {
	if d.apiKey == "" {
		return msgNoAPIKey
	}

	reqBody := generateRequest{
		SystemInstruction: &contentBlock{
			Parts: []part{{Text: fmt.Sprintf(systemInstruction, BuildContext(logs))}},
		},
		Contents: []contentBlock{
			{Role: "user", Parts: []part{{Text: question}}},
		},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return msgAPIError
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", d.baseURL, d.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return msgAPIError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return msgAPIError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return msgAPIError
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return msgAPIError
	}

	answer := result.Text()
	if answer == "" {
		return msgNoReply
	}
	return answer
}

// Text joins all parts of the first candidate.
func (r generateResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

// contextEntries caps how much log history goes into the prompt.
const contextEntries = 7

// BuildContext renders the most recent log entries as prompt context.
// Logs are stored newest first, so the head of the slice is used.
func BuildContext(logs []*models.LogEntry) string {
	if len(logs) > contextEntries {
		logs = logs[:contextEntries]
	}

	lines := make([]string, 0, len(logs))
	for _, l := range logs {
		texture := string(l.Texture)
		if texture == "" {
			texture = "Unspecified Texture"
		}
		symptoms := "None"
		if len(l.Symptoms) > 0 {
			symptoms = strings.Join(l.Symptoms, ", ")
		}
		bs := "BS: Not recorded"
		if l.BloodSugarAfter != nil {
			bs = fmt.Sprintf("BS: %g", *l.BloodSugarAfter)
		}
		lines = append(lines, fmt.Sprintf("[%s] Meal: %s (%s) | Symptoms: %s (Severity: %d/10) | %s | Activity: %s",
			l.DisplayTimestamp(), l.Food, texture, symptoms, l.Severity, bs, l.Activity))
	}

	history := "No recent logs available."
	if len(lines) > 0 {
		history = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`Current Patient Context from Log History (Last %d entries):
%s

Note: High severity (>6) or frequent vomiting indicates potential flare-up.
High blood sugar suggests delayed emptying risk.`, contextEntries, history)
}
