// ABOUTME: MCP tool implementations for the tracker.
// ABOUTME: Meal and hydration logging, summaries, trends, and the dietitian.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/jamiekretzschmar/gastrocare/internal/assistant"
	"github.com/jamiekretzschmar/gastrocare/internal/models"
	"github.com/jamiekretzschmar/gastrocare/internal/rollup"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Record a meal with symptoms, texture, and optional nutrition",
	}, s.handleLogMeal)

	// log_hydration
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_hydration",
		Description: "Record fluid intake in milliliters (negative undoes a prior entry)",
	}, s.handleLogHydration)

	// list_logs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_logs",
		Description: "List recent meal/symptom log entries, newest first",
	}, s.handleListLogs)

	// delete_log
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_log",
		Description: "Delete a log entry by ID or ID prefix",
	}, s.handleDeleteLog)

	// daily_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_summary",
		Description: "Today's nutrient totals, macro split, and hydration progress",
	}, s.handleDailySummary)

	// activity_trends
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "activity_trends",
		Description: "Average symptom severity grouped by post-meal activity",
	}, s.handleActivityTrends)

	// ask_dietitian
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "ask_dietitian",
		Description: "Ask the AI dietitian a question with recent log history as context",
	}, s.handleAskDietitian)
}

// Tool input/output types

type logMealInput struct {
	Food            string   `json:"food" jsonschema:"What was eaten"`
	Texture         string   `json:"texture,omitempty" jsonschema:"Food texture (Liquid, Pureed, Soft Solid, Solid)"`
	Portion         string   `json:"portion,omitempty" jsonschema:"Portion size, free text"`
	Symptoms        []string `json:"symptoms,omitempty" jsonschema:"Symptom tags (Nausea, Vomiting, Bloating, ...)"`
	Severity        int      `json:"severity,omitempty" jsonschema:"Symptom severity 1-10 (default 1)"`
	Activity        string   `json:"activity,omitempty" jsonschema:"Post-meal activity (Sat Upright, Walked, Lay Down)"`
	BloodSugarAfter float64  `json:"blood_sugar_after,omitempty" jsonschema:"Blood sugar reading after the meal"`
	Calories        float64  `json:"calories,omitempty" jsonschema:"Calories (kcal)"`
	Protein         float64  `json:"protein,omitempty" jsonschema:"Protein in grams"`
	Carbs           float64  `json:"carbs,omitempty" jsonschema:"Carbs in grams"`
	Fat             float64  `json:"fat,omitempty" jsonschema:"Fat in grams"`
	RecordedAt      string   `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes           string   `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logOutput struct {
	ID      string `json:"id"`
	Food    string `json:"food"`
	Message string `json:"message"`
}

type logHydrationInput struct {
	AmountML float64 `json:"amount_ml" jsonschema:"Fluid volume in milliliters; negative undoes intake"`
}

type hydrationOutput struct {
	TotalML    float64 `json:"total_ml"`
	GoalML     int     `json:"goal_ml"`
	ProgressPC float64 `json:"progress_percent"`
	Message    string  `json:"message"`
}

type listLogsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteLogInput struct {
	ID string `json:"id" jsonschema:"Log entry ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type askDietitianInput struct {
	Question string `json:"question" jsonschema:"Question for the AI dietitian"`
}

// Tool handlers

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, logOutput, error) {
	if input.Food == "" {
		return nil, logOutput{}, fmt.Errorf("food is required")
	}
	if input.Texture != "" && !models.IsValidTexture(input.Texture) {
		return nil, logOutput{}, fmt.Errorf("unknown texture: %s", input.Texture)
	}

	e := models.NewLogEntry(input.Food).
		WithTexture(models.Texture(input.Texture)).
		WithPortion(input.Portion).
		WithSymptoms(input.Symptoms...).
		WithNotes(input.Notes)

	if input.Severity > 0 {
		e.WithSeverity(input.Severity)
	}
	if input.Activity != "" {
		e.WithActivity(models.Activity(input.Activity))
	}
	if input.BloodSugarAfter > 0 {
		e.WithBloodSugar(nil, &input.BloodSugarAfter)
	}
	if input.Calories > 0 || input.Protein > 0 || input.Carbs > 0 || input.Fat > 0 {
		e.WithNutrition(models.Nutrition{
			Calories: input.Calories,
			Protein:  input.Protein,
			Carbs:    input.Carbs,
			Fat:      input.Fat,
		})
	}
	if input.RecordedAt != "" {
		if t, ok := models.ParseRecordedAt(input.RecordedAt); ok {
			e.WithRecordedAt(t)
		}
	}

	if !s.store.AppendLog(e) {
		return nil, logOutput{}, fmt.Errorf("failed to save log entry")
	}

	return nil, logOutput{
		ID:      e.ID.String()[:8],
		Food:    e.Food,
		Message: fmt.Sprintf("Logged %s (ID: %s)", e.Food, e.ID.String()[:8]),
	}, nil
}

func (s *Server) handleLogHydration(ctx context.Context, req *mcp.CallToolRequest, input logHydrationInput) (*mcp.CallToolResult, hydrationOutput, error) {
	if input.AmountML == 0 {
		return nil, hydrationOutput{}, fmt.Errorf("amount_ml must be non-zero")
	}

	if !s.store.AppendHydration(models.NewHydrationEntry(input.AmountML)) {
		return nil, hydrationOutput{}, fmt.Errorf("failed to save hydration entry")
	}

	settings := s.store.HydrationSettings()
	total := rollup.HydrationTotal(s.store.Hydration(), time.Now())
	progress := rollup.Progress(total, settings.Goal())

	return nil, hydrationOutput{
		TotalML:    total,
		GoalML:     settings.Goal(),
		ProgressPC: progress,
		Message:    fmt.Sprintf("Logged %.0f ml. Today: %.0f / %d ml (%.0f%%)", input.AmountML, total, settings.Goal(), progress),
	}, nil
}

func (s *Server) handleListLogs(ctx context.Context, req *mcp.CallToolRequest, input listLogsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	logs := s.store.Logs()
	if len(logs) > input.Limit {
		logs = logs[:input.Limit]
	}

	if len(logs) == 0 {
		return nil, map[string]interface{}{"message": "No log entries found."}, nil
	}

	return nil, logs, nil
}

func (s *Server) handleDeleteLog(ctx context.Context, req *mcp.CallToolRequest, input deleteLogInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := s.store.DeleteLog(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete log: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted log entry: %s (%s)", deleted.ID.String()[:8], deleted.Food),
	}, nil
}

func (s *Server) handleDailySummary(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	now := time.Now()
	logs := s.store.Logs()
	settings := s.store.HydrationSettings()

	totals := rollup.DailyTotals(logs, now)
	hydrationTotal := rollup.HydrationTotal(s.store.Hydration(), now)

	return nil, map[string]interface{}{
		"date":   now.Format("2006-01-02"),
		"totals": totals,
		"macro_split": rollup.MacroSplit(totals),
		"hydration": map[string]interface{}{
			"total_ml":         hydrationTotal,
			"goal_ml":          settings.Goal(),
			"progress_percent": rollup.Progress(hydrationTotal, settings.Goal()),
		},
	}, nil
}

func (s *Server) handleActivityTrends(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, rollup.ActivityAverages(s.store.Logs()), nil
}

func (s *Server) handleAskDietitian(ctx context.Context, req *mcp.CallToolRequest, input askDietitianInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Question == "" {
		return nil, simpleOutput{}, fmt.Errorf("question is required")
	}

	d := s.dietitian
	if d == nil {
		d = assistant.NewDietitian("")
	}

	return nil, simpleOutput{
		Message: d.Ask(ctx, input.Question, s.store.Logs()),
	}, nil
}
