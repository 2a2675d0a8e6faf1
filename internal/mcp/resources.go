// ABOUTME: MCP resource implementations for the tracker.
// ABOUTME: Provides gastrocare://recent, gastrocare://today, and gastrocare://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jamiekretzschmar/gastrocare/internal/models"
	"github.com/jamiekretzschmar/gastrocare/internal/rollup"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// gastrocare://recent - last 10 log entries plus recent hydration
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gastrocare://recent",
		Name:        "Recent Log Entries",
		Description: "Last 10 meal/symptom entries and last 10 hydration entries",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// gastrocare://today - everything logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gastrocare://today",
		Name:        "Today's Data",
		Description: "All meals, symptoms, and hydration logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// gastrocare://summary - daily dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gastrocare://summary",
		Name:        "Daily Summary Dashboard",
		Description: "Nutrient totals, hydration progress, and activity trends",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) resourceResult(uri string, result interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	logs := s.store.Logs()
	if len(logs) > 10 {
		logs = logs[:10]
	}

	hydration := s.store.Hydration()
	if len(hydration) > 10 {
		hydration = hydration[:10]
	}

	return s.resourceResult("gastrocare://recent", map[string]interface{}{
		"logs":      logs,
		"hydration": hydration,
	})
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()

	var todayLogs []*models.LogEntry
	for _, e := range s.store.Logs() {
		if e.OnDay(now) {
			todayLogs = append(todayLogs, e)
		}
	}

	var todayHydration []*models.HydrationEntry
	for _, h := range s.store.Hydration() {
		if h.OnDay(now) {
			todayHydration = append(todayHydration, h)
		}
	}

	return s.resourceResult("gastrocare://today", map[string]interface{}{
		"date":      now.Format("2006-01-02"),
		"logs":      todayLogs,
		"hydration": todayHydration,
		"counts": map[string]int{
			"logs":      len(todayLogs),
			"hydration": len(todayHydration),
		},
	})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	logs := s.store.Logs()
	settings := s.store.HydrationSettings()

	totals := rollup.DailyTotals(logs, now)
	hydrationTotal := rollup.HydrationTotal(s.store.Hydration(), now)

	result := map[string]interface{}{
		"generated_at": now.Format(time.RFC3339),
		"nutrition": map[string]interface{}{
			"totals":      totals,
			"macro_split": rollup.MacroSplit(totals),
		},
		"hydration": map[string]interface{}{
			"total_ml":         hydrationTotal,
			"goal_ml":          settings.Goal(),
			"progress_percent": rollup.Progress(hydrationTotal, settings.Goal()),
		},
		"activity_trends": rollup.ActivityAverages(logs),
		"medications":     s.store.Medications(),
		"summary": map[string]int{
			"total_log_entries": len(logs),
		},
	}

	return s.resourceResult("gastrocare://summary", result)
}
