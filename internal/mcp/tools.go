package mcp

import (
	"context"
	"fmt"
	"time"

	"lazarus_guide/internal/usecase"
)

const toolDateLayout = "2006-01-02"

// ToolHandler dispatches MCP tool calls to the analytics use case.
type ToolHandler struct {
	analytics usecase.IAnalyticsUseCase
}

func NewToolHandler(analytics usecase.IAnalyticsUseCase) *ToolHandler {
	return &ToolHandler{analytics: analytics}
}

// Handle dispatches a tool call to the appropriate handler
func (h *ToolHandler) Handle(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	switch name {
	case "get_daily_guides_summary":
		return h.handleDailySummary(ctx, args)
	case "get_guides_by_status":
		return h.handleGuidesByStatus(ctx, args)
	case "get_guides_statistics":
		return h.handleStatistics(ctx, args)
	case "get_guides_revenue":
		return h.handleRevenue(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

func argDate(args map[string]interface{}) (time.Time, error) {
	raw, _ := args["date"].(string)
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation(toolDateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}

func argPeriod(args map[string]interface{}) string {
	period, _ := args["period"].(string)
	if period == "" {
		return "day"
	}
	return period
}

func (h *ToolHandler) handleDailySummary(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	date, err := argDate(args)
	if err != nil {
		return nil, err
	}
	hospitalID, _ := args["hospitalId"].(string)

	summary, err := h.analytics.GetDailySummary(ctx, date, hospitalID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"date":    date.Format(toolDateLayout),
		"summary": summary,
	}, nil
}

func (h *ToolHandler) handleGuidesByStatus(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	status, _ := args["status"].(string)
	if status == "" {
		return nil, fmt.Errorf("status is required")
	}
	date, err := argDate(args)
	if err != nil {
		return nil, err
	}
	hospitalID, _ := args["hospitalId"].(string)

	limit := 0
	if l, ok := args["limit"].(float64); ok {
		limit = int(l)
	}

	guides, err := h.analytics.GetGuidesByStatus(ctx, status, date, limit, hospitalID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"date":   date.Format(toolDateLayout),
		"status": status,
		"count":  len(guides),
		"guides": guides,
	}, nil
}

func (h *ToolHandler) handleStatistics(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	date, err := argDate(args)
	if err != nil {
		return nil, err
	}
	period := argPeriod(args)
	hospitalID, _ := args["hospitalId"].(string)

	stats, err := h.analytics.GetStatistics(ctx, period, date, hospitalID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"date":       date.Format(toolDateLayout),
		"period":     period,
		"statistics": stats,
	}, nil
}

func (h *ToolHandler) handleRevenue(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	date, err := argDate(args)
	if err != nil {
		return nil, err
	}
	period := argPeriod(args)
	hospitalID, _ := args["hospitalId"].(string)

	revenue, err := h.analytics.GetRevenue(ctx, period, date, hospitalID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"date":    date.Format(toolDateLayout),
		"period":  period,
		"revenue": revenue,
	}, nil
}

// getToolDefinitions returns the MCP tool definitions
func getToolDefinitions() []Tool {
	dateProp := map[string]interface{}{
		"type":        "string",
		"description": "Reference day in YYYY-MM-DD format (default: today)",
	}
	periodProp := map[string]interface{}{
		"type":        "string",
		"description": "Aggregation period: day, week, month or year (default: day)",
	}
	hospitalProp := map[string]interface{}{
		"type":        "string",
		"description": "Hospital tenant identifier (default: configured hospital)",
	}

	return []Tool{
		{
			Name:        "get_daily_guides_summary",
			Description: "Per-state guide counts and value totals for one day",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"date":       dateProp,
					"hospitalId": hospitalProp,
				},
			},
		},
		{
			Name:        "get_guides_by_status",
			Description: "List guides in a lifecycle state (FINALIZADA, EM_ANDAMENTO, CANCELADA) on a given day",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"status": map[string]interface{}{
						"type":        "string",
						"description": "Guide state: FINALIZADA, EM_ANDAMENTO or CANCELADA",
					},
					"date": dateProp,
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum results (default 100)",
					},
					"hospitalId": hospitalProp,
				},
				"required": []string{"status"},
			},
		},
		{
			Name:        "get_guides_statistics",
			Description: "Aggregate guide indicators over a backward-looking period window",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"period":     periodProp,
					"date":       dateProp,
					"hospitalId": hospitalProp,
				},
			},
		},
		{
			Name:        "get_guides_revenue",
			Description: "Billed revenue totals and per-billing-type breakdown over a period",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"period":     periodProp,
					"date":       dateProp,
					"hospitalId": hospitalProp,
				},
			},
		},
	}
}
