package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/report"
	"github.com/Sumatoshi-tech/activityviz/pkg/snapshot"
	"github.com/Sumatoshi-tech/activityviz/pkg/terminal"
)

// Tool name constants.
const (
	ToolNameVisualize = "activity_visualize"
	ToolNameSummary   = "activity_summary"
	ToolNameCalendar  = "activity_calendar"
)

// calendarWidth is the text width of activity_calendar reports.
const calendarWidth = 120

// ActivityInput is the input schema shared by the activity tools.
type ActivityInput struct {
	Name              string `json:"name,omitempty"        jsonschema:"optional repository or author name shown in reports"`
	Year              int    `json:"year"                  jsonschema:"calendar year the counts belong to"`
	CommitsPerDay     []int  `json:"commits_per_day"       jsonschema:"one count per day of the year starting January 1 (365 or 366 values)"`
	CommitsPerHour    []int  `json:"commits_per_hour"      jsonschema:"24 counts for hours 0 to 23"`
	CommitsPerWeekday []int  `json:"commits_per_weekday"   jsonschema:"7 counts starting with Monday"`
	CommitsPerMonth   []int  `json:"commits_per_month"     jsonschema:"12 counts starting with January"`
	Transform         string `json:"transform,omitempty"   jsonschema:"intensity compression: sqrt (default) or log"`
	HourLabels        string `json:"hour_labels,omitempty" jsonschema:"hour axis labels: numeric (default) or clock"`
}

func (in ActivityInput) snapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Name:              in.Name,
		Year:              in.Year,
		CommitsPerDay:     in.CommitsPerDay,
		CommitsPerHour:    in.CommitsPerHour,
		CommitsPerWeekday: in.CommitsPerWeekday,
		CommitsPerMonth:   in.CommitsPerMonth,
	}
}

// SummaryOutput is the activity_summary result.
type SummaryOutput struct {
	Name    string           `json:"name,omitempty"`
	Year    int              `json:"year"`
	Summary activity.Summary `json:"summary"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// Handlers implements the activity tools. It is stateless apart from its
// defaults and safe for concurrent use.
type Handlers struct {
	defaults activity.Options
	metrics  *observability.REDMetrics
}

// NewHandlers creates tool handlers. metrics may be nil.
func NewHandlers(defaults activity.Options, metrics *observability.REDMetrics) *Handlers {
	return &Handlers{defaults: defaults, metrics: metrics}
}

// Visualize handles activity_visualize calls.
func (h *Handlers) Visualize(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ActivityInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	vis, err := h.visualize(ctx, ToolNameVisualize, input)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(vis)
}

// Summary handles activity_summary calls.
func (h *Handlers) Summary(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ActivityInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	vis, err := h.visualize(ctx, ToolNameSummary, input)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(SummaryOutput{Name: input.Name, Year: vis.Year, Summary: vis.Summary})
}

// Calendar handles activity_calendar calls.
func (h *Handlers) Calendar(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ActivityInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	vis, err := h.visualize(ctx, ToolNameCalendar, input)
	if err != nil {
		return errorResult(err)
	}

	var buf bytes.Buffer

	err = report.WriteText(&buf, vis, report.TextOptions{
		Name:   input.Name,
		Config: terminal.Config{Width: calendarWidth, NoColor: true},
	})
	if err != nil {
		return errorResult(err)
	}

	return textResult(buf.String())
}

func (h *Handlers) visualize(ctx context.Context, tool string, input ActivityInput) (*activity.Visualization, error) {
	snap := input.snapshot()

	err := snapshot.Validate(snap)
	if err != nil {
		return nil, err
	}

	opts, err := h.options(input)
	if err != nil {
		return nil, err
	}

	vis, err := activity.New(opts).Visualize(snap.Input())
	if err != nil {
		return nil, fmt.Errorf("visualize: %w", err)
	}

	if h.metrics != nil {
		h.metrics.RecordDays(ctx, mcpSpanPrefix+tool, vis.Grid.DaysInYear)
	}

	return vis, nil
}

func (h *Handlers) options(input ActivityInput) (activity.Options, error) {
	opts := h.defaults

	if input.Transform != "" {
		t, err := activity.ParseTransform(input.Transform)
		if err != nil {
			return opts, err
		}

		opts.Transform = t
	}

	if input.HourLabels != "" {
		style, err := activity.ParseHourLabelStyle(input.HourLabels)
		if err != nil {
			return opts, err
		}

		opts.HourLabels = style
	}

	return opts, nil
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

func textResult(text string) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}, ToolOutput{Data: text}, nil
}
