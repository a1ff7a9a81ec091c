package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/mindtrackr/pkg/mood"
)

type tools struct {
	svc *Service
}

func registerTools(srv *server.MCPServer, svc *Service) {
	t := &tools{svc: svc}
	moods := mood.Names()

	srv.AddTool(mcp.NewTool(
		"add_entry",
		mcp.WithDescription("Record a journal entry with a mood."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Entry text, 3 to 2000 characters after trimming."),
		),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood for the entry."),
			mcp.Enum(moods...),
		),
		mcp.WithString("date",
			mcp.Description("Optional calendar date YYYY-MM-DD; defaults to today."),
		),
	), t.handleAddEntry)

	srv.AddTool(mcp.NewTool(
		"remove_entry",
		mcp.WithDescription("Delete a journal entry by id. Unknown ids are ignored."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	), t.handleRemoveEntry)

	srv.AddTool(mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries, newest first by default."),
		mcp.WithString("mood",
			mcp.Description("Only entries with this mood."),
			mcp.Enum(moods...),
		),
		mcp.WithString("order",
			mcp.Description("Sort by date: desc (newest first) or asc."),
			mcp.Enum("desc", "asc"),
		),
		mcp.WithString("since",
			mcp.Description("Earliest date to include, YYYY-MM-DD."),
		),
		mcp.WithString("until",
			mcp.Description("Latest date to include, YYYY-MM-DD."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 50)."),
			mcp.Min(1),
			mcp.Max(500),
		),
	), t.handleListEntries)

	srv.AddTool(mcp.NewTool(
		"mood_counts",
		mcp.WithDescription("Count entries per mood. Moods with no entries are omitted."),
	), t.handleMoodCounts)

	srv.AddTool(mcp.NewTool(
		"mood_frequency",
		mcp.WithDescription("Percentage of entries with a mood, rounded to a whole number."),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood to measure."),
			mcp.Enum(moods...),
		),
	), t.handleMoodFrequency)
}

func (t *tools) handleAddEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Text string `json:"text"`
		Mood string `json:"mood"`
		Date string `json:"date"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	dto, err := t.svc.AddEntry(ctx, AddEntryOptions{Text: args.Text, Mood: args.Mood, Date: args.Date})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(dto)
}

func (t *tools) handleRemoveEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	removed, err := t.svc.RemoveEntry(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{
		"id":      id,
		"removed": removed,
	})
}

func (t *tools) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := ListOptions{
		Mood:  request.GetString("mood", ""),
		Order: request.GetString("order", "desc"),
		Since: request.GetString("since", ""),
		Until: request.GetString("until", ""),
		Limit: request.GetInt("limit", 50),
	}
	entries, err := t.svc.ListEntries(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{
		"count":   len(entries),
		"entries": entries,
	})
}

func (t *tools) handleMoodCounts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := t.svc.MoodCounts(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{
		"counts": counts,
	})
}

func (t *tools) handleMoodFrequency(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("mood")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, pct, err := t.svc.MoodFrequency(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{
		"mood":    m.String(),
		"percent": pct,
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
