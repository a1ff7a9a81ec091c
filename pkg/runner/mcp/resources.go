package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	entriesURI   = "mindtrackr://entries"
	entryURI     = "mindtrackr://entries/{id}"
	statsURI     = "mindtrackr://stats"
	jsonMIMEType = "application/json"
)

type resources struct {
	svc *Service
}

func registerResources(srv *server.MCPServer, svc *Service) {
	r := &resources{svc: svc}

	srv.AddResource(mcp.NewResource(
		entriesURI,
		"Journal Entries",
		mcp.WithResourceDescription("Every journal entry, newest first."),
		mcp.WithMIMEType(jsonMIMEType),
	), r.handleEntries)

	srv.AddResourceTemplate(mcp.NewResourceTemplate(
		entryURI,
		"Entry Details",
		mcp.WithTemplateDescription("A single journal entry."),
		mcp.WithTemplateMIMEType(jsonMIMEType),
	), r.handleEntry)

	srv.AddResource(mcp.NewResource(
		statsURI,
		"Mood Statistics",
		mcp.WithResourceDescription("Entry totals, per-mood counts and percentages."),
		mcp.WithMIMEType(jsonMIMEType),
	), r.handleStats)
}

func (r *resources) handleEntries(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries, err := r.svc.ListEntries(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}
	return encodeResourceJSON(request.Params.URI, map[string]any{
		"count":   len(entries),
		"entries": entries,
	})
}

func (r *resources) handleEntry(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := templateArg(request.Params.Arguments["id"])
	if id == "" {
		return nil, fmt.Errorf("entry id is required")
	}
	dto, err := r.svc.EntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return encodeResourceJSON(request.Params.URI, map[string]any{
		"entry": dto,
	})
}

func (r *resources) handleStats(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stats, err := r.svc.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return encodeResourceJSON(request.Params.URI, stats)
}

// templateArg unwraps a URI template argument, which the server may pass
// as a string or a single-element slice.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	case []any:
		if len(t) > 0 {
			s, _ := t[0].(string)
			return s
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(data),
		},
	}, nil
}
