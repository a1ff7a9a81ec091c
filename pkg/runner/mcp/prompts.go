package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type prompts struct {
	svc *Service
}

func registerPrompts(srv *server.MCPServer, svc *Service) {
	p := &prompts{svc: svc}
	srv.AddPrompt(mcp.Prompt{
		Name:        "reflect",
		Description: "Look back over recent journal entries and mood patterns",
		Arguments: []mcp.PromptArgument{
			{
				Name:        "since",
				Description: "Earliest date to consider, YYYY-MM-DD (default: all entries)",
				Required:    false,
			},
		},
	}, p.handleReflect)
}

func (p *prompts) handleReflect(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	since := ""
	if req.Params.Arguments != nil {
		since = strings.TrimSpace(req.Params.Arguments["since"])
	}

	stats, err := p.svc.Stats(ctx)
	if err != nil {
		return nil, err
	}

	scope := "all entries"
	if since != "" {
		scope = "entries since " + since
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Mood reflection\n\nReview %s in my mood journal.\n\n", scope)
	fmt.Fprintf(&b, "The journal holds %d entries", stats.Total)
	if stats.Top != "" {
		fmt.Fprintf(&b, "; the most frequent mood is %s", stats.Top)
	}
	b.WriteString(".\n\n")
	b.WriteString("1. Read the entries with the list_entries tool")
	if since != "" {
		fmt.Fprintf(&b, " (since=%s, order=asc)", since)
	}
	b.WriteString("\n2. Read mindtrackr://stats for counts and percentages\n")
	b.WriteString("3. Point out recurring themes in the text for each mood\n")
	b.WriteString("4. Note how moods shifted over time\n")
	b.WriteString("5. Suggest one small thing to try next week\n")

	return &mcp.GetPromptResult{
		Description: "Reflection over " + scope,
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: b.String(),
				},
			},
		},
	}, nil
}
