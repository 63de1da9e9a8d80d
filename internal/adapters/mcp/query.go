package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/application/commands"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// Deps bundles the adapters the tools run against. The index is loaded
// from the store on every call, so a rebuild is picked up immediately.
type Deps struct {
	Store    ports.IndexStore
	Scanner  ports.Scanner
	Resolver ports.PathResolver
}

// RegisterQueryTools adds all read-only index tools to the MCP server
func RegisterQueryTools(s *server.MCPServer, deps Deps) {
	s.AddTool(browseTool(), browseHandler(deps))
	s.AddTool(searchTool(), searchHandler(deps))
	s.AddTool(resolveTool(), resolveHandler(deps))
	s.AddTool(statsTool(), statsHandler(deps))
}

// --- browse ---

func browseTool() mcp.Tool {
	return mcp.NewTool("browse",
		mcp.WithDescription("Browse the Johnny Decimal index. An empty query lists areas; an area code (10-19) lists its categories; a category code (11) lists its IDs; an ID code (11.01) shows that entry; any other text searches by name."),
		mcp.WithString("query",
			mcp.Description("Code to navigate into, or free text to search. Omit to list all areas."),
		),
		mcp.WithString("level",
			mcp.Description("Restrict text search to one tier: area, category, or id."),
			mcp.Enum("area", "category", "id"),
		),
	)
}

func browseHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, errResult := loadIndex(deps)
		if errResult != nil {
			return errResult, nil
		}

		level, errResult := parseLevel(req.GetString("level", ""))
		if errResult != nil {
			return errResult, nil
		}

		cmd := commands.NewBrowseCommand(index, deps.Resolver, strings.TrimSpace(req.GetString("query", "")), level)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return formatEntries(result.Entries)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search the index by name. Every word of the query must appear in an entry's name; exact phrase hits rank first. Section dividers are excluded."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("level",
			mcp.Description("Restrict to one tier: area, category, or id."),
			mcp.Enum("area", "category", "id"),
		),
	)
}

func searchHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		index, errResult := loadIndex(deps)
		if errResult != nil {
			return errResult, nil
		}

		level, errResult := parseLevel(req.GetString("level", ""))
		if errResult != nil {
			return errResult, nil
		}

		cmd := commands.NewSearchCommand(index, deps.Resolver, query, level)
		entries, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return formatEntries(entries)
	}
}

// --- resolve ---

func resolveTool() mcp.Tool {
	return mcp.NewTool("resolve",
		mcp.WithDescription("Get the filesystem path for a code (area, category, or ID)."),
		mcp.WithString("code",
			mcp.Description("Code to resolve (e.g. 10-19, 11, 11.01)"),
			mcp.Required(),
		),
	)
}

func resolveHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code := req.GetString("code", "")
		if code == "" {
			return toolError(fmt.Errorf("code is required"))
		}

		index, errResult := loadIndex(deps)
		if errResult != nil {
			return errResult, nil
		}

		path, ok := deps.Resolver.Resolve(code, index)
		if !ok {
			return mcp.NewToolResultText(fmt.Sprintf("No folder found for %s.", code)), nil
		}
		return mcp.NewToolResultText(path), nil
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Count the areas, categories, and IDs in the index."),
	)
}

func statsHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, errResult := loadIndex(deps)
		if errResult != nil {
			return errResult, nil
		}

		areas, cats, ids := index.Count()
		return mcp.NewToolResultText(fmt.Sprintf("%d areas, %d categories, %d IDs", areas, cats, ids)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func loadIndex(deps Deps) (*domain.Index, *mcp.CallToolResult) {
	index, err := deps.Store.Load()
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("index unavailable: %v (run the rebuild tool)", err))
	}
	return index, nil
}

func parseLevel(level string) (domain.Tier, *mcp.CallToolResult) {
	switch level {
	case "":
		return domain.TierUnknown, nil
	case "area":
		return domain.TierArea, nil
	case "category":
		return domain.TierCategory, nil
	case "id":
		return domain.TierID, nil
	default:
		return domain.TierUnknown, mcp.NewToolResultError(fmt.Sprintf("invalid level: %s", level))
	}
}

func formatEntries(entries []commands.Entry) (*mcp.CallToolResult, error) {
	if len(entries) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "[%s] %s", e.Tier, e.Name)
		if e.Subtitle != "" {
			fmt.Fprintf(&sb, "  (%s)", e.Subtitle)
		}
		if e.Path != "" {
			fmt.Fprintf(&sb, "  %s", e.Path)
		}
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
