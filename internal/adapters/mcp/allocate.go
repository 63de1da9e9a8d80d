package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

// RegisterAllocationTools adds the slot-allocation and rebuild tools
func RegisterAllocationTools(s *server.MCPServer, deps Deps) {
	s.AddTool(nextIDTool(), nextIDHandler(deps))
	s.AddTool(availableSlotsTool(), availableSlotsHandler(deps))
	s.AddTool(rebuildTool(), rebuildHandler(deps))
}

// --- next_id ---

func nextIDTool() mcp.Tool {
	return mcp.NewTool("next_id",
		mcp.WithDescription("Compute the next free ID in a category. Section dividers occupy their slot."),
		mcp.WithString("category",
			mcp.Description("Category code (e.g. 11)"),
			mcp.Required(),
		),
	)
}

func nextIDHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		catCode := req.GetString("category", "")
		if catCode == "" {
			return toolError(fmt.Errorf("category is required"))
		}

		index, errResult := loadIndex(deps)
		if errResult != nil {
			return errResult, nil
		}

		cat := index.GetCategory(catCode)
		if cat == nil {
			return mcp.NewToolResultText(fmt.Sprintf("Category %s not found.", catCode)), nil
		}

		code, ok := cat.NextFreeID()
		if !ok {
			return mcp.NewToolResultText(fmt.Sprintf("Category %s is full: all 100 IDs are in use.", catCode)), nil
		}
		return mcp.NewToolResultText(code), nil
	}
}

// --- available_slots ---

func availableSlotsTool() mcp.Tool {
	return mcp.NewTool("available_slots",
		mcp.WithDescription("List curated free ID slots in a category: a few at the top plus one insertion point per section decade, preserving deliberate gaps."),
		mcp.WithString("category",
			mcp.Description("Category code (e.g. 11)"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("How many free slots to offer in the 00-09 range (default 3)"),
		),
	)
}

func availableSlotsHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		catCode := req.GetString("category", "")
		if catCode == "" {
			return toolError(fmt.Errorf("category is required"))
		}
		limit := req.GetInt("limit", domain.DefaultSlotLimit)

		index, errResult := loadIndex(deps)
		if errResult != nil {
			return errResult, nil
		}

		cat := index.GetCategory(catCode)
		if cat == nil {
			return mcp.NewToolResultText(fmt.Sprintf("Category %s not found.", catCode)), nil
		}

		slots := cat.AvailableSlots(limit)
		if len(slots) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No available slots in %s.", catCode)), nil
		}
		return mcp.NewToolResultText(strings.Join(slots, "\n")), nil
	}
}

// --- rebuild ---

func rebuildTool() mcp.Tool {
	return mcp.NewTool("rebuild",
		mcp.WithDescription("Rescan the root folder and replace the persisted index."),
	)
}

func rebuildHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRebuildCommand(deps.Scanner, deps.Store)
		_, stats, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Index rebuilt: %s", stats)), nil
	}
}
