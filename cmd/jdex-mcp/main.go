package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	mcpadapter "jdex/internal/adapters/mcp"
	"jdex/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.Root(), "path to the Johnny Decimal root folder")
	indexFlag := flag.String("index", config.IndexPath(), "path to the persisted index file")
	flag.Parse()

	deps := mcpadapter.Deps{
		Store:    jsonstore.NewStore(config.ExpandHome(*indexFlag)),
		Scanner:  filesystem.NewScanner(config.ExpandHome(*rootFlag)),
		Resolver: filesystem.NewResolver(config.ExpandHome(*rootFlag)),
	}

	mcpServer := server.NewMCPServer(
		"jdex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterQueryTools(mcpServer, deps)
	mcpadapter.RegisterAllocationTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("jdex-mcp: %v", err)
	}
}
