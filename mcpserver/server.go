// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package mcpserver exposes plan generation and the field assistant as MCP
// tools over stdio and streamable HTTP transports.
package mcpserver

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/plan"
)

const (
	serverName    = "launchplan-mcp-server"
	serverVersion = "0.1.0"
)

// Generator runs the full generation pipeline. Satisfied by
// marketing.Orchestrator.
type Generator interface {
	GenerateDocument(ctx context.Context, attrs plan.Attributes, autoIterate bool) (*plan.Document, error)
}

// Suggester produces a suggestion for a single intake field. Satisfied by
// marketing.FieldAssistant.
type Suggester interface {
	SuggestField(ctx context.Context, fieldName string, attrs plan.Attributes) (string, error)
}

// Server wraps an MCP server with the plan generation tools registered.
type Server struct {
	mcpServer *mcp.Server
	generator Generator
	assistant Suggester
	log       logger.Logger
}

// New creates the MCP server and registers its tools.
func New(generator Generator, assistant Suggester, log logger.Logger) *Server {
	s := &Server{
		generator: generator,
		assistant: assistant,
		log:       log,
	}

	s.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		nil,
	)

	s.registerTools()

	return s
}

// Run serves MCP over stdio until the context is canceled or stdin closes.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("starting MCP server on stdio", "name", serverName)
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns a streamable HTTP handler serving this MCP server.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// MCPServer returns the underlying server so callers can attach their own
// transports.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}
