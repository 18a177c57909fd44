// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"pylens/internal/mcpserver"
)

// mcpCmd groups MCP server subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
	Long:  `Expose pylens scans and the scripted walkthrough as MCP tools.`,
}

// mcpServeCmd runs the stdio MCP server.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio",
	Long: `Start an MCP server on stdin/stdout. Clients can call the scan tool to
analyze Python files or directories and the demo tool to replay the scripted
walkthrough.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Tool output goes to MCP clients as plain text; ANSI codes would
		// corrupt it.
		color.NoColor = true
		return mcpserver.Run(cmd.Context(), Version, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
