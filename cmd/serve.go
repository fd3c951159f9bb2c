package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing rotary-nav tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the navigation
engine as tools. Agents load a snapshot to open a session, then drive
rotate/nudge/init_focus against it; the session tracks focus between calls.

Supported transports:
  stdio             Standard I/O (default, for Claude Code / MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  rotary-nav serve
  rotary-nav serve --transport streamable-http --port 8080
  rotary-nav serve --session-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("session-ttl", 600, "Idle session expiry in seconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	ttlSeconds, _ := cmd.Flags().GetInt("session-ttl")

	cfg := MCPConfig{
		Transport:  transport,
		Port:       port,
		SessionTTL: time.Duration(ttlSeconds) * time.Second,
	}

	return newMCPServer(cfg).serve(cfg)
}
