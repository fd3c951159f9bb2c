package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/rotary-nav/internal/config"
	"github.com/mj1618/rotary-nav/internal/model"
	"github.com/mj1618/rotary-nav/internal/nav"
	"github.com/mj1618/rotary-nav/internal/platform/snapshot"
	"gopkg.in/yaml.v3"
)

// mcpServer exposes the navigation engine over MCP. Agents load a snapshot
// to get a session, then drive rotate/nudge against that session's
// navigator, which tracks focus between calls.
type mcpServer struct {
	sessions   *sessionStore
	sessionsMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport  string
	Port       int
	SessionTTL time.Duration
}

// newMCPServer creates and configures an MCP server with all rotary-nav tools.
func newMCPServer(cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		sessions: newSessionStore(cfg.SessionTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"rotary-nav",
		"1.0.0",
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// load_snapshot
	s.mcp.AddTool(
		mcp.NewTool("load_snapshot",
			mcp.WithDescription("Load a window/tree snapshot (YAML or JSON) and start a navigation session. Returns a session_id for the other tools."),
			mcp.WithString("snapshot", mcp.Description("Snapshot document: windows with node trees, optional focused node ID"), mcp.Required()),
			mcp.WithString("config", mcp.Description("Optional navigation config document (hun_escape, hun_position, hun_bounds)")),
		),
		s.handleLoadSnapshot,
	)

	// rotate
	s.mcp.AddTool(
		mcp.NewTool("rotate",
			mcp.WithDescription("Advance focus sequentially within the current focus area (rotary rotate event)"),
			mcp.WithString("session_id", mcp.Description("Session from load_snapshot"), mcp.Required()),
			mcp.WithString("direction", mcp.Description("Rotate direction: forward, backward (default: forward)")),
			mcp.WithNumber("count", mcp.Description("Focusable stops to advance (default: 1)")),
		),
		s.handleRotate,
	)

	// nudge
	s.mcp.AddTool(
		mcp.NewTool("nudge",
			mcp.WithDescription("Jump focus to the nearest focus area in a direction (directional nudge event)"),
			mcp.WithString("session_id", mcp.Description("Session from load_snapshot"), mcp.Required()),
			mcp.WithString("direction", mcp.Description("Nudge direction: up, down, left, right"), mcp.Required()),
		),
		s.handleNudge,
	)

	// init_focus
	s.mcp.AddTool(
		mcp.NewTool("init_focus",
			mcp.WithDescription("Resolve the initial focus target for the session's snapshot"),
			mcp.WithString("session_id", mcp.Description("Session from load_snapshot"), mcp.Required()),
		),
		s.handleInitFocus,
	)

	// windows
	s.mcp.AddTool(
		mcp.NewTool("windows",
			mcp.WithDescription("List the session snapshot's windows with layer, bounds, HUN flag, and focus-area count"),
			mcp.WithString("session_id", mcp.Description("Session from load_snapshot"), mcp.Required()),
		),
		s.handleWindows,
	)

	// release_snapshot
	s.mcp.AddTool(
		mcp.NewTool("release_snapshot",
			mcp.WithDescription("End a navigation session and free its snapshot"),
			mcp.WithString("session_id", mcp.Description("Session from load_snapshot"), mcp.Required()),
		),
		s.handleReleaseSnapshot,
	)
}

// toYAMLResult serializes v to YAML for an MCP text response.
func toYAMLResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

// stringParam reads a string argument with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// intParam reads a numeric argument with a default. MCP numbers arrive as
// float64.
func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}

// session resolves the session_id argument.
func (s *mcpServer) session(params map[string]interface{}) (*navSession, error) {
	id := stringParam(params, "session_id", "")
	if id == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	return s.sessions.get(id)
}

func (s *mcpServer) handleLoadSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	doc := stringParam(params, "snapshot", "")
	if doc == "" {
		return mcp.NewToolResultError("snapshot is required"), nil
	}

	provider, err := snapshot.Parse([]byte(doc))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := config.Default()
	if cfgDoc := stringParam(params, "config", ""); cfgDoc != "" {
		cfg, err = config.Parse([]byte(cfgDoc))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	rules, err := cfg.Rules()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	nv := nav.New(provider, rules)
	nv.SetHUNBounds(cfg.HUNRect())

	windows, err := provider.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id := s.sessions.put(provider, nv)
	return toYAMLResult(map[string]interface{}{
		"session_id": id,
		"windows":    len(windows),
		"focused":    provider.FocusedNodeID(),
	}), nil
}

func (s *mcpServer) handleRotate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sess, err := s.session(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dir, err := model.ParseRotateDirection(stringParam(params, "direction", "forward"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	count := intParam(params, "count", 1)

	s.sessionsMu.Lock()
	res, err := sess.nv.Rotate(dir, count)
	s.sessionsMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toYAMLResult(RotateResult{
		OK:       res.Target != nil,
		Action:   "rotate",
		Target:   nodeInfo(res.Target),
		Advanced: res.Advanced,
	}), nil
}

func (s *mcpServer) handleNudge(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sess, err := s.session(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dir, err := model.ParseDirection(stringParam(params, "direction", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.sessionsMu.Lock()
	target, err := sess.nv.Nudge(dir)
	s.sessionsMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toYAMLResult(NudgeResult{
		OK:     target != nil,
		Action: "nudge",
		Target: nodeInfo(target),
	}), nil
}

func (s *mcpServer) handleInitFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sess, err := s.session(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.sessionsMu.Lock()
	target, changed, err := sess.nv.InitFocus()
	s.sessionsMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toYAMLResult(InitFocusResult{
		OK:      target != nil,
		Action:  "init-focus",
		Target:  nodeInfo(target),
		Changed: changed,
	}), nil
}

func (s *mcpServer) handleWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sess, err := s.session(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	windows, err := sess.provider.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries := []windowEntry{}
	for _, w := range model.SortWindows(windows) {
		entries = append(entries, windowEntry{
			ID:     w.ID,
			Layer:  w.Layer,
			Bounds: w.Bounds.Array(),
			HUN:    w.HUN,
			Areas:  len(nav.AreasInWindow(w)),
		})
	}
	return toYAMLResult(entries), nil
}

func (s *mcpServer) handleReleaseSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := stringParam(params, "session_id", "")
	if id == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}
	if !s.sessions.release(id) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown session %q", id)), nil
	}
	return mcp.NewToolResultText("released"), nil
}
