// Package mcp exposes the hotkey engine as Model Context Protocol tools so
// agents can inspect decks and fire hotkeys.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
)

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    ports.HotkeyService
	logger    *slog.Logger
	mcpServer *server.MCPServer
	handlers  map[string]server.ToolHandlerFunc
}

// NewServer creates a new MCP server instance.
func NewServer(engine ports.HotkeyService, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("hotdeck-mcp", strings.TrimSpace(version)),
		handlers:  map[string]server.ToolHandlerFunc{},
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, e.g. to mount it on another transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tools returns the registered tool names in lexical order.
func (s *Server) Tools() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a tool by name with the given arguments, bypassing transport.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	h, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return h(ctx, req)
}

func (s *Server) addTool(tool mcp.Tool, h server.ToolHandlerFunc) {
	s.handlers[tool.Name] = h
	s.mcpServer.AddTool(tool, h)
}

func (s *Server) registerTools() {
	s.addTool(mcp.NewTool("list_hotkeys",
		mcp.WithDescription("List hotkeys. Optionally only those on a deck, or only standalone ones."),
		mcp.WithString("deck_id", mcp.Description("Only hotkeys placed on this deck")),
		mcp.WithBoolean("standalone", mcp.Description("Only hotkeys not placed on any deck")),
	), s.handleListHotkeys)

	s.addTool(mcp.NewTool("get_hotkey",
		mcp.WithDescription("Get one hotkey with its triggers and actions."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Hotkey ID")),
	), s.handleGetHotkey)

	s.addTool(mcp.NewTool("create_hotkey",
		mcp.WithDescription("Create a hotkey. Actions and triggers are JSON arrays in the configuration format."),
		mcp.WithString("name", mcp.Description("Display name")),
		mcp.WithString("description", mcp.Description("Free text")),
		mcp.WithString("deck_id", mcp.Description("Deck to place the hotkey on")),
		mcp.WithNumber("row", mcp.Description("Grid row, zero-based")),
		mcp.WithNumber("col", mcp.Description("Grid column, zero-based")),
		mcp.WithString("actions", mcp.Description(`JSON array, e.g. [{"type":"scene_switch","data":{"sceneName":"Intro"}}]`)),
		mcp.WithString("triggers", mcp.Description(`JSON array, e.g. [{"type":"keyboard","data":{"code":"F1"}}]`)),
	), s.handleCreateHotkey)

	s.addTool(mcp.NewTool("delete_hotkey",
		mcp.WithDescription("Delete a hotkey."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Hotkey ID")),
	), s.handleDeleteHotkey)

	s.addTool(mcp.NewTool("execute_hotkey",
		mcp.WithDescription("Run a hotkey's actions in order. Stops at the first failing action."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Hotkey ID")),
	), s.handleExecuteHotkey)

	s.addTool(mcp.NewTool("list_decks",
		mcp.WithDescription("List decks. With parent_id, list that main deck's sub-decks."),
		mcp.WithString("parent_id", mcp.Description("Main deck ID")),
	), s.handleListDecks)

	s.addTool(mcp.NewTool("create_deck",
		mcp.WithDescription("Create a main deck, or a sub-deck when parent_id is set."),
		mcp.WithString("name", mcp.Description("Display name")),
		mcp.WithNumber("rows", mcp.Description("Grid rows (main decks only)")),
		mcp.WithNumber("columns", mcp.Description("Grid columns (main decks only)")),
		mcp.WithString("parent_id", mcp.Description("Main deck that owns the new sub-deck")),
	), s.handleCreateDeck)

	s.addTool(mcp.NewTool("get_grid",
		mcp.WithDescription("Get the slot grid currently shown for a main deck."),
		mcp.WithString("deck_id", mcp.Required(), mcp.Description("Main deck ID")),
	), s.handleGetGrid)

	s.addTool(mcp.NewTool("switch_deck",
		mcp.WithDescription("Make a deck current. A sub-deck is shown inside its parent."),
		mcp.WithString("deck_id", mcp.Required(), mcp.Description("Deck ID")),
	), s.handleSwitchDeck)

	s.addTool(mcp.NewTool("switch_sub_deck",
		mcp.WithDescription("Show a sub-deck inside its main deck, or the main deck's own grid when sub_deck_id is empty."),
		mcp.WithString("main_deck_id", mcp.Required(), mcp.Description("Main deck ID")),
		mcp.WithString("sub_deck_id", mcp.Description("Sub-deck ID")),
	), s.handleSwitchSubDeck)

	s.addTool(mcp.NewTool("send_midi",
		mcp.WithDescription("Inject a MIDI message as if it came from a controller."),
		mcp.WithString("type", mcp.Required(), mcp.Enum(domain.MIDIControlChange, domain.MIDINoteOn, domain.MIDINoteOff)),
		mcp.WithNumber("channel", mcp.Description("Zero-based channel, 0-15")),
		mcp.WithNumber("controller", mcp.Description("Controller number")),
		mcp.WithNumber("note", mcp.Description("Note number")),
		mcp.WithNumber("value", mcp.Description("Value 0-127")),
	), s.handleSendMIDI)

	s.addTool(mcp.NewTool("send_key",
		mcp.WithDescription("Inject a key press."),
		mcp.WithString("code", mcp.Required(), mcp.Description(`Physical key code, e.g. "KeyS" or "F5"`)),
		mcp.WithString("key", mcp.Description("Produced key value")),
		mcp.WithBoolean("ctrl"),
		mcp.WithBoolean("shift"),
		mcp.WithBoolean("alt"),
		mcp.WithBoolean("meta"),
	), s.handleSendKey)

	s.addTool(mcp.NewTool("get_stats",
		mcp.WithDescription("Summary counts and the current deck."),
	), func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(s.engine.Stats())
	})

	s.addTool(mcp.NewTool("get_history",
		mcp.WithDescription("Execution history, oldest first."),
	), func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(s.engine.History())
	})

	s.addTool(mcp.NewTool("export_config",
		mcp.WithDescription("Export hotkeys, decks and active sub-decks as a configuration document."),
	), func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(s.engine.Export())
	})

	s.addTool(mcp.NewTool("import_config",
		mcp.WithDescription("Replace everything with a configuration document. Rejected documents change nothing."),
		mcp.WithString("config", mcp.Required(), mcp.Description("Configuration JSON")),
	), s.handleImportConfig)
}

func (s *Server) registerResources() {
	s.addResource("hotdeck://config", "Current configuration", func() any { return s.engine.Export() })
	s.addResource("hotdeck://stats", "Engine statistics", func() any { return s.engine.Stats() })
}

func (s *Server) addResource(uri, name string, read func() any) {
	s.mcpServer.AddResource(mcp.NewResource(uri, name,
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(read())
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", uri, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
