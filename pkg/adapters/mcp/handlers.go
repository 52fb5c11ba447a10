package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/hotdeck/pkg/domain"
)

func (s *Server) handleListHotkeys(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if deckID := req.GetString("deck_id", ""); deckID != "" {
		return jsonResult(s.engine.HotkeysByDeck(deckID))
	}
	if req.GetBool("standalone", false) {
		return jsonResult(s.engine.StandaloneHotkeys())
	}
	return jsonResult(s.engine.Hotkeys())
}

func (s *Server) handleGetHotkey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h, ok := s.engine.Hotkey(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", domain.ErrHotkeyNotFound, id)), nil
	}
	return jsonResult(h)
}

func (s *Server) handleCreateHotkey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := domain.HotkeyOptions{
		Name:        req.GetString("name", ""),
		Description: req.GetString("description", ""),
		DeckID:      req.GetString("deck_id", ""),
	}
	if opts.DeckID != "" {
		opts.Position = &domain.Position{Row: req.GetInt("row", 0), Col: req.GetInt("col", 0)}
	}
	if raw := req.GetString("actions", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &opts.Actions); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid actions JSON: %v", err)), nil
		}
	}
	if raw := req.GetString("triggers", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &opts.Triggers); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid triggers JSON: %v", err)), nil
		}
	}
	return jsonResult(s.engine.CreateHotkey(ctx, opts))
}

func (s *Server) handleDeleteHotkey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !s.engine.DeleteHotkey(ctx, id) {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", domain.ErrHotkeyNotFound, id)), nil
	}
	return mcp.NewToolResultText("deleted " + id), nil
}

func (s *Server) handleExecuteHotkey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, ok := s.engine.Hotkey(id); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", domain.ErrHotkeyNotFound, id)), nil
	}
	if s.engine.Execute(ctx, id) {
		return mcp.NewToolResultText("executed " + id), nil
	}
	msg := "execution failed"
	history := s.engine.History()
	if n := len(history); n > 0 && history[n-1].HotkeyID == id && history[n-1].Error != "" {
		msg += ": " + history[n-1].Error
	}
	s.logger.Warn("MCP execute failed", "hotkey_id", id, "err", msg)
	return mcp.NewToolResultError(msg), nil
}

func (s *Server) handleListDecks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if parent := req.GetString("parent_id", ""); parent != "" {
		return jsonResult(s.engine.SubDecks(parent))
	}
	return jsonResult(s.engine.Decks())
}

func (s *Server) handleCreateDeck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := s.engine.CreateDeck(ctx, domain.DeckOptions{
		Name:         req.GetString("name", ""),
		Rows:         req.GetInt("rows", 0),
		Columns:      req.GetInt("columns", 0),
		ParentDeckID: req.GetString("parent_id", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(d)
}

func (s *Server) handleGetGrid(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("deck_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	grid, ok := s.engine.Grid(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", domain.ErrDeckNotFound, id)), nil
	}
	return jsonResult(grid)
}

func (s *Server) handleSwitchDeck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("deck_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !s.engine.SwitchToDeck(ctx, id) {
		return mcp.NewToolResultError("deck switch failed: " + id), nil
	}
	return mcp.NewToolResultText("current deck " + id), nil
}

func (s *Server) handleSwitchSubDeck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mainID, err := req.RequireString("main_deck_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	subID := req.GetString("sub_deck_id", "")

	var ok bool
	if subID == "" {
		ok = s.engine.SwitchBackToMainDeck(ctx, mainID)
	} else {
		ok = s.engine.SwitchToSubDeck(ctx, mainID, subID)
	}
	if !ok {
		return mcp.NewToolResultError("sub-deck switch rejected"), nil
	}
	return jsonResult(s.engine.ActiveSubDecks())
}

func (s *Server) handleSendMIDI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typ, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n := s.engine.HandleMIDI(ctx, domain.MIDIMessage{
		Type:       typ,
		Channel:    req.GetInt("channel", 0),
		Controller: req.GetInt("controller", 0),
		Note:       req.GetInt("note", 0),
		Value:      req.GetInt("value", 0),
	})
	return mcp.NewToolResultText(fmt.Sprintf("executed %d hotkey(s)", n)), nil
}

func (s *Server) handleSendKey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ev := domain.KeyEvent{
		Key:      req.GetString("key", code),
		Code:     code,
		CtrlKey:  req.GetBool("ctrl", false),
		ShiftKey: req.GetBool("shift", false),
		AltKey:   req.GetBool("alt", false),
		MetaKey:  req.GetBool("meta", false),
	}
	if s.engine.HandleKey(ctx, ev) {
		return mcp.NewToolResultText("matched " + domain.DescribeKey(ev)), nil
	}
	return mcp.NewToolResultText("no hotkey for " + domain.DescribeKey(ev)), nil
}

func (s *Server) handleImportConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("config")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var cfg domain.Configuration
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid configuration JSON: %v", err)), nil
	}
	if err := s.engine.Import(ctx, &cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("import failed: %v", err)), nil
	}
	return jsonResult(s.engine.Stats())
}
