package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// parseAction reads "type" or "type={json data}", e.g. scene_switch={"sceneName":"Intro"}.
func parseAction(s string) (domain.Action, error) {
	name, data, _ := strings.Cut(s, "=")
	a := domain.Action{
		Type: domain.NormalizeActionType(strings.TrimSpace(name)),
		Data: map[string]any{},
	}
	if strings.TrimSpace(data) != "" {
		if err := json.Unmarshal([]byte(data), &a.Data); err != nil {
			return a, fmt.Errorf("action %q: data must be a JSON object: %w", name, err)
		}
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

var midiAliases = map[string]string{
	"cc":                     domain.MIDIControlChange,
	domain.MIDIControlChange: domain.MIDIControlChange,
	"note":                   domain.MIDINoteOn,
	domain.MIDINoteOn:        domain.MIDINoteOn,
	domain.MIDINoteOff:       domain.MIDINoteOff,
}

// parseMIDI reads "type:channel:number" with channel 1-16 as printed on devices,
// e.g. cc:1:7 or note:10:60.
func parseMIDI(s string) (domain.MIDIMessage, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return domain.MIDIMessage{}, fmt.Errorf("midi trigger %q: want type:channel:number", s)
	}
	kind, ok := midiAliases[strings.ToLower(parts[0])]
	if !ok {
		return domain.MIDIMessage{}, fmt.Errorf("midi trigger %q: unknown type %q", s, parts[0])
	}
	channel, err := strconv.Atoi(parts[1])
	if err != nil || channel < 1 || channel > 16 {
		return domain.MIDIMessage{}, fmt.Errorf("midi trigger %q: channel must be 1-16", s)
	}
	number, err := strconv.Atoi(parts[2])
	if err != nil || number < 0 || number > 127 {
		return domain.MIDIMessage{}, fmt.Errorf("midi trigger %q: number must be 0-127", s)
	}

	m := domain.MIDIMessage{Type: kind, Channel: channel - 1}
	if kind == domain.MIDIControlChange {
		m.Controller = number
	} else {
		m.Note = number
	}
	return m, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
