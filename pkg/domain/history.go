package domain

import "time"

// ExecutionRecord is one entry of the append-only execution history.
type ExecutionRecord struct {
	HotkeyID  string    `json:"hotkeyId"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// Stats summarizes the model for dashboards.
type Stats struct {
	TotalHotkeys            int     `json:"totalHotkeys"`
	EnabledHotkeys          int     `json:"enabledHotkeys"`
	TotalDecks              int     `json:"totalDecks"`
	CurrentDeck             string  `json:"currentDeck"`
	TotalExecutions         int     `json:"totalExecutions"`
	AverageActionsPerHotkey float64 `json:"averageActionsPerHotkey"`
}
