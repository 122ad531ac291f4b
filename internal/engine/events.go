package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Category tags a log entry for display.
type Category string

const (
	CategoryInfo    Category = "info"
	CategoryAction  Category = "action"
	CategoryAlert   Category = "alert"
	CategoryFinance Category = "finance"
	CategorySystem  Category = "system"
	CategoryLove    Category = "love"
	CategorySecret  Category = "secret"
)

// LogEntry is one line of the in-world event log.
type LogEntry struct {
	ID       string   `json:"id"`
	Tick     uint64   `json:"tick"`
	Message  string   `json:"message"`
	Category Category `json:"category"`
}

// logf prepends an entry to the world log and drops the oldest entries
// beyond capacity.
func (s *Simulation) logf(cat Category, format string, args ...any) {
	entry := LogEntry{
		ID:       uuid.NewString(),
		Tick:     s.world.Tick,
		Message:  fmt.Sprintf(format, args...),
		Category: cat,
	}
	capacity := s.Tuning.LogCapacity
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	logs := make([]LogEntry, 0, min(len(s.world.Logs)+1, capacity))
	logs = append(logs, entry)
	for _, e := range s.world.Logs {
		if len(logs) == capacity {
			break
		}
		logs = append(logs, e)
	}
	s.world.Logs = logs
}

// yuan formats an amount of money for log messages.
func yuan(amount int64) string {
	return "¥" + humanize.Comma(amount)
}
