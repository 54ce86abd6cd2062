package messenger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority ranks a message.
type Priority int

const (
	PriorityLow          Priority = 1
	PriorityIntermediate Priority = 2
	PriorityHigh         Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityIntermediate:
		return "Intermediate"
	case PriorityHigh:
		return "High"
	default:
		return "Priority(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePriority parses a priority name (case-insensitive) or its numeric value.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "1":
		return PriorityLow, nil
	case "intermediate", "2":
		return PriorityIntermediate, nil
	case "high", "3":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("messenger: unknown priority %q (want low|intermediate|high)", s)
	}
}

// PriorityDetails is attached to high priority messages when they are dispatched.
type PriorityDetails struct {
	Timestamp time.Time
}

// Message is the unit the Messenger dispatches.
type Message struct {
	// ID is assigned on dispatch when left as uuid.Nil.
	ID       uuid.UUID
	Content  string
	Scripted bool
	Priority Priority
	// PriorityDetails is set by Dispatch for PriorityHigh.
	PriorityDetails *PriorityDetails
}
