package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	ReportID   ID
	SessionID  ID
	SubjectID  ID
	SnapshotID ID
	TaskKey    ID
)

// String conversions for domain IDs
func (id ReportID) String() string   { return ID(id).String() }
func (id SessionID) String() string  { return ID(id).String() }
func (id SubjectID) String() string  { return ID(id).String() }
func (id SnapshotID) String() string { return ID(id).String() }
func (id TaskKey) String() string    { return ID(id).String() }

// ParseReportID parses a string into ReportID
func ParseReportID(s string) (ReportID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("report ID cannot be empty")
	}
	return ReportID(s), nil
}

// ParseSessionID parses a string into SessionID
func ParseSessionID(s string) (SessionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("session ID cannot be empty")
	}
	return SessionID(s), nil
}

// ParseSubjectID parses a string into SubjectID
func ParseSubjectID(s string) (SubjectID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("subject ID cannot be empty")
	}
	return SubjectID(s), nil
}

// Canonical task keys for the assessment battery
const (
	TaskCPT          TaskKey = "cpt"           // Continuous performance (sustained attention)
	TaskGoNoGo       TaskKey = "go_no_go"      // Go/No-Go (response inhibition)
	TaskNBack        TaskKey = "n_back"        // N-Back (working memory)
	TaskStroop       TaskKey = "stroop"        // Stroop (interference control)
	TaskTrailMaking  TaskKey = "trail_making"  // Trail Making A/B (cognitive flexibility)
	TaskReactionTime TaskKey = "reaction_time" // Simple reaction time (processing speed)
)

// AllTaskKeys returns the canonical battery task keys in pipeline order
func AllTaskKeys() []TaskKey {
	return []TaskKey{TaskCPT, TaskGoNoGo, TaskNBack, TaskStroop, TaskTrailMaking, TaskReactionTime}
}
