package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	maxEventTypeLength   = 255
	maxEventStatusLength = 50
)

// ValidEventType checks the event type format: non-blank, at most 255
// characters, restricted to alphanumerics plus underscore, hyphen, space,
// and dot.
func ValidEventType(eventType string) bool {
	return validEventString(eventType, maxEventTypeLength)
}

// ValidEventStatus applies the same charset as event types with a 50
// character cap. Any syntactically valid value-to-value transition is
// allowed; no transition graph is enforced here, which may get tightened
// once real workflows need one.
func ValidEventStatus(status string) bool {
	return validEventString(status, maxEventStatusLength)
}

func validEventString(s string, maxLen int) bool {
	// Length caps count characters, not bytes; the charset admits
	// multibyte letters.
	if utf8.RuneCountInString(s) > maxLen {
		return false
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	for _, c := range trimmed {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !strings.ContainsRune("_- .", c) {
			return false
		}
	}
	return true
}

// Event is a business event belonging to one project, with an optional
// free-form status and an open metadata document.
type Event struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID   string         `json:"projectId" gorm:"type:uuid;not null;index"`
	EventType   string         `json:"eventType" gorm:"size:255;not null"`
	EventStatus *string        `json:"eventStatus" gorm:"size:50"`
	Metadata    map[string]any `json:"metadata" gorm:"serializer:json;type:jsonb"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	// Relations
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
