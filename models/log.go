package models

import (
	"strings"
	"time"
)

// LogLevel is the closed set of accepted log levels.
type LogLevel string

const (
	LogLevelInfo     LogLevel = "info"
	LogLevelDebug    LogLevel = "debug"
	LogLevelWarning  LogLevel = "warning"
	LogLevelError    LogLevel = "error"
	LogLevelCritical LogLevel = "critical"
)

// ValidLogLevel reports whether level (case-insensitive) is one of the
// five accepted levels.
func ValidLogLevel(level string) bool {
	switch LogLevel(strings.ToLower(level)) {
	case LogLevelInfo, LogLevelDebug, LogLevelWarning, LogLevelError, LogLevelCritical:
		return true
	}
	return false
}

// Log is a structured log record belonging to one project.
type Log struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;index"`
	Level     string    `json:"level" gorm:"size:50;not null"`
	Category  *string   `json:"category" gorm:"size:255"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Tags      []string  `json:"tags" gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
