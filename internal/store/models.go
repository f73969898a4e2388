package store

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type LogEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	Energy    int       `json:"energy"` // 0..10
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type Alarm struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Label     string    `json:"label"`
	Time      string    `json:"time"` // HH:MM, 24h
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type EmergencyContact struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"created_at"`
}

type SafetyPlan struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	WarningSigns     string    `json:"warning_signs"`
	CopingStrategies string    `json:"coping_strategies"`
	SupportContacts  string    `json:"support_contacts"`
	SafeEnvironment  string    `json:"safe_environment"`
	CreatedAt        time.Time `json:"created_at"`
}

type WellnessItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Patch types list the only fields a client may change. A nil field is left
// untouched.

type LogPatch struct {
	Mood   *string `json:"mood"`
	Energy *int    `json:"energy"`
	Note   *string `json:"note"`
}

type AlarmPatch struct {
	Label   *string `json:"label"`
	Time    *string `json:"time"`
	Enabled *bool   `json:"enabled"`
}

type ContactPatch struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Relationship *string `json:"relationship"`
}

type SafetyPlanPatch struct {
	WarningSigns     *string `json:"warning_signs"`
	CopingStrategies *string `json:"coping_strategies"`
	SupportContacts  *string `json:"support_contacts"`
	SafeEnvironment  *string `json:"safe_environment"`
}

type WellnessItemPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Completed   *bool   `json:"completed"`
}

var alarmTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateMood(mood string) error {
	if strings.TrimSpace(mood) == "" {
		return invalid("mood is required")
	}
	return nil
}

func validateEnergy(energy int) error {
	if energy < 0 || energy > 10 {
		return invalid("energy must be between 0 and 10")
	}
	return nil
}

func validateAlarmTime(t string) error {
	if !alarmTimePattern.MatchString(t) {
		return invalid("time must be HH:MM (24h)")
	}
	return nil
}

func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", field)
	}
	return nil
}

func (p LogPatch) validate() error {
	if p.Mood != nil {
		if err := validateMood(*p.Mood); err != nil {
			return err
		}
	}
	if p.Energy != nil {
		return validateEnergy(*p.Energy)
	}
	return nil
}

func (p AlarmPatch) validate() error {
	if p.Time != nil {
		return validateAlarmTime(*p.Time)
	}
	return nil
}

func (p ContactPatch) validate() error {
	if p.Name != nil {
		if err := validateRequired("name", *p.Name); err != nil {
			return err
		}
	}
	if p.Phone != nil {
		return validateRequired("phone", *p.Phone)
	}
	return nil
}

func (p WellnessItemPatch) validate() error {
	if p.Title != nil {
		return validateRequired("title", *p.Title)
	}
	return nil
}
