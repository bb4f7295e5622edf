package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// RiskLevel is the classification of a scan's outcome
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel converts a persisted or user supplied value into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(s), nil
	default:
		return "", fmt.Errorf("invalid risk level: %q", s)
	}
}

// Severity orders risk levels for display only
func (r RiskLevel) Severity() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 0
	}
}

// UnmarshalJSON rejects unknown risk levels so malformed history is detected on load
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	level, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}
	*r = level
	return nil
}

// DetailRisk is the risk attached to a single detail card, a RiskLevel or "safe"
type DetailRisk string

// DetailSafe marks a detail that carries no risk
const DetailSafe DetailRisk = "safe"

// PhoneDigits is a validated string of 10 to 13 ASCII digits
type PhoneDigits string

// ScanDetail is one facet of an assessment
type ScanDetail struct {
	ID       string     `json:"id" yaml:"id"`
	Title    string     `json:"title" yaml:"title"`
	Icon     string     `json:"icon" yaml:"icon"`
	Content  string     `json:"content" yaml:"content"`
	Risk     DetailRisk `json:"risk" yaml:"risk"`
	RiskText string     `json:"riskText" yaml:"riskText"`
}

// ScanResult is the fabricated assessment for one number
type ScanResult struct {
	OverallRisk RiskLevel    `json:"overallRisk" yaml:"overallRisk"`
	RiskLabel   string       `json:"riskLabel" yaml:"riskLabel"`
	Score       int          `json:"score" yaml:"score"`
	Details     []ScanDetail `json:"details" yaml:"details"`
}

// HistoryEntry is a persisted record of one past scan
type HistoryEntry struct {
	ID          int64       `json:"id" yaml:"id"`
	Number      PhoneDigits `json:"number" yaml:"number"`
	Formatted   string      `json:"formatted" yaml:"formatted"`
	Risk        RiskLevel   `json:"risk" yaml:"risk"`
	CreatedAt   time.Time   `json:"timestamp" yaml:"timestamp"`
	TimeDisplay string      `json:"timeDisplay" yaml:"timeDisplay"`
	DateDisplay string      `json:"dateDisplay" yaml:"dateDisplay"`
}

// Warning is the advisory shown for high risk numbers
type Warning struct {
	Title           string   `json:"title" yaml:"title"`
	Message         string   `json:"message" yaml:"message"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// ScanOutcome is everything a frontend needs to render one finished scan
type ScanOutcome struct {
	ScanID      string      `json:"scanId" yaml:"scanId"`
	EntryID     int64       `json:"entryId" yaml:"entryId"`
	Number      PhoneDigits `json:"number" yaml:"number"`
	Formatted   string      `json:"formatted" yaml:"formatted"`
	ScannedAt   time.Time   `json:"scannedAt" yaml:"scannedAt"`
	TimeDisplay string      `json:"timeDisplay" yaml:"timeDisplay"`
	Result      *ScanResult `json:"result" yaml:"result"`
	Warning     *Warning    `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// ReportPrompt is the confirmation shown before a number is reported
type ReportPrompt struct {
	Number    PhoneDigits `json:"number" yaml:"number"`
	Formatted string      `json:"formatted" yaml:"formatted"`
	Title     string      `json:"title" yaml:"title"`
	Message   string      `json:"message" yaml:"message"`
	Note      string      `json:"note" yaml:"note"`
	Action    string      `json:"action" yaml:"action"`
}

// ShareRequest is handed to a platform sharer
type ShareRequest struct {
	Number string
	Title  string
	Text   string
	URL    string
}

// Share methods reported back to the frontend
const (
	ShareMethodPlatform = "platform"
	ShareMethodLink     = "link"
)

// ShareOutcome tells the frontend how a share was delivered
type ShareOutcome struct {
	Method string `json:"method" yaml:"method"`
	Prompt string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Text   string `json:"text" yaml:"text"`
	URL    string `json:"url" yaml:"url"`
}
