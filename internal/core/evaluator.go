package core

import (
	"strings"
)

// Random adjustment bounds applied to the score
const (
	randomBoost   = 0.7
	randomRelief  = 0.3
	activityPivot = 0.5
)

var (
	// last digits adding two points
	heavyDigits = map[byte]bool{'0': true, '4': true, '7': true}
	// last digits adding one point
	lightDigits = map[byte]bool{'1': true, '3': true, '8': true}

	sequencePatterns = []string{"1234", "5678", "4321"}
)

// Evaluate fabricates a risk assessment for digits.
// The result depends only on digits and the single value drawn from random.
func Evaluate(digits PhoneDigits, random func() float64) *ScanResult {
	r := random()
	score := ScoreDigits(digits) + randomAdjustment(r)
	overall := ClassifyScore(score)

	return &ScanResult{
		OverallRisk: overall,
		RiskLabel:   overall.Label(),
		Score:       score,
		Details:     buildDetails(overall, r),
	}
}

// ScoreDigits computes the deterministic part of the score
func ScoreDigits(digits PhoneDigits) int {
	s := string(digits)
	score := 0

	if len(s) > 0 {
		last := s[len(s)-1]
		if heavyDigits[last] {
			score += 2
		} else if lightDigits[last] {
			score++
		}
	}

	if hasRepeatedRun(s, 3) {
		score += 2
	}

	for _, pattern := range sequencePatterns {
		if strings.Contains(s, pattern) {
			score++
			break
		}
	}

	return score
}

// ClassifyScore maps a score onto a risk level
func ClassifyScore(score int) RiskLevel {
	switch {
	case score >= 4:
		return RiskHigh
	case score >= 2:
		return RiskMedium
	default:
		return RiskLow
	}
}

func randomAdjustment(r float64) int {
	switch {
	case r > randomBoost:
		return 1
	case r < randomRelief:
		return -1
	default:
		return 0
	}
}

// hasRepeatedRun reports whether s holds n or more identical consecutive characters
func hasRepeatedRun(s string, n int) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func buildDetails(overall RiskLevel, r float64) []ScanDetail {
	high := overall == RiskHigh

	reports := ScanDetail{
		ID:       "reports",
		Title:    msg(keyReportsTitle),
		Icon:     "fas fa-users",
		Content:  msg(keyReportsDefault),
		Risk:     DetailRisk(overall),
		RiskText: msg(keyRiskSafe),
	}
	recommendation := ScanDetail{
		ID:       "recommendation",
		Title:    msg(keyRecommendationTitle),
		Icon:     "fas fa-handshake",
		Content:  msg(keyRecommendationDefault),
		Risk:     DetailRisk(overall),
		RiskText: msg(keyRiskNormal),
	}
	if high {
		reports.Content = msg(keyReportsHigh)
		reports.RiskText = msg(keyRiskAlert)
		recommendation.Content = msg(keyRecommendationHigh)
		recommendation.RiskText = msg(keyRiskCareful)
	}

	activity := ScanDetail{
		ID:       "activity",
		Title:    msg(keyActivityTitle),
		Icon:     "fas fa-globe",
		Content:  msg(keyActivityLimited),
		Risk:     DetailRisk(RiskMedium),
		RiskText: msg(keyRiskNormal),
	}
	if r > activityPivot {
		activity.Content = msg(keyActivityActive)
	}

	return []ScanDetail{
		{
			ID:       "provider",
			Title:    msg(keyProviderTitle),
			Icon:     "fas fa-sim-card",
			Content:  msg(keyProviderContent),
			Risk:     DetailSafe,
			RiskText: msg(keyRiskSafe),
		},
		reports,
		activity,
		recommendation,
	}
}
