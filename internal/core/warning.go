package core

// WarningFor returns the advisory for a high risk result, nil otherwise
func WarningFor(formatted string, result *ScanResult) *Warning {
	if result == nil || result.OverallRisk != RiskHigh {
		return nil
	}

	return &Warning{
		Title:   msg(keyWarningTitle),
		Message: msg(keyWarningMessage, formatted, result.RiskLabel),
		Recommendations: []string{
			msg(keyWarningRec1),
			msg(keyWarningRec2),
			msg(keyWarningRec3),
			msg(keyWarningRec4),
		},
	}
}
