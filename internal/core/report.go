package core

// ReportPromptFor builds the confirmation for reporting raw. Nothing is sent
// anywhere; the frontend only shows it.
func ReportPromptFor(raw string) (*ReportPrompt, error) {
	if NormalizeDigits(raw) == "" {
		return nil, ErrNumberRequired
	}

	digits, err := ParsePhoneDigits(raw)
	if err != nil {
		return nil, err
	}

	formatted := FormatForDisplay(string(digits))
	return &ReportPrompt{
		Number:    digits,
		Formatted: formatted,
		Title:     msg(keyReportTitle),
		Message:   msg(keyReportMessage, formatted),
		Note:      msg(keyReportNote),
		Action:    msg(keyReportAction),
	}, nil
}
