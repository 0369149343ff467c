package domain

import "time"

// Field names of a game draft
const (
	FieldGameName   = "gameName"
	FieldStartDate  = "startDate"
	FieldEndDate    = "endDate"
	FieldMaxPlayers = "maxPlayers"
)

// Messages shown for rejected drafts
const (
	MsgFillAllFields  = "Please fill in all required fields"
	MsgStartDate      = "Start date must be tomorrow or later"
	MsgEndDate        = "End Date must be after the start date"
	MsgMaxPlayers     = "Maximum members cannot be less than 2"
	MsgNameRequired   = "Game name is required"
	MsgStartRequired  = "Start Date is required"
	MsgEndRequired    = "End Date is required"
	MsgMaxPlayersReqd = "Maximum Players are required"
)

// RuleError is a game rule violation with the message meant for the user
type RuleError struct {
	Field   string // Offending field, empty when several are missing
	Message string // User facing message
}

func (e *RuleError) Error() string {
	return e.Message
}

// GameDraft holds game fields that may still be missing. A nil pointer
// is an unset field.
type GameDraft struct {
	GameName   string
	StartDate  *time.Time
	EndDate    *time.Time
	MaxPlayers *int
}

// MissingFields maps every unset field to its "required" message
func (d GameDraft) MissingFields() map[string]string {
	missing := map[string]string{}
	if d.GameName == "" {
		missing[FieldGameName] = MsgNameRequired
	}
	if d.StartDate == nil {
		missing[FieldStartDate] = MsgStartRequired
	}
	if d.EndDate == nil {
		missing[FieldEndDate] = MsgEndRequired
	}
	if d.MaxPlayers == nil {
		missing[FieldMaxPlayers] = MsgMaxPlayersReqd
	}
	return missing
}

// Validate applies the game rules in order and returns the first violation
// as a *RuleError. now decides what "tomorrow" is.
func (d GameDraft) Validate(now time.Time) error {
	if len(d.MissingFields()) > 0 {
		return &RuleError{Message: MsgFillAllFields}
	}
	if !DayAfter(*d.StartDate, now) {
		return &RuleError{Field: FieldStartDate, Message: MsgStartDate}
	}
	if !DayAfter(*d.EndDate, *d.StartDate) {
		return &RuleError{Field: FieldEndDate, Message: MsgEndDate}
	}
	if *d.MaxPlayers < MinPlayers {
		return &RuleError{Field: FieldMaxPlayers, Message: MsgMaxPlayers}
	}
	return nil
}

// Format renders a validated draft into its wire payload
func (d GameDraft) Format() FormattedGame {
	return FormattedGame{
		GameName:   d.GameName,
		StartDate:  FormatDate(*d.StartDate),
		EndDate:    FormatDate(*d.EndDate),
		MaxPlayers: *d.MaxPlayers,
	}
}

// DraftFromFormatted parses a wire payload back into a draft. Unparseable
// or empty dates and a zero player cap come back as unset fields.
func DraftFromFormatted(f FormattedGame) GameDraft {
	d := GameDraft{GameName: f.GameName}
	if t, err := ParseDate(f.StartDate); err == nil {
		d.StartDate = &t
	}
	if t, err := ParseDate(f.EndDate); err == nil {
		d.EndDate = &t
	}
	if f.MaxPlayers != 0 {
		n := f.MaxPlayers
		d.MaxPlayers = &n
	}
	return d
}
