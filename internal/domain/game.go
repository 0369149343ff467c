package domain

import "time"

// DateLayout is the date-only wire format for game dates
const DateLayout = "2006-01-02"

// MinPlayers is the smallest exchange that makes sense
const MinPlayers = 2

// Game Model
type Game struct {
	ID         uint      `gorm:"primaryKey" json:"id"`                                 // Primary key
	GameName   string    `gorm:"column:gameName;not null" json:"gameName"`             // Display name
	StartDate  time.Time `gorm:"column:startDate;type:date;not null" json:"startDate"` // Signup window opens
	EndDate    time.Time `gorm:"column:endDate;type:date;not null" json:"endDate"`     // Signup window closes
	MaxPlayers int       `gorm:"column:maxPlayers;not null" json:"maxPlayers"`         // Player cap
	HostID     uint      `gorm:"column:hostId;not null;index" json:"hostId"`           // Hosting user
}

// TableName keeps the plural table name
func (Game) TableName() string {
	return "games"
}

// FormattedGame is the game payload sent by a client, dates as YYYY-MM-DD
type FormattedGame struct {
	GameName   string `json:"gameName"`   // Display name
	StartDate  string `json:"startDate"`  // YYYY-MM-DD
	EndDate    string `json:"endDate"`    // YYYY-MM-DD
	MaxPlayers int    `json:"maxPlayers"` // Player cap
}

// HostGameRequest is the body of a host-game submission
type HostGameRequest struct {
	UserID            uint          `json:"userId"`            // Submitting user
	FormattedGameData FormattedGame `json:"formattedGameData"` // Game fields
}

// FormatDate renders the calendar date of t without a time of day
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date at UTC midnight
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// calendarDay maps t onto UTC midnight of its own calendar date so that
// dates from different locations compare by day only.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayAfter reports whether a falls on a later calendar day than b
func DayAfter(a, b time.Time) bool {
	return calendarDay(a).After(calendarDay(b))
}
