package hostgame

import (
	"context"
	"errors"
	"strconv"
	"time"

	"secret_santa/internal/client"
	"secret_santa/internal/clock"
	"secret_santa/internal/domain"
	"secret_santa/internal/localstore"
)

// State of the form's draft
type State int

const (
	StateEmpty State = iota
	StateEditing
	StateSubmittedValid
	StateSubmittedInvalid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateSubmittedValid:
		return "submitted-valid"
	case StateSubmittedInvalid:
		return "submitted-invalid"
	}
	return "unknown"
}

// Severity of an alert
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// User facing messages
const (
	MsgNotLoggedIn = "User is not logged In. Please log in to Host a Game."
	MsgHosted      = "Game Hosted!"
	MsgUnexpected  = "Something unexpected happened. Please contact your administrator"
)

// ErrNotSignedIn is returned by Submit when no session user id is stored
var ErrNotSignedIn = errors.New(MsgNotLoggedIn)

// Alerter shows a global notification
type Alerter interface {
	ShowAlert(message string, severity Severity)
}

// SessionReader reads the persisted session, see localstore.Store
type SessionReader interface {
	GetItem(key string) (string, bool)
}

// Submitter sends a validated game to the backend. Rejections that carry a
// server message come back as *client.APIError.
type Submitter interface {
	HostGame(ctx context.Context, userID uint, game domain.FormattedGame) (uint, error)
}

// ErrorDialog is the dismissible overlay shown when the backend rejects a game
type ErrorDialog struct {
	Message string
	Show    bool
}

// Deps are the collaborators of a Form
type Deps struct {
	Alerts    Alerter
	Session   SessionReader
	Submitter Submitter
	Clock     clock.Clock
	OnClose   func()
}

// Form holds a single game draft, validates it on submission and sends it
// to the backend.
type Form struct {
	deps      Deps
	draft     domain.GameDraft
	state     State
	submitted bool
	open      bool
	dialog    ErrorDialog
	gameID    uint
}

// New creates an open, empty form
func New(deps Deps) *Form {
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	return &Form{deps: deps, open: true}
}

// Draft returns the current draft. Later edits never change a returned value.
func (f *Form) Draft() domain.GameDraft {
	return f.draft
}

// State returns where the draft is in its lifecycle
func (f *Form) State() State {
	return f.state
}

// IsOpen reports whether the form is still shown
func (f *Form) IsOpen() bool {
	return f.open
}

// ErrorDialog returns the error overlay state
func (f *Form) ErrorDialog() ErrorDialog {
	return f.dialog
}

// GameID is the id the backend assigned on the last successful submission
func (f *Form) GameID() uint {
	return f.gameID
}

// update replaces the draft with an edited copy
func (f *Form) update(edit func(d *domain.GameDraft)) {
	next := f.draft
	edit(&next)
	f.draft = next
	f.state = StateEditing
}

// SetGameName edits the game name
func (f *Form) SetGameName(name string) {
	f.update(func(d *domain.GameDraft) { d.GameName = name })
}

// SetStartDate edits the start date and clears the end date so it cannot be
// left inconsistent with the new start
func (f *Form) SetStartDate(date time.Time) {
	f.update(func(d *domain.GameDraft) { d.StartDate = &date })
	f.update(func(d *domain.GameDraft) { d.EndDate = nil })
}

// SetEndDate edits the end date
func (f *Form) SetEndDate(date time.Time) {
	f.update(func(d *domain.GameDraft) { d.EndDate = &date })
}

// SetMaxPlayers edits the player cap
func (f *Form) SetMaxPlayers(n int) {
	f.update(func(d *domain.GameDraft) { d.MaxPlayers = &n })
}

// Reset empties the draft and forgets the previous submission attempt
func (f *Form) Reset() {
	f.draft = domain.GameDraft{}
	f.submitted = false
	f.state = StateEmpty
	f.dialog = ErrorDialog{}
}

// FieldErrors maps unset fields to their "required" message once a
// submission was attempted, and is empty before that
func (f *Form) FieldErrors() map[string]string {
	if !f.submitted {
		return map[string]string{}
	}
	return f.draft.MissingFields()
}

// Submit validates the draft and, when it passes, sends it to the backend
// exactly once. Validation failures are alerted and returned without any
// network call. A backend failure opens the error dialog and is returned.
func (f *Form) Submit(ctx context.Context) error {
	f.submitted = true

	userID, ok := f.sessionUserID()
	if !ok {
		f.state = StateSubmittedInvalid
		f.deps.Alerts.ShowAlert(MsgNotLoggedIn, SeverityError)
		return ErrNotSignedIn
	}

	if err := f.draft.Validate(f.deps.Clock.Now()); err != nil {
		f.state = StateSubmittedInvalid
		f.deps.Alerts.ShowAlert(err.Error(), SeverityWarning)
		return err
	}
	f.state = StateSubmittedValid

	gameID, err := f.deps.Submitter.HostGame(ctx, userID, f.draft.Format())
	if err != nil {
		f.dialog = ErrorDialog{Message: dialogMessage(err), Show: true}
		return err
	}
	f.gameID = gameID
	f.deps.Alerts.ShowAlert(MsgHosted, SeveritySuccess)
	f.Close()
	return nil
}

// CloseErrorDialog dismisses the error overlay
func (f *Form) CloseErrorDialog() {
	f.dialog = ErrorDialog{}
}

// Close hides the form
func (f *Form) Close() {
	f.open = false
	if f.deps.OnClose != nil {
		f.deps.OnClose()
	}
}

// dialogMessage is the server's own explanation of a failed submission, or
// MsgUnexpected when there is none
func dialogMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgUnexpected
}

func (f *Form) sessionUserID() (uint, bool) {
	raw, ok := f.deps.Session.GetItem(localstore.KeyUserID)
	if !ok || raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
