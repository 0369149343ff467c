package hostgame

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"secret_santa/internal/client"
	"secret_santa/internal/clock"
	"secret_santa/internal/domain"
	"secret_santa/internal/localstore"
)

type alert struct {
	message  string
	severity Severity
}

type recordingAlerts struct {
	alerts []alert
}

func (r *recordingAlerts) ShowAlert(message string, severity Severity) {
	r.alerts = append(r.alerts, alert{message, severity})
}

func (r *recordingAlerts) last() alert {
	if len(r.alerts) == 0 {
		return alert{}
	}
	return r.alerts[len(r.alerts)-1]
}

type mapSession map[string]string

func (m mapSession) GetItem(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

type submission struct {
	userID uint
	game   domain.FormattedGame
}

type fakeSubmitter struct {
	calls []submission
	err   error
}

func (f *fakeSubmitter) HostGame(_ context.Context, userID uint, game domain.FormattedGame) (uint, error) {
	f.calls = append(f.calls, submission{userID, game})
	if f.err != nil {
		return 0, f.err
	}
	return 99, nil
}

type FormSuite struct {
	suite.Suite
	alerts    *recordingAlerts
	session   mapSession
	submitter *fakeSubmitter
	clock     *clock.FixedClock
	closed    int
	form      *Form
	ctx       context.Context
	today     time.Time
}

func TestFormSuite(t *testing.T) {
	suite.Run(t, new(FormSuite))
}

func (s *FormSuite) SetupTest() {
	s.alerts = &recordingAlerts{}
	s.session = mapSession{localstore.KeyUserID: "42"}
	s.submitter = &fakeSubmitter{}
	s.closed = 0
	s.today = time.Date(2030, 11, 1, 10, 0, 0, 0, time.UTC)
	s.clock = clock.NewFixed(s.today)
	s.form = New(Deps{
		Alerts:    s.alerts,
		Session:   s.session,
		Submitter: s.submitter,
		Clock:     s.clock,
		OnClose:   func() { s.closed++ },
	})
	s.ctx = context.Background()
}

func (s *FormSuite) day(offset int) time.Time {
	return s.today.AddDate(0, 0, offset)
}

func (s *FormSuite) fill(start, end time.Time, players int) {
	s.form.SetGameName("Office exchange")
	s.form.SetStartDate(start)
	s.form.SetEndDate(end)
	s.form.SetMaxPlayers(players)
}

func (s *FormSuite) TestValidSubmissionCallsBackendOnce() {
	s.fill(s.day(1), s.day(8), 6)

	s.Require().NoError(s.form.Submit(s.ctx))
	s.Require().Len(s.submitter.calls, 1)
	call := s.submitter.calls[0]
	s.Equal(uint(42), call.userID)
	s.Equal(domain.FormattedGame{GameName: "Office exchange", StartDate: "2030-11-02", EndDate: "2030-11-09", MaxPlayers: 6}, call.game)
	s.Equal(StateSubmittedValid, s.form.State())
	s.Equal(alert{MsgHosted, SeveritySuccess}, s.alerts.last())
	s.False(s.form.IsOpen())
	s.Equal(1, s.closed)
	s.Equal(uint(99), s.form.GameID())
}

func (s *FormSuite) TestDatesAreSentWithoutTimeOfDay() {
	zone := time.FixedZone("AEST", 10*60*60)
	start := time.Date(2030, 11, 2, 0, 30, 0, 0, zone)
	end := time.Date(2030, 11, 3, 23, 45, 0, 0, zone)
	s.fill(start, end, 3)

	s.Require().NoError(s.form.Submit(s.ctx))
	s.Equal("2030-11-02", s.submitter.calls[0].game.StartDate)
	s.Equal("2030-11-03", s.submitter.calls[0].game.EndDate)
}

func (s *FormSuite) TestMissingFieldRejectedLocally() {
	cases := map[string]func(){
		"name":        func() { s.form.SetStartDate(s.day(1)); s.form.SetEndDate(s.day(2)); s.form.SetMaxPlayers(3) },
		"start date":  func() { s.form.SetGameName("x"); s.form.SetEndDate(s.day(2)); s.form.SetMaxPlayers(3) },
		"end date":    func() { s.form.SetGameName("x"); s.form.SetStartDate(s.day(1)); s.form.SetMaxPlayers(3) },
		"max players": func() { s.form.SetGameName("x"); s.form.SetStartDate(s.day(1)); s.form.SetEndDate(s.day(2)) },
	}
	for name, fill := range cases {
		s.Run(name, func() {
			s.form.Reset()
			s.submitter.calls = nil
			fill()

			err := s.form.Submit(s.ctx)
			s.Require().Error(err)
			s.Equal(domain.MsgFillAllFields, err.Error())
			s.Equal(alert{domain.MsgFillAllFields, SeverityWarning}, s.alerts.last())
			s.Empty(s.submitter.calls)
			s.Equal(StateSubmittedInvalid, s.form.State())
			s.True(s.form.IsOpen())
		})
	}
}

func (s *FormSuite) TestStartDateBoundary() {
	s.fill(s.today, s.day(3), 3)
	err := s.form.Submit(s.ctx)
	s.Require().Error(err)
	s.Equal(domain.MsgStartDate, err.Error())
	s.Empty(s.submitter.calls)

	lateToday := time.Date(2030, 11, 1, 23, 59, 0, 0, time.UTC)
	s.fill(lateToday, s.day(3), 3)
	s.Error(s.form.Submit(s.ctx))
	s.Empty(s.submitter.calls)

	s.fill(s.day(1), s.day(3), 3)
	s.NoError(s.form.Submit(s.ctx))
	s.Len(s.submitter.calls, 1)
}

func (s *FormSuite) TestStartDateCheckedAgainstClockAtSubmit() {
	s.fill(s.day(1), s.day(3), 3)
	s.clock.Advance(24 * time.Hour)

	err := s.form.Submit(s.ctx)
	s.Require().Error(err)
	s.Equal(domain.MsgStartDate, err.Error())
	s.Empty(s.submitter.calls)
}

func (s *FormSuite) TestEndDateBoundary() {
	s.fill(s.day(2), s.day(2), 3)
	err := s.form.Submit(s.ctx)
	s.Require().Error(err)
	s.Equal(domain.MsgEndDate, err.Error())
	s.Empty(s.submitter.calls)

	s.fill(s.day(2), s.day(3), 3)
	s.NoError(s.form.Submit(s.ctx))
	s.Len(s.submitter.calls, 1)
}

func (s *FormSuite) TestMaxPlayersThreshold() {
	for _, n := range []int{0, 1, -3} {
		s.fill(s.day(1), s.day(2), n)
		err := s.form.Submit(s.ctx)
		s.Require().Error(err)
		s.Equal(domain.MsgMaxPlayers, err.Error())
	}
	s.Empty(s.submitter.calls)

	s.fill(s.day(1), s.day(2), 2)
	s.NoError(s.form.Submit(s.ctx))
	s.Len(s.submitter.calls, 1)
}

func (s *FormSuite) TestChangingStartDateClearsEndDate() {
	s.form.SetStartDate(s.day(1))
	s.form.SetEndDate(s.day(4))
	s.NotNil(s.form.Draft().EndDate)

	s.form.SetStartDate(s.day(2))
	s.Nil(s.form.Draft().EndDate)
	s.Require().NotNil(s.form.Draft().StartDate)
	s.True(s.form.Draft().StartDate.Equal(s.day(2)))
}

func (s *FormSuite) TestEditsDoNotMutatePreviousDraft() {
	s.form.SetGameName("before")
	s.form.SetStartDate(s.day(1))
	before := s.form.Draft()

	s.form.SetGameName("after")
	s.form.SetStartDate(s.day(5))

	s.Equal("before", before.GameName)
	s.True(before.StartDate.Equal(s.day(1)))
	s.Equal("after", s.form.Draft().GameName)
}

func (s *FormSuite) TestNotSignedInAbortsBeforeValidation() {
	delete(s.session, localstore.KeyUserID)

	err := s.form.Submit(s.ctx)
	s.ErrorIs(err, ErrNotSignedIn)
	s.Equal(alert{MsgNotLoggedIn, SeverityError}, s.alerts.last())
	s.Len(s.alerts.alerts, 1)
	s.Empty(s.submitter.calls)
}

func (s *FormSuite) TestBackendFailureShowsErrorDialog() {
	s.submitter.err = &client.APIError{Status: http.StatusBadRequest, Message: "Duplicate game name"}
	s.fill(s.day(1), s.day(2), 4)

	err := s.form.Submit(s.ctx)
	s.Require().Error(err)
	s.Equal(ErrorDialog{Message: "Duplicate game name", Show: true}, s.form.ErrorDialog())
	s.True(s.form.IsOpen())
	s.Zero(s.closed)
	s.Empty(s.alerts.alerts)

	s.form.CloseErrorDialog()
	s.Equal(ErrorDialog{}, s.form.ErrorDialog())
}

func (s *FormSuite) TestBackendFailureWithoutMessageUsesFallback() {
	s.submitter.err = errors.New("connection reset")
	s.fill(s.day(1), s.day(2), 4)

	s.Error(s.form.Submit(s.ctx))
	s.Equal(ErrorDialog{Message: MsgUnexpected, Show: true}, s.form.ErrorDialog())
	s.True(s.form.IsOpen())
}

// submitThrough sends a valid draft through a real API client pointed at url
func (s *FormSuite) submitThrough(url string) error {
	s.form = New(Deps{
		Alerts:    s.alerts,
		Session:   s.session,
		Submitter: client.NewClient(url, "token"),
		Clock:     s.clock,
	})
	s.fill(s.day(1), s.day(2), 4)
	return s.form.Submit(s.ctx)
}

func (s *FormSuite) TestBareServerErrorUsesFallback() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s.Error(s.submitThrough(srv.URL))
	s.Equal(ErrorDialog{Message: MsgUnexpected, Show: true}, s.form.ErrorDialog())
	s.True(s.form.IsOpen())
}

func (s *FormSuite) TestServerErrorMessageIsShown() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Table 'games' doesn't exist"}`))
	}))
	defer srv.Close()

	s.Error(s.submitThrough(srv.URL))
	s.Equal("Table 'games' doesn't exist", s.form.ErrorDialog().Message)
}

func (s *FormSuite) TestUnreachableServerUsesFallback() {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s.Error(s.submitThrough(url))
	s.Equal(MsgUnexpected, s.form.ErrorDialog().Message)
}

func (s *FormSuite) TestFieldErrorsOnlyAfterSubmit() {
	s.Empty(s.form.FieldErrors())
	s.Equal(StateEmpty, s.form.State())

	_ = s.form.Submit(s.ctx)
	errs := s.form.FieldErrors()
	s.Len(errs, 4)
	s.Equal(domain.MsgNameRequired, errs[domain.FieldGameName])

	s.form.SetGameName("x")
	s.Equal(StateEditing, s.form.State())
	s.Len(s.form.FieldErrors(), 3)

	s.form.Reset()
	s.Empty(s.form.FieldErrors())
	s.Equal(StateEmpty, s.form.State())
	s.Equal(domain.GameDraft{}, s.form.Draft())
}
