package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"secret_santa/internal/hostgame"
)

// Accepted date inputs, ISO first then the form's MM/dd/yyyy
var dateLayouts = []string{"2006-01-02", "01/02/2006"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or MM/DD/YYYY", s)
}

// printAlerts writes form alerts to the terminal
type printAlerts struct {
	w io.Writer
}

func (p printAlerts) ShowAlert(message string, severity hostgame.Severity) {
	fmt.Fprintf(p.w, "[%s] %s\n", severity, message)
}

func newHostCmd(a *app) *cobra.Command {
	var name, start, end string
	var maxPlayers int
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Host a new gift exchange",
		Long: `Host a new gift exchange. The start date must be tomorrow or later,
the end date after the start date and at least 2 players are needed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := hostgame.New(hostgame.Deps{
				Alerts:    printAlerts{w: a.out},
				Session:   a.store,
				Submitter: a.client,
			})

			// Apply only the fields that were given, like a partly filled form
			if cmd.Flags().Changed("name") {
				form.SetGameName(name)
			}
			if cmd.Flags().Changed("start") {
				t, err := parseDate(start)
				if err != nil {
					return err
				}
				form.SetStartDate(t)
			}
			if cmd.Flags().Changed("end") {
				t, err := parseDate(end)
				if err != nil {
					return err
				}
				form.SetEndDate(t)
			}
			if cmd.Flags().Changed("max-players") {
				form.SetMaxPlayers(maxPlayers)
			}

			if err := form.Submit(cmd.Context()); err != nil {
				printFieldErrors(a.out, form.FieldErrors())
				if dialog := form.ErrorDialog(); dialog.Show {
					return errors.New(dialog.Message)
				}
				return err
			}
			fmt.Fprintf(a.out, "Game id %d\n", form.GameID())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Game name")
	cmd.Flags().StringVar(&start, "start", "", "Start date")
	cmd.Flags().StringVar(&end, "end", "", "End date")
	cmd.Flags().IntVar(&maxPlayers, "max-players", 0, "Maximum number of players")
	return cmd
}

func printFieldErrors(w io.Writer, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "  %s: %s\n", f, errs[f])
	}
}
