package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secret_santa/internal/domain"
)

func newGamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the games you host",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.sess.User() == nil {
				return errNotSignedIn
			}
			games, err := a.client.HostedGames(cmd.Context())
			if err != nil {
				return err
			}
			if len(games) == 0 {
				fmt.Fprintln(a.out, "No hosted games")
				return nil
			}
			for _, g := range games {
				fmt.Fprintf(a.out, "%d\t%s\t%s..%s\t%d players\n",
					g.ID, g.GameName, domain.FormatDate(g.StartDate), domain.FormatDate(g.EndDate), g.MaxPlayers)
			}
			return nil
		},
	}
}
