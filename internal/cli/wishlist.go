package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"secret_santa/internal/domain"
)

func newWishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Read and add wishlist entries",
	}
	cmd.AddCommand(newWishlistShowCmd(a))
	cmd.AddCommand(newWishlistAddCmd(a))
	return cmd
}

func newWishlistShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [user-id]",
		Short: "Show a wishlist, your own by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.sess.User()
			if user == nil {
				return errNotSignedIn
			}
			userID := user.ID
			if len(args) == 1 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid user id %q", args[0])
				}
				userID = uint(id)
			}
			entries, err := a.client.GetUserWishlist(cmd.Context(), userID)
			if err != nil {
				return err
			}
			printed := 0
			for _, e := range entries {
				// The empty wishlist comes back as one all-null row
				if e.IsEmpty() {
					continue
				}
				fmt.Fprintf(a.out, "- %s %s\n", deref(e.WishName), deref(e.Link))
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(a.out, "Wishlist is empty")
			}
			return nil
		},
	}
}

func newWishlistAddCmd(a *app) *cobra.Command {
	var name, link string
	var gameID uint
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a wish to one of your games",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.sess.User()
			if user == nil {
				return errNotSignedIn
			}
			msg, err := a.client.CreateUserWishlist(cmd.Context(), user.ID, domain.Wish{ProductName: name, ProductLink: link}, gameID)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&link, "link", "", "Product link")
	cmd.Flags().UintVar(&gameID, "game", 0, "Game id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
