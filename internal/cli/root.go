package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"secret_santa/internal/client"
	"secret_santa/internal/localstore"
	"secret_santa/internal/session"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	StorePath string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("SANTA_SERVER", "http://localhost:8080"),
		StorePath: getEnvOrDefault("SANTA_STORE", localstore.DefaultPath()),
	}
}

// app is what every command runs against, built once per invocation
type app struct {
	cfg    *Config
	out    io.Writer
	store  *localstore.Store
	auth   *session.LocalAuth
	sess   *session.Context
	client *client.Client
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "santa",
		Short: "Terminal client for the Secret Santa gift exchange",
		Long: `santa talks to the Secret Santa API: sign in, host a gift exchange
and manage the wishlist attached to each game.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.ServerURL, "server", a.cfg.ServerURL, "Server URL (env: SANTA_SERVER)")
	rootCmd.PersistentFlags().StringVar(&a.cfg.StorePath, "store", a.cfg.StorePath, "Local session file (env: SANTA_STORE)")
	rootCmd.PersistentFlags().BoolVarP(&a.cfg.Verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newRegisterCmd(a))
	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newWhoamiCmd(a))
	rootCmd.AddCommand(newHostCmd(a))
	rootCmd.AddCommand(newGamesCmd(a))
	rootCmd.AddCommand(newWishlistCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if a.cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	store, err := localstore.Open(a.cfg.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	a.store = store
	a.auth = session.NewLocalAuth(store)
	a.sess = session.NewContext(a.auth, session.NavigatorFunc(func(route string) {
		logrus.WithField("route", route).Debug("Navigate")
	}))
	a.sess.Init()
	a.client = client.NewClient(a.cfg.ServerURL, a.auth.Token())
	logrus.WithFields(logrus.Fields{
		"server": a.cfg.ServerURL,
		"store":  a.cfg.StorePath,
	}).Debug("Client ready")
	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
