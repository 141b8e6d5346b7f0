package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/lightcycles/config"
	"github.com/battlesnakeio/lightcycles/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "lightcycles",
	Short:             "lightcycles is a multiplayer light cycle game for the browser and the terminal",
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	v        = config.New()
	cfg      config.Config
	apiAddr  = "http://localhost:3005"
	logLevel = "info"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "api-addr", apiAddr, "address of the api server")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	if err := config.AddFlags(rootCmd.PersistentFlags(), v); err != nil {
		log.WithError(err).Fatal("unable to register flags")
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(c *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(lvl)

	cfg, err = config.Load(v)
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Println("lightcycles", version.Version)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
