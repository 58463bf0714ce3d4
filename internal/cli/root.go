package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

const defaultConfigPath = "config.toml"

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "reservation-engine",
		Short:         "Provider shifts, bookable 15-minute slots and reservations with a confirmation hold",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the TOML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newShiftCmd(&configPath))
	root.AddCommand(newSlotsCmd(&configPath))
	root.AddCommand(newReserveCmd(&configPath))
	root.AddCommand(newConfirmCmd(&configPath))
	root.AddCommand(newReservationsCmd(&configPath))
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", Version, CommitSHA)
		},
	}
}
