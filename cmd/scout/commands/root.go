package commands

import (
	"github.com/spf13/cobra"

	"contact-scout/internal/config"
	"contact-scout/internal/logger"
)

var cfg *config.Config

func Execute() error {
	root := &cobra.Command{
		Use:           "scout",
		Short:         "Rank candidate profiles against a known contact",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Init(cfg.Logger)
			return nil
		},
	}

	root.AddCommand(matchCmd())
	return root.Execute()
}
