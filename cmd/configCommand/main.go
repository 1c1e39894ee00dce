package configCommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adventcli/aoc/domain/repository/config"
)

type ConfigCommand struct {
	CobraCommand *cobra.Command
}

func NewConfigCommand(configRepository config.Repository) *ConfigCommand {
	var initFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFlag {
				if path, err := configRepository.Locate(); err == nil {
					return fmt.Errorf("config file already exists at %s", path)
				}

				path, err := configRepository.DefaultPath()
				if err != nil {
					return err
				}

				if err := configRepository.WriteDefault(path); err != nil {
					return err
				}

				fmt.Printf("Created %s\n", path)
				return nil
			}

			path, err := configRepository.Locate()
			if err != nil {
				return err
			}
			cfg, err := configRepository.Read(path)
			if err != nil {
				return err
			}

			fmt.Printf("config file:   %s\n", path)
			fmt.Printf("template path: %s\n", cfg.TemplatePath)
			if cfg.Cookie != "" {
				fmt.Println("cookie:        set")
			} else {
				fmt.Println("cookie:        not set")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFlag, "init", false, "create a default config file")

	return &ConfigCommand{CobraCommand: cmd}
}
