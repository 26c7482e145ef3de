package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zos-apps/assistant/internal/config"
	"github.com/zos-apps/assistant/internal/render"
)

var initFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
	Long: `Show the resolved configuration and where it is loaded from.

With --init, write the default configuration file so it can be edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initFlag {
			return initConfig()
		}
		return showConfig()
	},
}

func init() {
	configCmd.Flags().BoolVar(&initFlag, "init", false, "Write the default config file")
}

func showConfig() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if configFlag != "" {
		path = configFlag
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Printf("Config file: %s\n", path)
	fmt.Printf("Available themes: %v\n\n", render.TUIThemeNames())
	fmt.Println(string(data))
	return nil
}

func initConfig() error {
	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
