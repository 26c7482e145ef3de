// Package commands provides the CLI host for the assistant widget.
package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zos-apps/assistant/internal/config"
	"github.com/zos-apps/assistant/internal/render"
	"github.com/zos-apps/assistant/internal/widget"
)

var (
	// Global flags
	nameFlag   string
	themeFlag  string
	configFlag string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Embeddable AI Assistant chat widget",
	Long: `assistant hosts the AI Assistant chat widget in the terminal.

The widget cycles through tips until you open the chat view, where typed
messages are answered with canned responses after a simulated delay.
Everything is local: no model, no network, no saved history.

Examples:
  assistant                       Run the widget full screen
  assistant ask "Hello there"     One-shot question and canned reply
  assistant tips                  List the configured tip cycle
  assistant config --init         Write the default config file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("assistant %s (built %s)\n", Version, BuildTime)
			return nil
		}
		return runWidget()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&nameFlag, "name", "n", "", "Assistant display name")
	rootCmd.PersistentFlags().StringVarP(&themeFlag, "theme", "t", "", "Widget color theme (tokyonight, catppuccin, nord, or path to a JSON theme)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default ~/.assistant/config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tipsCmd)
}

// loadConfig resolves the configuration, honoring --config.
func loadConfig() (config.Config, error) {
	if configFlag != "" {
		return config.LoadConfigFile(configFlag)
	}
	return config.LoadConfig()
}

// applyTheme activates the widget color theme: flag beats config file.
func applyTheme(cfg config.Config) {
	theme := cfg.TUITheme
	if themeFlag != "" {
		theme = themeFlag
	}
	if theme == "" {
		return
	}
	if !render.SetTUITheme(theme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme '%s', using default\n", theme)
		return
	}
	widget.UpdateTheme()
}

// widgetOptions converts configuration into widget construction options.
func widgetOptions(cfg config.Config) widget.Options {
	opts := widget.Options{
		Name:      cfg.DisplayName,
		Welcome:   cfg.WelcomeMessage,
		ModelRef:  cfg.ModelRef,
		Responses: cfg.Responses,
	}
	if nameFlag != "" {
		opts.Name = nameFlag
	}
	if cfg.AvatarGlyph != "" {
		opts.Avatar = widget.GlyphAvatar(cfg.AvatarGlyph)
	}
	for _, tip := range cfg.Tips {
		opts.Tips = append(opts.Tips, widget.Tip{Text: tip.Text, Icon: tip.Icon})
	}
	return opts
}

// runWidget mounts the widget full screen.
func runWidget() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyTheme(cfg)

	m := widget.New(widgetOptions(cfg))

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
