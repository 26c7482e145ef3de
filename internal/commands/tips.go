package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zos-apps/assistant/internal/widget"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "List the configured tip cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tips := widgetOptions(cfg).Tips
		if len(tips) == 0 {
			tips = widget.DefaultTips()
		}

		for i, tip := range tips {
			if tip.Icon != "" {
				fmt.Printf("%2d. %s  %s\n", i+1, tip.Icon, tip.Text)
			} else {
				fmt.Printf("%2d. %s\n", i+1, tip.Text)
			}
		}
		return nil
	},
}
