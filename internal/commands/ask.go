package commands

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zos-apps/assistant/internal/render"
	"github.com/zos-apps/assistant/internal/widget"
)

var rawFlag bool

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask a one-shot question",
	Long: `Send a single message and print the canned reply.

The reply is drawn from the configured response pool after the same
simulated delay the widget uses.

Examples:
  assistant ask "What can you do?"
  echo "Hello" | assistant ask
  assistant ask "Hello" --raw`,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		// Fall back to stdin when no argument was given
		if message == "" {
			stat, _ := os.Stdin.Stat()
			if (stat.Mode() & os.ModeCharDevice) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				message = string(data)
			}
		}

		return runAsk(message)
	},
}

func init() {
	askCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the raw reply without decoration")
}

func runAsk(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message cannot be empty")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	responder := widget.NewResponder(cfg.Responses, rand.New(rand.NewSource(time.Now().UnixNano())))
	reply := responder.Pick()
	delay := responder.Delay()

	if rawFlag || !isStdoutTTY() {
		time.Sleep(delay)
		fmt.Println(reply)
		return nil
	}

	spin := newSpinner("Thinking")
	spin.start()
	time.Sleep(delay)
	spin.stopQuiet()

	name := cfg.DisplayName
	if name == "" {
		name = widget.DefaultName
	}

	contentWidth := getTerminalWidth() - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	renderOpts := render.LoadOptionsFromConfigWithWidth(contentWidth)
	rendered, err := render.Markdown(reply, renderOpts)
	if err != nil {
		rendered = reply
	}
	rendered = strings.TrimRight(rendered, "\n")

	fmt.Println(assistantLabelStyle.Render("✦ " + name))
	fmt.Println(assistantBubbleStyle.Width(contentWidth).Render(rendered))

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(reply); err == nil {
			fmt.Println(lipgloss.NewStyle().Foreground(colorTextDim).Render("  (copied to clipboard)"))
		}
	}

	return nil
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
