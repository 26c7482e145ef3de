package widget

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zos-apps/assistant/internal/render"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation. Messages are immutable once
// created and only ever appended.
type Message struct {
	Role    Role
	Content string
	At      time.Time
}

// Tip is a single entry in the rotating tip carousel.
type Tip struct {
	Text string
	Icon string
}

// Rotation and reply timing. The tip carousel advances through a
// three-phase crossfade: dim, advance, settle.
const (
	tipInterval    = 8 * time.Second
	tipFadeDelay   = 400 * time.Millisecond
	tipSettleDelay = 100 * time.Millisecond
)

// view selects which of the two mutually exclusive layouts is shown.
type view int

const (
	viewTips view = iota
	viewChat
)

// Timer messages. Tip messages carry the rotation generation they were
// scheduled under; a stale generation means the carousel was suspended or
// restarted in the meantime and the message must be dropped.
type (
	tipTickMsg    struct{ gen int }
	tipAdvanceMsg struct{ gen int }
	tipSettleMsg  struct{ gen int }
	replyMsg      struct{ content string }
)

// Options configures a widget instance. Every field is optional; zero
// values fall back to the built-in defaults.
type Options struct {
	// Name is the assistant's display name. Default: "AI Assistant".
	Name string
	// Avatar is shown in the tips view (large) and chat header (small).
	// The zero value renders the default glyph badge.
	Avatar Avatar
	// Tips is the ordered carousel cycle. Default: DefaultTips().
	Tips []Tip
	// Responses is the canned reply pool. Default: DefaultResponses().
	Responses []string
	// Welcome is the first assistant message. Default interpolates Name.
	Welcome string
	// ModelRef is an informational model label. Display-only; it is never
	// dereferenced or fetched.
	ModelRef string
}

// DefaultName is the display name used when Options.Name is empty.
const DefaultName = "AI Assistant"

const defaultWelcomeFormat = "Hi! I'm %s. Ask me anything."

// DefaultTips returns the built-in tip cycle.
func DefaultTips() []Tip {
	return []Tip{
		{Text: "Press enter to start a conversation", Icon: "💬"},
		{Text: "Your chat history stays on this screen only", Icon: "🔒"},
		{Text: "Press ctrl+y in chat to copy the last reply", Icon: "📋"},
		{Text: "Press ctrl+b to tuck this bubble away", Icon: "👀"},
	}
}

// DefaultResponses returns the built-in canned reply pool.
func DefaultResponses() []string {
	return []string{
		"That's an interesting question! Let me think about it...",
		"I see what you mean. Here's my take on it.",
		"Good point! Have you considered looking at it another way?",
		"Thanks for sharing that with me.",
		"I'm here to help with whatever you need!",
		"Hmm, let me process that for a moment.",
	}
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if len(o.Tips) == 0 {
		o.Tips = DefaultTips()
	}
	if len(o.Responses) == 0 {
		o.Responses = DefaultResponses()
	}
	if o.Welcome == "" {
		o.Welcome = fmt.Sprintf(defaultWelcomeFormat, o.Name)
	}
	return o
}

// Model is the widget controller. It owns all view state for one mounted
// instance; nothing is shared between instances.
type Model struct {
	opts      Options
	responder *Responder

	// UI components
	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	// View state
	view        view
	tipIndex    int
	animating   bool
	bubbleShown bool
	typing      bool
	messages    []Message

	// rotation is the tip-timer generation. Every transition that suspends
	// or restarts the carousel bumps it, invalidating pending ticks.
	rotation int

	now func() time.Time

	// Dimensions
	width  int
	height int
	ready  bool
}

// Option customizes a Model beyond what Options covers.
type Option func(*Model)

// WithRand sets the random source used for reply selection and delay
// sampling. Useful for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) {
		m.responder = NewResponder(m.opts.Responses, rng)
	}
}

// WithClock sets the time source for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a widget model. If the message sequence is empty the welcome
// message is appended as the single initial assistant entry.
func New(opts Options, modelOpts ...Option) Model {
	opts = opts.withDefaults()

	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = typingStyle

	m := Model{
		opts:        opts,
		input:       ta,
		spinner:     s,
		view:        viewTips,
		bubbleShown: true,
		now:         time.Now,
	}

	for _, opt := range modelOpts {
		opt(&m)
	}

	if m.responder == nil {
		m.responder = NewResponder(opts.Responses, rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	if len(m.messages) == 0 {
		m.messages = append(m.messages, Message{
			Role:    RoleAssistant,
			Content: opts.Welcome,
			At:      m.now(),
		})
	}

	return m
}

// Messages returns a copy of the conversation so far, oldest first.
func (m Model) Messages() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// TipIndex returns the index of the tip currently displayed.
func (m Model) TipIndex() int { return m.tipIndex }

// InChat reports whether the chat layout is active.
func (m Model) InChat() bool { return m.view == viewChat }

// Typing reports whether the typing indicator is shown.
func (m Model) Typing() bool { return m.typing }

// BubbleShown reports whether the tip bubble is visible.
func (m Model) BubbleShown() bool { return m.bubbleShown }

// Init starts the cursor blink and the tip carousel.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.tickRotation(),
	)
}

// tickRotation schedules the next carousel cycle under the current
// generation.
func (m Model) tickRotation() tea.Cmd {
	gen := m.rotation
	return tea.Tick(tipInterval, func(time.Time) tea.Msg {
		return tipTickMsg{gen: gen}
	})
}

func tipPhase(d time.Duration, msg func() tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg() })
}

// rotationActive reports whether carousel ticks should act at all.
func (m Model) rotationActive(gen int) bool {
	return gen == m.rotation && m.view == viewTips && m.bubbleShown
}

// Update handles messages and advances the widget state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.input.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.input.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		if m.view == viewTips {
			return m.updateTips(msg)
		}
		return m.updateChat(msg)

	case tipTickMsg:
		if !m.rotationActive(msg.gen) {
			return m, nil
		}
		m.animating = true
		gen := msg.gen
		return m, tipPhase(tipFadeDelay, func() tea.Msg { return tipAdvanceMsg{gen: gen} })

	case tipAdvanceMsg:
		if !m.rotationActive(msg.gen) {
			return m, nil
		}
		m.tipIndex = (m.tipIndex + 1) % len(m.opts.Tips)
		gen := msg.gen
		return m, tipPhase(tipSettleDelay, func() tea.Msg { return tipSettleMsg{gen: gen} })

	case tipSettleMsg:
		if !m.rotationActive(msg.gen) {
			return m, nil
		}
		m.animating = false
		return m, m.tickRotation()

	case replyMsg:
		// Replies always land, even if the user closed the chat view or
		// sent again in the meantime.
		m.messages = append(m.messages, Message{
			Role:    RoleAssistant,
			Content: msg.content,
			At:      m.now(),
		})
		m.typing = false
		m.updateViewport()
		if m.view == viewChat {
			m.viewport.GotoBottom()
		}
		return m, nil

	case spinner.TickMsg:
		if m.typing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateTips handles keys while the tips layout is active.
func (m Model) updateTips(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, tea.Quit

	case "enter", " ":
		return m.openChat()

	case "ctrl+b":
		m.rotation++
		m.animating = false
		m.bubbleShown = !m.bubbleShown
		if m.bubbleShown {
			return m, m.tickRotation()
		}
		return m, nil
	}
	return m, nil
}

// updateChat handles keys while the chat layout is active.
func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeChat()

	case "enter":
		return m.send()

	case "ctrl+y":
		m.copyLastReply()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// openChat switches to the chat layout, hiding the tip bubble and
// suspending the carousel.
func (m Model) openChat() (tea.Model, tea.Cmd) {
	m.view = viewChat
	m.bubbleShown = false
	m.animating = false
	m.rotation++
	m.input.Focus()
	m.updateViewport()
	m.viewport.GotoBottom()
	return m, textarea.Blink
}

// closeChat returns to the tips layout. The tip index is kept, but the
// carousel restarts fresh: a full interval passes before the next advance.
func (m Model) closeChat() (tea.Model, tea.Cmd) {
	m.view = viewTips
	m.bubbleShown = true
	m.animating = false
	m.rotation++
	return m, m.tickRotation()
}

// send validates and commits the input buffer. A whitespace-only buffer is
// a silent no-op. Each send schedules its own reply timer; overlapping
// sends are never coalesced.
func (m Model) send() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.messages = append(m.messages, Message{
		Role:    RoleUser,
		Content: text,
		At:      m.now(),
	})
	m.input.Reset()
	m.typing = true
	m.updateViewport()
	m.viewport.GotoBottom()

	reply := m.responder.Pick()
	delay := m.responder.Delay()
	replyCmd := tea.Tick(delay, func(time.Time) tea.Msg {
		return replyMsg{content: reply}
	})

	return m, tea.Batch(replyCmd, m.spinner.Tick)
}

// copyLastReply puts the newest assistant message on the system clipboard.
func (m Model) copyLastReply() {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Role == RoleAssistant {
			_ = clipboard.WriteAll(m.messages[i].Content)
			return
		}
	}
}

// updateViewport refreshes the viewport content with styled messages.
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.messages {
		if i > 0 {
			content.WriteString("\n")
		}

		stamp := timestampStyle.Render(msg.At.Format("15:04"))

		if msg.Role == RoleUser {
			label := userLabelStyle.Render("⬤ You") + " " + stamp
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ "+m.opts.Name) + " " + stamp

			rendered, err := render.MarkdownWithWidth(msg.Content, bubbleWidth-4)
			if err != nil {
				rendered = msg.Content
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}
