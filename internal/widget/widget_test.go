package widget

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts,
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }),
	)
	// Size the components the way the program's first WindowSizeMsg would
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func enterChat(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed := updated.(Model)
	if !typed.InChat() {
		t.Fatal("Enter from tips view should open chat")
	}
	return typed
}

func TestNewAppendsWelcomeMessage(t *testing.T) {
	m := testModel(t, Options{})

	msgs := m.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Expected exactly 1 message after construction, got %d", len(msgs))
	}
	if msgs[0].Role != RoleAssistant {
		t.Errorf("Welcome message role = %s, want %s", msgs[0].Role, RoleAssistant)
	}
	want := fmt.Sprintf(defaultWelcomeFormat, DefaultName)
	if msgs[0].Content != want {
		t.Errorf("Welcome message = %q, want %q", msgs[0].Content, want)
	}
}

func TestNewWelcomeInterpolatesName(t *testing.T) {
	m := testModel(t, Options{Name: "Clippy"})

	got := m.Messages()[0].Content
	if !strings.Contains(got, "Clippy") {
		t.Errorf("Welcome message %q should contain the configured name", got)
	}
}

func TestNewCustomWelcome(t *testing.T) {
	m := testModel(t, Options{Welcome: "Custom greeting"})

	if got := m.Messages()[0].Content; got != "Custom greeting" {
		t.Errorf("Welcome message = %q, want %q", got, "Custom greeting")
	}
}

func TestSendWhitespaceOnlyIsNoOp(t *testing.T) {
	m := testModel(t, Options{})
	m = enterChat(t, m)

	m.input.SetValue("  ")
	before := len(m.Messages())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed := updated.(Model)

	if len(typed.Messages()) != before {
		t.Errorf("Whitespace-only send changed the message count: %d -> %d", before, len(typed.Messages()))
	}
	if typed.input.Value() != "  " {
		t.Errorf("Whitespace-only send changed the input buffer: %q", typed.input.Value())
	}
	if typed.Typing() {
		t.Error("Whitespace-only send should not start the typing indicator")
	}
}

func TestSendAppendsTrimmedUserMessage(t *testing.T) {
	m := testModel(t, Options{})
	m = enterChat(t, m)

	m.input.SetValue("  Hello  ")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed := updated.(Model)

	msgs := typed.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != RoleUser {
		t.Errorf("Last message role = %s, want %s", last.Role, RoleUser)
	}
	if last.Content != "Hello" {
		t.Errorf("Last message content = %q, want trimmed %q", last.Content, "Hello")
	}
	if typed.input.Value() != "" {
		t.Errorf("Input buffer should be cleared after send, got %q", typed.input.Value())
	}
	if !typed.Typing() {
		t.Error("Typing indicator should be on after send")
	}
	if cmd == nil {
		t.Error("Send should schedule a reply command")
	}
}

func TestReplyArrivalAppendsAndClearsTyping(t *testing.T) {
	m := testModel(t, Options{Responses: []string{"Only reply"}})
	m = enterChat(t, m)

	m.input.SetValue("Hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed := updated.(Model)

	updated, _ = typed.Update(replyMsg{content: "Only reply"})
	typed = updated.(Model)

	msgs := typed.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != RoleAssistant {
		t.Errorf("Reply role = %s, want %s", last.Role, RoleAssistant)
	}
	if last.Content != "Only reply" {
		t.Errorf("Reply content = %q, want %q", last.Content, "Only reply")
	}
	if typed.Typing() {
		t.Error("Typing indicator should clear when the reply lands")
	}
}

func TestSendDeliversReplyFromPool(t *testing.T) {
	// End-to-end through the scheduled command: slow by design (1-2s).
	if testing.Short() {
		t.Skip("skipping delayed reply test in short mode")
	}

	pool := []string{"Only reply"}
	m := testModel(t, Options{Responses: pool})
	m = enterChat(t, m)

	m.input.SetValue("Hello")
	start := time.Now()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed := updated.(Model)

	reply, ok := collectReply(cmd())
	if !ok {
		t.Fatal("Send command should eventually produce a reply message")
	}
	elapsed := time.Since(start)
	if elapsed < ReplyDelayMin {
		t.Errorf("Reply arrived after %v, want at least %v", elapsed, ReplyDelayMin)
	}
	if elapsed > ReplyDelayMin+ReplyDelayJitter+500*time.Millisecond {
		t.Errorf("Reply arrived after %v, beyond the documented bound", elapsed)
	}

	updated, _ = typed.Update(reply)
	typed = updated.(Model)

	last := typed.Messages()[len(typed.Messages())-1]
	if last.Content != "Only reply" {
		t.Errorf("Reply content = %q, want the single pool entry", last.Content)
	}
}

// collectReply walks a command result tree looking for a replyMsg.
func collectReply(msg tea.Msg) (replyMsg, bool) {
	switch msg := msg.(type) {
	case replyMsg:
		return msg, true
	case tea.BatchMsg:
		for _, cmd := range msg {
			if cmd == nil {
				continue
			}
			if reply, ok := collectReply(cmd()); ok {
				return reply, true
			}
		}
	}
	return replyMsg{}, false
}

func TestSingleResponsePoolAlwaysReplies(t *testing.T) {
	m := testModel(t, Options{Responses: []string{"Only reply"}})
	m = enterChat(t, m)

	for i := 0; i < 5; i++ {
		m.input.SetValue(fmt.Sprintf("message %d", i))
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(Model)
		updated, _ = m.Update(replyMsg{content: m.responder.Pick()})
		m = updated.(Model)
	}

	for _, msg := range m.Messages()[1:] {
		if msg.Role == RoleAssistant && msg.Content != "Only reply" {
			t.Errorf("Assistant reply = %q, want %q", msg.Content, "Only reply")
		}
	}
}

func rotateOnce(t *testing.T, m Model) Model {
	t.Helper()
	gen := m.rotation
	for _, msg := range []tea.Msg{tipTickMsg{gen: gen}, tipAdvanceMsg{gen: gen}, tipSettleMsg{gen: gen}} {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestTipRotationAdvancesModulo(t *testing.T) {
	tips := []Tip{{Text: "one"}, {Text: "two"}, {Text: "three"}}
	m := testModel(t, Options{Tips: tips})

	for n := 1; n <= 7; n++ {
		m = rotateOnce(t, m)
		if m.TipIndex() != n%len(tips) {
			t.Fatalf("After %d cycles tip index = %d, want %d", n, m.TipIndex(), n%len(tips))
		}
	}
}

func TestTipRotationPhases(t *testing.T) {
	m := testModel(t, Options{})

	updated, cmd := m.Update(tipTickMsg{gen: m.rotation})
	typed := updated.(Model)
	if !typed.animating {
		t.Error("Tick should start the crossfade")
	}
	if cmd == nil {
		t.Fatal("Tick should schedule the advance phase")
	}

	updated, _ = typed.Update(tipAdvanceMsg{gen: typed.rotation})
	typed = updated.(Model)
	if typed.TipIndex() != 1 {
		t.Errorf("Advance phase tip index = %d, want 1", typed.TipIndex())
	}
	if !typed.animating {
		t.Error("Crossfade should still be active between advance and settle")
	}

	updated, cmd = typed.Update(tipSettleMsg{gen: typed.rotation})
	typed = updated.(Model)
	if typed.animating {
		t.Error("Settle phase should end the crossfade")
	}
	if cmd == nil {
		t.Error("Settle phase should schedule the next cycle")
	}
}

func TestStaleRotationTickIgnored(t *testing.T) {
	m := testModel(t, Options{})
	staleGen := m.rotation

	m = enterChat(t, m) // bumps the generation

	updated, cmd := m.Update(tipTickMsg{gen: staleGen})
	typed := updated.(Model)
	if typed.animating {
		t.Error("Stale tick must not start an animation")
	}
	if cmd != nil {
		t.Error("Stale tick must not schedule further phases")
	}

	updated, _ = typed.Update(tipAdvanceMsg{gen: staleGen})
	typed = updated.(Model)
	if typed.TipIndex() != 0 {
		t.Errorf("Stale advance moved the tip index to %d", typed.TipIndex())
	}
}

func TestRotationSuspendedInChatView(t *testing.T) {
	m := testModel(t, Options{})
	m = enterChat(t, m)

	updated, cmd := m.Update(tipTickMsg{gen: m.rotation})
	typed := updated.(Model)
	if typed.animating {
		t.Error("Rotation must not run while chat view is active")
	}
	if cmd != nil {
		t.Error("Rotation tick in chat view must not reschedule")
	}
}

func TestOpenChatHidesBubble(t *testing.T) {
	m := testModel(t, Options{})
	m = enterChat(t, m)

	if m.BubbleShown() {
		t.Error("Opening chat should hide the tip bubble")
	}
}

func TestCloseChatRestoresTipsAndKeepsMessages(t *testing.T) {
	m := testModel(t, Options{})
	m = rotateOnce(t, m) // tip index 1
	m = enterChat(t, m)

	m.input.SetValue("Hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	updated, _ = m.Update(replyMsg{content: "canned"})
	m = updated.(Model)
	count := len(m.Messages())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)

	if m.InChat() {
		t.Error("Escape should return to the tips view")
	}
	if !m.BubbleShown() {
		t.Error("Closing chat should reshow the tip bubble")
	}
	if m.TipIndex() != 1 {
		t.Errorf("Closing chat changed the tip index to %d, want 1", m.TipIndex())
	}
	if len(m.Messages()) != count {
		t.Errorf("Closing chat changed the message count: %d -> %d", count, len(m.Messages()))
	}
	if cmd == nil {
		t.Error("Closing chat should restart the rotation timer")
	}
}

func TestReplyLandsAfterChatClosed(t *testing.T) {
	m := testModel(t, Options{})
	m = enterChat(t, m)

	m.input.SetValue("Hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)

	before := len(m.Messages())
	updated, _ = m.Update(replyMsg{content: "late reply"})
	m = updated.(Model)

	if len(m.Messages()) != before+1 {
		t.Error("A reply in flight when chat closes must still land")
	}
}

func TestBubbleToggleSuspendsRotation(t *testing.T) {
	m := testModel(t, Options{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	typed := updated.(Model)
	if typed.BubbleShown() {
		t.Fatal("Ctrl+B should hide the bubble")
	}

	updated, cmd := typed.Update(tipTickMsg{gen: typed.rotation})
	typed = updated.(Model)
	if typed.animating || cmd != nil {
		t.Error("Rotation must not run while the bubble is hidden")
	}

	updated, cmd = typed.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	typed = updated.(Model)
	if !typed.BubbleShown() {
		t.Error("Ctrl+B again should reshow the bubble")
	}
	if cmd == nil {
		t.Error("Reshowing the bubble should restart the rotation timer")
	}
}

func TestMessagesAreAppendOnly(t *testing.T) {
	m := testModel(t, Options{})
	m = enterChat(t, m)

	first := m.Messages()[0]

	m.input.SetValue("Hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	updated, _ = m.Update(replyMsg{content: "canned"})
	m = updated.(Model)

	if got := m.Messages()[0]; got != first {
		t.Error("Earlier messages must never be mutated")
	}

	// Messages() hands out a copy, not the internal slice.
	msgs := m.Messages()
	msgs[0].Content = "mutated"
	if m.Messages()[0].Content == "mutated" {
		t.Error("Messages() must return a copy")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t, Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Ctrl+C should return a quit command")
	}
}

func TestQuitFromTipsView(t *testing.T) {
	m := testModel(t, Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Error("Escape in tips view should quit")
	}
}

func TestCopyLastReplyWithoutAssistantMessage(t *testing.T) {
	// No messages at all; must not panic.
	var m Model
	m.copyLastReply()
}

func TestViewNotReady(t *testing.T) {
	m := New(Options{})
	if view := m.View(); view == "" {
		t.Error("View before the first WindowSizeMsg should render a placeholder")
	}
}

func TestViewTipsShowsCurrentTip(t *testing.T) {
	m := testModel(t, Options{Tips: []Tip{{Text: "only tip", Icon: "💡"}}})

	view := m.View()
	if !strings.Contains(view, "only tip") {
		t.Error("Tips view should contain the current tip text")
	}
	if !strings.Contains(view, DefaultName) {
		t.Error("Tips view should contain the display name")
	}
}

func TestViewTipsHidesBubbleWhenToggled(t *testing.T) {
	m := testModel(t, Options{Tips: []Tip{{Text: "only tip"}}})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	m = updated.(Model)

	if strings.Contains(m.View(), "only tip") {
		t.Error("Hidden bubble should not render the tip text")
	}
}

func TestViewChatShowsMessages(t *testing.T) {
	m := testModel(t, Options{})
	m = enterChat(t, m)

	m.input.SetValue("Hello there")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "Hello there") {
		t.Error("Chat view should contain the sent message")
	}
	if !strings.Contains(view, "typing") {
		t.Error("Chat view should show the typing indicator while a reply is pending")
	}
}

func TestViewChatShowsModelRef(t *testing.T) {
	m := testModel(t, Options{ModelRef: "canned-v1"})
	m = enterChat(t, m)

	if !strings.Contains(m.View(), "canned-v1") {
		t.Error("Chat header should show the model reference string")
	}
}

func TestInstancesDoNotShareState(t *testing.T) {
	a := testModel(t, Options{})
	b := testModel(t, Options{})

	a = enterChat(t, a)
	a.input.SetValue("Hello")
	updated, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = updated.(Model)

	if len(b.Messages()) != 1 {
		t.Error("Sending on one instance must not affect another")
	}
	if b.InChat() {
		t.Error("Opening chat on one instance must not affect another")
	}
	_ = a
}
