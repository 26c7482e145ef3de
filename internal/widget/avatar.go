package widget

// AvatarSize selects the badge size: small for the chat header, large for
// the tips view.
type AvatarSize int

const (
	AvatarSmall AvatarSize = iota
	AvatarLarge
)

// defaultGlyph is rendered when no avatar is configured.
const defaultGlyph = "✦"

// Avatar is a tagged variant with two cases: a text glyph rendered inside
// a styled badge, or a pre-rendered element used verbatim. The zero value
// falls back to the default glyph badge.
type Avatar struct {
	glyph    string
	rendered string
}

// GlyphAvatar returns an avatar that renders the given text inside a
// styled badge.
func GlyphAvatar(glyph string) Avatar {
	return Avatar{glyph: glyph}
}

// RenderedAvatar returns an avatar that renders the given element as-is.
// The caller owns styling and sizing.
func RenderedAvatar(element string) Avatar {
	return Avatar{rendered: element}
}

// Render resolves the variant once at render time.
func (a Avatar) Render(size AvatarSize) string {
	if a.rendered != "" {
		return a.rendered
	}

	glyph := a.glyph
	if glyph == "" {
		glyph = defaultGlyph
	}

	if size == AvatarLarge {
		return badgeLargeStyle.Render(glyph)
	}
	return badgeSmallStyle.Render(glyph)
}
