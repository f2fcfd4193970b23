package model

const DocumentID = "theme"

const (
	CachePattern  = "theme:*"
	CacheKeyTheme = "theme:current"
)

// Section names (JSON)
const (
	SectionColors       = "colors"
	SectionFonts        = "fonts"
	SectionSpacing      = "spacing"
	SectionBorderRadius = "borderRadius"
	SectionAnimations   = "animations"
	SectionLayout       = "layout"
)

// CSS variable prefix theo section
var CSSPrefixes = map[string]string{
	SectionColors:       "--color-",
	SectionFonts:        "--font-",
	SectionSpacing:      "--spacing-",
	SectionBorderRadius: "--border-radius-",
	SectionAnimations:   "--animation-",
	SectionLayout:       "--layout-",
}

const EventThemeUpdate = "theme:update"
