package model

import "qbrain-backend/internal/infrastructure/docstore"

// Section là một nhóm biến theme: key camelCase -> giá trị CSS
type Section map[string]string

// ThemeConfig lưu tại settings/theme
type ThemeConfig struct {
	docstore.Meta
	Colors       Section `json:"colors"`
	Fonts        Section `json:"fonts"`
	Spacing      Section `json:"spacing"`
	BorderRadius Section `json:"borderRadius"`
	Animations   Section `json:"animations"`
	Layout       Section `json:"layout"`
}

// Sections trả về các section theo thứ tự cố định, kèm tên JSON
func (t *ThemeConfig) Sections() []NamedSection {
	return []NamedSection{
		{Name: SectionColors, Values: t.Colors},
		{Name: SectionFonts, Values: t.Fonts},
		{Name: SectionSpacing, Values: t.Spacing},
		{Name: SectionBorderRadius, Values: t.BorderRadius},
		{Name: SectionAnimations, Values: t.Animations},
		{Name: SectionLayout, Values: t.Layout},
	}
}

// Section trả về con trỏ tới map của section name (nil nếu không tồn tại)
func (t *ThemeConfig) Section(name string) *Section {
	switch name {
	case SectionColors:
		return &t.Colors
	case SectionFonts:
		return &t.Fonts
	case SectionSpacing:
		return &t.Spacing
	case SectionBorderRadius:
		return &t.BorderRadius
	case SectionAnimations:
		return &t.Animations
	case SectionLayout:
		return &t.Layout
	}
	return nil
}

type NamedSection struct {
	Name   string
	Values Section
}

// Clone deep-copy các section
func (t *ThemeConfig) Clone() *ThemeConfig {
	out := &ThemeConfig{Meta: t.Meta}
	for _, s := range t.Sections() {
		cp := make(Section, len(s.Values))
		for k, v := range s.Values {
			cp[k] = v
		}
		*out.Section(s.Name) = cp
	}
	return out
}

// DefaultTheme là theme mặc định của site (dark, neon)
func DefaultTheme() *ThemeConfig {
	t := &ThemeConfig{
		Colors: Section{
			"primary":       "#00D4FF",
			"secondary":     "#39FF14",
			"accent":        "#8B5CF6",
			"background":    "#0F172A",
			"surface":       "#1E293B",
			"text":          "#FFFFFF",
			"textSecondary": "#94A3B8",
		},
		Fonts: Section{
			"heading": "Inter, system-ui, sans-serif",
			"body":    "Inter, system-ui, sans-serif",
		},
		Spacing: Section{
			"xs": "0.5rem",
			"sm": "1rem",
			"md": "1.5rem",
			"lg": "2rem",
			"xl": "3rem",
		},
		BorderRadius: Section{
			"sm": "0.375rem",
			"md": "0.5rem",
			"lg": "0.75rem",
			"xl": "1rem",
		},
		Animations: Section{
			"duration": "300ms",
			"easing":   "cubic-bezier(0.4, 0, 0.2, 1)",
		},
		Layout: Section{
			"maxWidth":     "1200px",
			"headerHeight": "80px",
			"footerHeight": "200px",
		},
	}
	t.ID = DocumentID
	return t
}
