package ui

import (
	"sort"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (focus, highlights, header gradient)
	Primary string
	// Secondary is used for key hints, section titles and timestamps
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Message bubbles
	Mine       string // Background of my bubbles
	MineText   string
	Theirs     string // Background of incoming bubbles
	TheirsText string

	// Semantic colors
	Unread  string // Unread badge
	Online  string // Presence dot
	Warning string
	Error   string
	Info    string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Code blocks
	CodeBg      string
	ChromaStyle string // chroma style used for fenced code
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkGreen  ThemeName = "dark-green"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkGreen

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkGreen: {
		Name:        "Dark Green",
		Primary:     "#10B981",
		Secondary:   "#34D399",
		Bg:          "#111827",
		BgSelected:  "#065F46",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#052E16",
		Mine:        "#047857",
		MineText:    "#ECFDF5",
		Theirs:      "#1F2937",
		TheirsText:  "#F3F4F6",
		Unread:      "#10B981",
		Online:      "#4ADE80",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#38BDF8",
		Border:      "#374151",
		CodeBg:      "#0B1220",
		ChromaStyle: "monokai",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		BgSelected:  "#434C5E",
		Text:        "#ECEFF4",
		TextMuted:   "#7B88A1",
		TextInverse: "#2E3440",
		Mine:        "#5E81AC",
		MineText:    "#ECEFF4",
		Theirs:      "#3B4252",
		TheirsText:  "#E5E9F0",
		Unread:      "#88C0D0",
		Online:      "#A3BE8C",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Border:      "#4C566A",
		CodeBg:      "#242933",
		ChromaStyle: "nord",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		BgSelected:  "#44475A",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Mine:        "#6D4AA8",
		MineText:    "#F8F8F2",
		Theirs:      "#44475A",
		TheirsText:  "#F8F8F2",
		Unread:      "#FF79C6",
		Online:      "#50FA7B",
		Warning:     "#F1FA8C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Border:      "#44475A",
		CodeBg:      "#21222C",
		ChromaStyle: "dracula",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox",
		Primary:     "#FABD2F",
		Secondary:   "#83A598",
		Bg:          "#282828",
		BgSelected:  "#504945",
		Text:        "#EBDBB2",
		TextMuted:   "#928374",
		TextInverse: "#282828",
		Mine:        "#79740E",
		MineText:    "#FBF1C7",
		Theirs:      "#3C3836",
		TheirsText:  "#EBDBB2",
		Unread:      "#FE8019",
		Online:      "#B8BB26",
		Warning:     "#FABD2F",
		Error:       "#FB4934",
		Info:        "#83A598",
		Border:      "#504945",
		CodeBg:      "#1D2021",
		ChromaStyle: "gruvbox",
	},
	ThemeTokyoNight: {
		Name:        "Tokyo Night",
		Primary:     "#7AA2F7",
		Secondary:   "#BB9AF7",
		Bg:          "#1A1B26",
		BgSelected:  "#283457",
		Text:        "#C0CAF5",
		TextMuted:   "#565F89",
		TextInverse: "#1A1B26",
		Mine:        "#3D59A1",
		MineText:    "#E0E6FF",
		Theirs:      "#24283B",
		TheirsText:  "#C0CAF5",
		Unread:      "#7DCFFF",
		Online:      "#9ECE6A",
		Warning:     "#E0AF68",
		Error:       "#F7768E",
		Info:        "#7DCFFF",
		Border:      "#3B4261",
		CodeBg:      "#16161E",
		ChromaStyle: "tokyonight-night",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#0EA5E9",
		Secondary:   "#0369A1",
		Bg:          "#FFFFFF",
		BgSelected:  "#E0F2FE",
		Text:        "#111827",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Mine:        "#DCF8C6",
		MineText:    "#111827",
		Theirs:      "#F3F4F6",
		TheirsText:  "#111827",
		Unread:      "#0EA5E9",
		Online:      "#16A34A",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#0284C7",
		Border:      "#D1D5DB",
		CodeBg:      "#F9FAFB",
		ChromaStyle: "github",
	},
}

// ThemeNames returns all available theme names in display order, default first
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		if name != DefaultTheme {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return append([]ThemeName{DefaultTheme}, names...)
}

// ThemeDisplayNames returns the display names matching ThemeNames.
func ThemeDisplayNames() []string {
	names := ThemeNames()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = BuiltinThemes[n].Name
	}
	return out
}

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentTheme = BuiltinThemes[name]
	currentThemeName = name
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name. It returns false and
// applies the default theme when the name is unknown.
func SetThemeByName(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	if !ok {
		logger.WithComponent("ui").Warn("unknown theme, using default", "theme", name, "default", DefaultTheme)
	}
	SetTheme(ThemeName(name))
	return ok
}

// refreshModalStyles hands the current palette to the modals package.
func refreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, ListItemStyle, ListSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalInputWidth, ModalWidth,
	)
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUnread = lipgloss.Color(t.Unread)
	ColorOnline = lipgloss.Color(t.Online)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	ListItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	ListPreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ListTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	UnreadBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorUnread).
		Bold(true).
		Padding(0, 1)

	KindTabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	KindTabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	RailTileStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Align(lipgloss.Center).
		Width(RailTileWidth)

	RailTileSelectedStyle = RailTileStyle.
		BorderForeground(ColorPrimary)

	ThreadHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	ThreadPresenceStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ThreadOnlineStyle = lipgloss.NewStyle().
		Foreground(ColorOnline)

	MineBubbleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MineText)).
		Background(lipgloss.Color(t.Mine)).
		Padding(0, 1)

	TheirsBubbleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.TheirsText)).
		Background(lipgloss.Color(t.Theirs)).
		Padding(0, 1)

	BubbleMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	SenderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	ReactionStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(lipgloss.Color(t.GetBgSelected())).
		Padding(0, 1)

	CodeBlockStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.CodeBg)).
		Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	PickerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Background(ColorBg).
		Padding(0, 1)

	PickerCursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected()))

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	refreshModalStyles()
}
