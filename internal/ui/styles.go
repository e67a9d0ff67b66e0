package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Values are filled from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUnread      color.Color
	ColorOnline      color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Chat list and status rail styles
var (
	ListItemStyle         lipgloss.Style
	ListSelectedStyle     lipgloss.Style
	ListPreviewStyle      lipgloss.Style
	ListTimeStyle         lipgloss.Style
	UnreadBadgeStyle      lipgloss.Style
	KindTabStyle          lipgloss.Style
	KindTabActiveStyle    lipgloss.Style
	RailTileStyle         lipgloss.Style
	RailTileSelectedStyle lipgloss.Style
)

// Thread styles
var (
	ThreadHeaderStyle     lipgloss.Style
	ThreadPresenceStyle   lipgloss.Style
	ThreadOnlineStyle     lipgloss.Style
	MineBubbleStyle       lipgloss.Style
	TheirsBubbleStyle     lipgloss.Style
	BubbleMetaStyle       lipgloss.Style
	SenderStyle           lipgloss.Style
	ReactionStyle         lipgloss.Style
	CodeBlockStyle        lipgloss.Style
	EmptyStateStyle       lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
)

// Overlay styles
var (
	ModalStyle        lipgloss.Style
	ModalTitleStyle   lipgloss.Style
	ModalHelpStyle    lipgloss.Style
	PickerStyle       lipgloss.Style
	PickerCursorStyle lipgloss.Style
)

// Status line styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func init() {
	regenerateStyles()
}
