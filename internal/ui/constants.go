// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// ChatListWidthRatio is the denominator for the chat list width (1/3 of total width)
	ChatListWidthRatio = 3

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// TextareaHeight is the number of lines for the message input textarea
	TextareaHeight = 2

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// ThreadHeaderHeight is the name line plus the presence line
	ThreadHeaderHeight = 2

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MaxBubbleWidthRatio caps a bubble at 3/4 of the thread width
	MaxBubbleWidthRatio = 4
)

// Status rail
const (
	// RailTileWidth is the outer width of one rail tile, border included
	RailTileWidth = 8

	// RailHeight is the height of the rail: bordered tile (3) plus the name line
	RailHeight = 4

	// KindTabsHeight is the height of the All/Chats/Groups/Channels row
	KindTabsHeight = 1

	// SearchHeight is the height of the search input row
	SearchHeight = 1
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)

// Picker overlay dimensions
const (
	// PickerRows is the number of grid rows visible in the picker
	PickerRows = 4
)
