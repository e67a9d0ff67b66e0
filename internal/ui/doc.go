// Package ui provides the visual components of the murmur terminal messenger.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│ Status rail     │ Name / presence                   │
//	│ Search, tabs    │                                   │
//	│                 │ Messages (viewport)               │
//	│ Chat list       │                                   │
//	│ (1/3 width)     │ Input                             │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line): key hints or a flash message       │
//	└─────────────────────────────────────────────────────┘
//
// The status viewer covers the whole screen while a playback session is
// open. The emoji picker is drawn on top of the thread with ultraviolet so
// the messages under it stay visible. Modals (help, theme, create status,
// welcome) are centered over everything.
//
// # Components
//
// ViewContext holds the layout math. Header, Footer, ChatList, Thread,
// StatusViewer, PickerOverlay and Modal each render one region and know
// nothing about each other; internal/app wires them together.
//
// # Styles
//
// Every style is a package variable rebuilt from the active Theme by
// regenerateStyles, so switching themes at runtime restyles the whole UI.
package ui
