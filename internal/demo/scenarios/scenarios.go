// Package scenarios contains built-in demo scenarios for murmur.
package scenarios

import (
	"time"

	"github.com/zhubert/murmur/internal/demo"
)

// Overview walks through messaging: opening a chat, sending a message,
// getting a reply, sending a sticker and searching for another chat.
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Chat, reply, sticker and search",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Open the first chat
		demo.Annotate("Open a chat"),
		demo.KeyWithDesc("enter", "Open Anna's chat"),
		demo.Wait(500 * time.Millisecond),

		// Send a message and get an answer
		demo.Type("Lunch today?"),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),
		demo.Reply("Sure, 12:30 works!"),
		demo.Wait(1 * time.Second),

		// Send a sticker from the picker
		demo.Annotate("Stickers"),
		demo.KeyWithDesc("ctrl+e", "Open the picker"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("tab"),
		demo.Key("right"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(1 * time.Second),

		// Find another chat
		demo.Annotate("Search"),
		demo.Key("esc"),
		demo.Key("/"),
		demo.Type("dmi"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}

// Statuses shows the status rail: watching statuses and posting one.
var Statuses = &demo.Scenario{
	Name:        "statuses",
	Description: "Watch and post statuses",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		// Watch the newest status
		demo.Annotate("Status rail"),
		demo.KeyWithDesc("r", "Focus the status rail"),
		demo.Key("right"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Tick(20),

		// Pause, then skip ahead
		demo.Key("space"),
		demo.Wait(1 * time.Second),
		demo.Key("space"),
		demo.Key("right"),
		demo.Tick(20),
		demo.Key("esc"),
		demo.Wait(500 * time.Millisecond),

		// Post a status
		demo.Annotate("New status"),
		demo.Key("s"),
		demo.Wait(500 * time.Millisecond),
		demo.Type("Shipping murmur today"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Overview,
		Statuses,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
