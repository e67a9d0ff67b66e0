// Package seed provides the mock chats, statuses and canned replies the
// shell starts with.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/samber/lo"
	"github.com/zhubert/murmur/internal/chat"
	"github.com/zhubert/murmur/internal/status"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Data is the initial in-memory state.
type Data struct {
	Chats    []chat.Chat     `yaml:"chats"`
	Statuses []status.Status `yaml:"statuses"`
	Replies  []string        `yaml:"replies"`
}

// Parse decodes and validates seed data.
func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, st := range d.Statuses {
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("seed status %d (%s): %w", i, st.ID, err)
		}
	}
	if dup := lo.FindDuplicatesBy(d.Chats, func(c chat.Chat) string { return c.ID }); len(dup) > 0 {
		return nil, fmt.Errorf("seed: duplicate chat id %q", dup[0].ID)
	}
	return &d, nil
}

// Default returns the bundled seed.
func Default() *Data {
	d, err := Parse(seedYAML)
	if err != nil {
		panic(err)
	}
	return d
}

// Stores builds fresh stores from the seed.
func (d *Data) Stores() (*chat.Store, *status.Store) {
	return chat.NewStore(d.Chats), status.NewStore(d.Statuses)
}
