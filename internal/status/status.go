// Package status holds the story-like status posts shown in the status rail
// and the in-memory store they live in.
package status

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rivo/uniseg"
)

// MaxContentLength is the maximum number of characters in a status,
// counted as grapheme clusters.
const MaxContentLength = 200

// Default author and label for statuses published from this terminal.
const (
	CurrentUserID   = "me"
	CurrentUserName = "current user"
	JustNowLabel    = "just now"
)

// Status is a single story-like post. Statuses are immutable once created.
type Status struct {
	ID              string `yaml:"id" validate:"required"`
	AuthorID        string `yaml:"author_id" validate:"required"`
	AuthorName      string `yaml:"author_name" validate:"required"`
	AuthorAvatarRef string `yaml:"avatar"`
	Content         string `yaml:"content" validate:"required,maxgraphemes=200"`
	CreatedAtLabel  string `yaml:"created_at" validate:"required"`
	BackgroundColor string `yaml:"background" validate:"required,hexcolor"`
	TextColor       string `yaml:"text" validate:"required,hexcolor"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("maxgraphemes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return uniseg.GraphemeClusterCount(fl.Field().String()) <= limit
	})
	return v
}

// Validate checks the struct constraints (content length, hex colors).
func (s Status) Validate() error {
	return validate.Struct(s)
}

// IsMine reports whether the status was authored by the local user.
func (s Status) IsMine() bool {
	return s.AuthorID == CurrentUserID
}

// Initials returns up to two uppercase initials of the author's name,
// used as the avatar glyph in the rail.
func (s Status) Initials() string {
	return Initials(s.AuthorName)
}

// Initials returns up to two uppercase initials of name.
func Initials(name string) string {
	var out []rune
	word := true
	for _, r := range name {
		if r == ' ' {
			word = true
			continue
		}
		if word {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out = append(out, r)
			word = false
			if len(out) == 2 {
				break
			}
		}
	}
	return string(out)
}
