package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/murmur/internal/status"
)

// lowRemaining is the count at which the remaining-characters counter turns
// to the warning color.
const lowRemaining = 20

// previewHeight is the number of lines of the status card preview
const previewHeight = 5

// StatusDraft is the composer behind the create-status dialog.
type StatusDraft interface {
	SetContent(s string)
	Content() string
	Remaining() int
	SelectSwatch(i int)
	Swatch() int
	Colors() (background, text string)
	CanPublish() bool
}

// CreateStatusState is the dialog for posting a new status: a text area,
// a palette picker and a live preview in the chosen colors.
type CreateStatusState struct {
	content string
	swatch  int

	draft StatusDraft
	form  *huh.Form
}

func (*CreateStatusState) modalState() {}

func (s *CreateStatusState) Title() string { return "New status" }

func (s *CreateStatusState) Help() string {
	return "Tab: colors  ←/→: change color  Enter: post  Esc: cancel"
}

// Draft returns the composer the dialog edits.
func (s *CreateStatusState) Draft() StatusDraft {
	return s.draft
}

// renderPreview renders the status as it will appear in the viewer.
func (s *CreateStatusState) renderPreview() string {
	bg, fg := s.draft.Colors()
	card := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Bold(true).
		Width(ModalInputWidth).
		Height(previewHeight).
		Padding(1, 2).
		Align(lipgloss.Center, lipgloss.Center)

	text := s.draft.Content()
	if text == "" {
		card = card.Faint(true)
		text = "What's on your mind?"
	}
	return card.Render(ansi.Wrap(text, ModalInputWidth-4, ""))
}

func (s *CreateStatusState) renderCounter() string {
	remaining := s.draft.Remaining()
	style := lipgloss.NewStyle().Foreground(ColorTextMuted)
	if remaining <= lowRemaining {
		style = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	}
	return style.Render(fmt.Sprintf("%d left", remaining))
}

func (s *CreateStatusState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	counter := lipgloss.PlaceHorizontal(ModalInputWidth, lipgloss.Right, s.renderCounter())
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.form.View(),
		counter,
		s.renderPreview(),
		help,
	)
}

func (s *CreateStatusState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.draft.SetContent(s.content)
	s.draft.SelectSwatch(s.swatch)
	return s, cmd
}

// NewCreateStatusState opens the dialog on draft, keeping any text and
// color it already holds.
func NewCreateStatusState(draft StatusDraft) *CreateStatusState {
	s := &CreateStatusState{
		content: draft.Content(),
		swatch:  draft.Swatch(),
		draft:   draft,
	}

	swatches := make([]huh.Option[int], len(status.Palette))
	for i, sw := range status.Palette {
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(sw.Background)).
			Foreground(lipgloss.Color(sw.Text)).
			Render(" " + sw.Name + " ")
		swatches[i] = huh.NewOption(chip, i)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("Status").
			Placeholder("What's on your mind?").
			CharLimit(status.MaxContentLength).
			Lines(3).
			Value(&s.content),
		huh.NewSelect[int]().
			Title("Background").
			Options(swatches...).
			Inline(true).
			Value(&s.swatch),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}
