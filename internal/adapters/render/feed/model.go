package feed

import (
	"errors"
	"io"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func RenderFeed(posts []domain.Post, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderFeedView(posts, opts, s)
	})
}

func RenderThread(comments []domain.Comment, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderThreadView(comments, opts, s)
	})
}

func RenderProfile(profile domain.Profile, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderProfileView(profile, opts, s)
	})
}

func RenderUsers(users []domain.UserSummary, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderUsersView(users, opts, s)
	})
}

func run(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
