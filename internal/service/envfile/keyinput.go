package envfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/ragstart/internal/service/ui"
)

var ErrKeyPromptCancelled = errors.New("api key entry cancelled")

// keyModel asks for the API key with masked input. An empty submission
// keeps the current value.
type keyModel struct {
	input     textinput.Model
	key       string
	done      bool
	cancelled bool
}

func newKeyModel() keyModel {
	in := textinput.New()
	in.Placeholder = "sk-..."
	in.Focus()
	in.CharLimit = 255
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	return keyModel{input: in}
}

func (m keyModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.key = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m keyModel) View() string {
	if m.cancelled || m.done {
		return ""
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n",
		ui.TitleStyle.Render("OpenAI API Key"),
		m.input.View(),
		ui.DescStyle.Render("(enter to save, empty to keep current, esc to cancel)"),
	)
}

// PromptKey runs the key entry in the terminal. It returns "" when the
// operator submitted an empty value.
func PromptKey() (string, error) {
	m, err := tea.NewProgram(newKeyModel()).Run()
	if err != nil {
		return "", err
	}

	final := m.(keyModel)
	if final.cancelled {
		return "", ErrKeyPromptCancelled
	}
	return final.key, nil
}
