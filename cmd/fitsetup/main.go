package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_SERVER = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

type step int

const (
	stepEnteringServer step = iota
	stepEnteringUsername
	stepEnteringPassword
	stepLoggingIn
	stepSeeding
	stepComplete
)

type seedGroup struct {
	Name        string
	Description string
}

type seedChallenge struct {
	Name        string
	Level       string
	Description string
}

var muscleGroups = []seedGroup{
	{"Chest", "Pectorals and supporting pressing muscles"},
	{"Back", "Lats, traps and the posterior chain"},
	{"Shoulders", "Deltoids and rotator cuff"},
	{"Arms", "Biceps, triceps and forearms"},
	{"Legs", "Quads, hamstrings, glutes and calves"},
	{"Core", "Abdominals, obliques and lower back"},
}

var challenges = []seedChallenge{
	{"Strength Starter", "1", "Four weeks of basic compound lifts"},
	{"Endurance Builder", "2", "Progressive running and cycling distances"},
	{"Flexibility Reset", "1", "Daily stretching routine for mobility"},
}

type model struct {
	step         step
	server       string
	username     string
	password     string
	currentInput string
	client       *http.Client
	seeded       []string
	message      string
	quitting     bool
}

type loginSuccessMsg struct{}
type seedDoneMsg struct{ created []string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	jar, _ := cookiejar.New(nil)
	return model{
		step:   stepEnteringServer,
		client: &http.Client{Timeout: 10 * time.Second, Jar: jar},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(client *http.Client, server, username, password string) tea.Cmd {
	return func() tea.Msg {
		payload := map[string]string{
			"username": username,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", server+"/api/v1/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach %s: %w", server, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed (status %d) - check the credentials", resp.StatusCode)}
		}
		return loginSuccessMsg{}
	}
}

func seed(client *http.Client, server string) tea.Cmd {
	return func() tea.Msg {
		var created []string

		for _, g := range muscleGroups {
			ok, err := post(client, server+"/api/v1/muscle-groups", map[string]string{
				"name":        g.Name,
				"description": g.Description,
			})
			if err != nil {
				return errMsg{err}
			}
			if ok {
				created = append(created, "muscle group: "+g.Name)
			}
		}

		for _, ch := range challenges {
			ok, err := post(client, server+"/api/v1/challenges", map[string]string{
				"name":        ch.Name,
				"level":       ch.Level,
				"description": ch.Description,
			})
			if err != nil {
				return errMsg{err}
			}
			if ok {
				created = append(created, "challenge: "+ch.Name)
			}
		}

		return seedDoneMsg{created: created}
	}
}

func post(client *http.Client, url string, payload map[string]string) (bool, error) {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return true, nil
	case http.StatusBadRequest:
		// Duplicate reference data is fine on a re-run
		return false, nil
	default:
		return false, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.handleEnter()
		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.currentInput += msg.String()
			}
		}

	case loginSuccessMsg:
		m.step = stepSeeding
		m.message = ""
		return m, seed(m.client, m.server)

	case seedDoneMsg:
		m.step = stepComplete
		m.seeded = msg.created
		return m, nil

	case errMsg:
		m.message = msg.Error()
		// Fall back to the credentials prompt so the run can be retried
		m.step = stepEnteringUsername
		m.currentInput = ""
		return m, nil
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringServer:
		m.server = m.currentInput
		if m.server == "" {
			m.server = DEFAULT_SERVER
		}
		m.currentInput = ""
		m.step = stepEnteringUsername
	case stepEnteringUsername:
		if m.currentInput == "" {
			return m, nil
		}
		m.username = m.currentInput
		m.currentInput = ""
		m.step = stepEnteringPassword
	case stepEnteringPassword:
		if m.currentInput == "" {
			return m, nil
		}
		m.password = m.currentInput
		m.currentInput = ""
		m.step = stepLoggingIn
		return m, login(m.client, m.server, m.username, m.password)
	case stepComplete:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("Workout Server Setup") + "\n\n"

	if m.message != "" {
		s += errorStyle.Render("Error: "+m.message) + "\n\n"
	}

	switch m.step {
	case stepEnteringServer:
		s += promptStyle.Render("Server URL (enter for "+DEFAULT_SERVER+"): ") + inputStyle.Render(m.currentInput)
	case stepEnteringUsername:
		s += promptStyle.Render("Admin username: ") + inputStyle.Render(m.currentInput)
	case stepEnteringPassword:
		s += promptStyle.Render("Password: ") + inputStyle.Render(maskInput(m.currentInput))
	case stepLoggingIn:
		s += normalStyle.Render("Logging in to " + m.server + "...")
	case stepSeeding:
		s += normalStyle.Render("Seeding muscle groups and challenges...")
	case stepComplete:
		s += successStyle.Render("Setup complete") + "\n"
		if len(m.seeded) == 0 {
			s += normalStyle.Render("Nothing to create - reference data already present") + "\n"
		}
		for _, item := range m.seeded {
			s += normalStyle.Render("created "+item) + "\n"
		}
		s += "\n" + promptStyle.Render("Press enter to exit")
	}

	return s + "\n"
}

func maskInput(s string) string {
	masked := ""
	for range s {
		masked += "*"
	}
	return masked
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
