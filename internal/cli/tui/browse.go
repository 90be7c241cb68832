package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/client"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/types"
)

// UI configuration constants
const (
	defaultInputWidth      = 100
	defaultViewportWidth   = 100
	defaultViewportHeight  = 30
	defaultWindowWidth     = 100
	defaultWindowHeight    = 40
	inputCharLimit         = 200
	inputHeightReserved    = 2
	statusHeightReserved   = 4
	minContentHeight       = 10
	sessionIDDisplayLength = 8
	requestTimeout         = 10 * time.Second
)

// Style definitions
var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	ratingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	facetOn     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// focusMode tracks which area receives key input
type focusMode int

const (
	focusResults focusMode = iota
	focusSearch
)

// BrowseProgram encapsulates the catalog browsing TUI program
type BrowseProgram struct {
	model browseModel
}

// NewBrowseProgram creates a new browse program for an existing session
func NewBrowseProgram(apiClient *client.APIClient, session *types.Session) *BrowseProgram {
	return &BrowseProgram{model: initialModel(apiClient, session)}
}

// Run starts the browse TUI program
func (p *BrowseProgram) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// browseModel is the Bubble Tea model containing all browsing state
type browseModel struct {
	// Dependencies
	apiClient *client.APIClient
	sessionID string

	// Server-side session snapshot
	session *types.Session

	// UI components
	input       textinput.Model
	resultsView viewport.Model

	focus   focusMode
	loading bool
	err     error

	// Window dimensions
	width  int
	height int
}

// initialModel creates the initial browse model
func initialModel(apiClient *client.APIClient, session *types.Session) browseModel {
	input := textinput.New()
	input.Placeholder = "search agents..."
	input.CharLimit = inputCharLimit
	input.Width = defaultInputWidth
	input.Prompt = ""
	input.SetValue(session.SearchTerm)

	resultsViewport := viewport.New(defaultViewportWidth, defaultViewportHeight)

	m := browseModel{
		apiClient:   apiClient,
		sessionID:   session.SessionID,
		session:     session,
		input:       input,
		resultsView: resultsViewport,
		focus:       focusResults,
		width:       defaultWindowWidth,
		height:      defaultWindowHeight,
	}
	m.refreshResults()
	return m
}

// Init initializes the model (Bubble Tea interface)
func (m browseModel) Init() tea.Cmd {
	return nil
}

// Message type definitions
type (
	sessionMsg struct{ session *types.Session }
	apiErrMsg  struct{ err error }
)

// Update processes messages and updates the model (Bubble Tea interface)
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg)...)

	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

	case sessionMsg:
		m.session = msg.session
		m.loading = false
		m.err = nil
		m.refreshResults()

	case apiErrMsg:
		m.err = msg.err
		m.loading = false
		m.refreshResults()
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m *browseModel) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch msg.Type {
	case tea.KeyCtrlC:
		cmds = append(cmds, tea.Quit)
		return cmds

	case tea.KeyEsc:
		if m.focus == focusSearch {
			m.focus = focusResults
			m.input.Blur()
			return cmds
		}
		cmds = append(cmds, tea.Quit)
		return cmds

	case tea.KeyEnter:
		if m.focus == focusSearch && !m.loading {
			term := strings.TrimSpace(m.input.Value())
			m.focus = focusResults
			m.input.Blur()
			m.loading = true
			cmds = append(cmds, m.setSearch(term))
		}
		return cmds

	case tea.KeyUp:
		m.resultsView.LineUp(1)
		return cmds

	case tea.KeyDown:
		m.resultsView.LineDown(1)
		return cmds

	case tea.KeyPgUp:
		m.resultsView.ViewUp()
		return cmds

	case tea.KeyPgDown:
		m.resultsView.ViewDown()
		return cmds
	}

	// Plain keys act on the results pane only
	if m.focus != focusResults || m.loading {
		return cmds
	}

	switch msg.String() {
	case "/":
		m.focus = focusSearch
		m.input.Focus()
		cmds = append(cmds, textinput.Blink)

	case "p":
		cmds = append(cmds, m.toggleFacet(func(u *types.FacetUpdate, on bool) {
			u.IsPopular = &on
		}, m.session.Facets.IsPopular))

	case "r":
		cmds = append(cmds, m.toggleFacet(func(u *types.FacetUpdate, on bool) {
			u.IsRecommended = &on
		}, m.session.Facets.IsRecommended))

	case "m":
		cmds = append(cmds, m.toggleFacet(func(u *types.FacetUpdate, on bool) {
			u.IsPremium = &on
		}, m.session.Facets.IsPremium))

	case "l":
		cmds = append(cmds, m.toggleFacet(func(u *types.FacetUpdate, on bool) {
			u.LicenseAvailable = &on
		}, m.session.Facets.LicenseAvailable))

	case "f":
		cmds = append(cmds, m.cyclePricing())

	case "c":
		m.loading = true
		cmds = append(cmds, m.clearFacets())

	case "x":
		m.loading = true
		m.input.SetValue("")
		cmds = append(cmds, m.setSearch(""))
	}

	return cmds
}

// handleWindowResize handles window size changes
func (m *browseModel) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - inputHeightReserved - statusHeightReserved
	if contentHeight < minContentHeight {
		contentHeight = minContentHeight
	}

	m.resultsView.Width = msg.Width
	m.resultsView.Height = contentHeight
	m.input.Width = msg.Width - 3

	// Reapply wrapping when window size changes
	m.refreshResults()
}

// toggleFacet flips one boolean facet on the server
func (m *browseModel) toggleFacet(set func(*types.FacetUpdate, bool), current bool) tea.Cmd {
	m.loading = true
	update := types.FacetUpdate{}
	set(&update, !current)
	return m.updateFacets(update)
}

// cyclePricing advances the pricing facet through every tier and back off
func (m *browseModel) cyclePricing() tea.Cmd {
	m.loading = true
	next := nextPricing(m.session.Facets.Pricing)
	return m.updateFacets(types.FacetUpdate{Pricing: &next})
}

// nextPricing returns the pricing tier the f key advances to. The last step
// clears the facet; unknown values also clear it.
func nextPricing(current string) string {
	return map[string]string{
		"":           "free",
		"free":       "freemium",
		"freemium":   "paid",
		"paid":       "enterprise",
		"enterprise": "",
	}[current]
}

func (m *browseModel) setSearch(term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		session, err := m.apiClient.SetSearchTerm(ctx, m.sessionID, term)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return sessionMsg{session: session}
	}
}

func (m *browseModel) updateFacets(update types.FacetUpdate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		session, err := m.apiClient.UpdateFacets(ctx, m.sessionID, update)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return sessionMsg{session: session}
	}
}

func (m *browseModel) clearFacets() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		session, err := m.apiClient.ClearFacets(ctx, m.sessionID)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return sessionMsg{session: session}
	}
}

// refreshResults re-renders the result list into the viewport
func (m *browseModel) refreshResults() {
	var b strings.Builder

	if len(m.session.Results) == 0 {
		b.WriteString(dimStyle.Render("No agents match the current filters"))
	}

	for i, agent := range m.session.Results {
		if i > 0 {
			b.WriteString("\n")
		}

		name := boldStyle.Render(agent.Name)
		if badges := renderBadges(agent); badges != "" {
			name += " " + badgeStyle.Render(badges)
		}
		b.WriteString(name)
		b.WriteString("\n")

		meta := fmt.Sprintf("  %s · %s · %s",
			accentStyle.Render("CAEN "+agent.CaenCode),
			agent.Type,
			ratingStyle.Render(fmt.Sprintf("★ %.1f (%d)", agent.Rating, agent.ReviewCount)),
		)
		b.WriteString(meta)
		b.WriteString("\n")

		if agent.ShortDescription != "" {
			b.WriteString(dimStyle.Render("  " + agent.ShortDescription))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	}

	display := b.String()
	if m.width > 0 {
		display = wrapText(display, m.width)
	}

	m.resultsView.SetContent(display)
	m.resultsView.GotoTop()
}

// renderBadges formats premium/popular/recommended markers
func renderBadges(agent types.Agent) string {
	var badges []string
	if agent.IsPremium {
		badges = append(badges, "premium")
	}
	if agent.IsPopular {
		badges = append(badges, "popular")
	}
	if agent.IsRecommended {
		badges = append(badges, "recommended")
	}
	if len(badges) == 0 {
		return ""
	}
	return "[" + strings.Join(badges, " ") + "]"
}

// View renders the UI (Bubble Tea interface)
func (m browseModel) View() string {
	// Top status bar
	status := dimStyle.Render(fmt.Sprintf("session %s", m.sessionID[:sessionIDDisplayLength]))
	if m.session.SelectedCode != "" {
		status += dimStyle.Render(" • ") + accentStyle.Render("CAEN "+m.session.SelectedCode)
	}
	if m.loading {
		status += dimStyle.Render(" • loading...")
	}

	facetBar := m.renderFacetBar()

	count := fmt.Sprintf("%d agents", m.session.TotalCount)
	if m.session.TotalCount == 1 {
		count = "1 agent"
	}

	// Input area
	var inputView string
	if m.focus == focusSearch {
		inputView = promptStyle.Render("/ ") + m.input.View()
	} else {
		term := m.session.SearchTerm
		if term == "" {
			term = dimStyle.Render("(no search term)")
		}
		inputView = dimStyle.Render("/ ") + term
	}

	help := dimStyle.Render("/ search • p/r/m/l toggle facets • f pricing • c clear facets • x clear search • Esc quit")
	if m.focus == focusSearch {
		help = dimStyle.Render("Enter apply • Esc back")
	}

	parts := []string{
		status,
		facetBar,
		dimStyle.Render(count),
		"",
		m.resultsView.View(),
		"",
		inputView,
		help,
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderFacetBar shows which facets are active
func (m browseModel) renderFacetBar() string {
	facet := func(label string, on bool) string {
		if on {
			return facetOn.Render(label)
		}
		return dimStyle.Render(label)
	}

	pricing := "pricing:any"
	if m.session.Facets.Pricing != "" {
		pricing = "pricing:" + m.session.Facets.Pricing
	}

	parts := []string{
		facet("popular", m.session.Facets.IsPopular),
		facet("recommended", m.session.Facets.IsRecommended),
		facet("premium", m.session.Facets.IsPremium),
		facet("license", m.session.Facets.LicenseAvailable),
		facet(pricing, m.session.Facets.Pricing != ""),
	}
	if m.session.Facets.Category != "" {
		parts = append(parts, facetOn.Render("category:"+m.session.Facets.Category))
	}
	if m.session.Facets.AgentType != "" {
		parts = append(parts, facetOn.Render("type:"+m.session.Facets.AgentType))
	}

	return strings.Join(parts, dimStyle.Render(" | "))
}

// wrapText applies auto-wrapping to text, handling wide character widths
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 10 {
		return text
	}

	lines := strings.Split(text, "\n")
	var result strings.Builder

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		// Keep empty lines as-is
		if strings.TrimSpace(line) == "" {
			continue
		}

		result.WriteString(wrapLine(line, maxWidth))
	}

	return result.String()
}

// wrapLine wraps a single line of text based on display width
func wrapLine(line string, maxWidth int) string {
	if runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range line {
		runeW := runewidth.RuneWidth(r)

		if currentWidth+runeW > maxWidth && currentWidth > 0 {
			result.WriteString(currentLine.String())
			result.WriteString("\n")
			currentLine.Reset()
			currentWidth = 0
		}

		currentLine.WriteRune(r)
		currentWidth += runeW
	}

	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}
