// Package detail provides the organization detail view.
package detail

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// headerLines is the height reserved for the name, type and footer.
const headerLines = 6

// View displays every field of one organization in a scrollable panel.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model
	org      *domain.Organization
	width    int
	height   int
}

// NewView creates a new detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(76, 20),
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles key input. Esc returns DetailClosed for the caller to
// reduce; record actions are requested through messages so the app can
// run them against the record action service.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd, domain.Event) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil, nil
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, nil, domain.DetailClosed{}
	case v.org == nil:
		return v, nil, nil
	case keymap.Matches(keyStr, v.keymap.CopyContact):
		return v, v.request(messages.ActionCopyContact), nil
	case keymap.Matches(keyStr, v.keymap.OpenSource):
		return v, v.request(messages.ActionOpenSource), nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd, nil
}

func (v *View) request(action messages.Action) tea.Cmd {
	org := v.org
	return func() tea.Msg {
		return messages.ActionRequested{Action: action, Organization: org}
	}
}

// View renders the panel.
func (v *View) View() string {
	if v.org == nil {
		return v.styles.Muted.Render("No organization selected")
	}

	header := v.styles.Title.Render(v.org.Name) + "\n" +
		v.styles.Muted.Render(v.org.Type) + "  " + v.styles.RenderBadge(v.org.Status)

	footer := v.styles.Help.Render("[c] Copy contact  [o] View Original Source  [esc] Close")

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		v.viewport.View(),
		"",
		footer,
	)
	return v.styles.Border.Padding(0, 1).Render(body)
}

// SetOrganization shows org, or clears the panel when org is nil.
func (v *View) SetOrganization(org *domain.Organization) {
	v.org = org
	if org == nil {
		v.viewport.SetContent("")
		return
	}
	v.viewport.SetContent(v.renderBody())
	v.viewport.GotoTop()
}

// Organization returns the displayed organization.
func (v *View) Organization() *domain.Organization {
	return v.org
}

// renderBody lays out the field sections. Tags appear only when present.
func (v *View) renderBody() string {
	wrap := lipgloss.NewStyle().Width(v.viewport.Width)
	sections := []string{
		v.section("Type of Help", v.org.HelpType),
		v.section("Support Amount", v.org.Amount),
		v.section("Contact Information", v.org.Contact),
		v.section("Date", v.org.Date),
		v.section("Details", wrap.Render(v.org.Details)),
	}
	if len(v.org.Tags) > 0 {
		chips := make([]string, 0, len(v.org.Tags))
		for _, tag := range v.org.Tags {
			chips = append(chips, v.styles.Chip.Render(tag))
		}
		sections = append(sections, v.section("Tags", wrap.Render(strings.Join(chips, " "))))
	}
	sections = append(sections, v.section("Source", v.styles.Link.Render(v.org.Source)))
	return strings.Join(sections, "\n\n")
}

func (v *View) section(label, value string) string {
	if value == "" {
		value = v.styles.Muted.Render("-")
	}
	return v.styles.Subtitle.Render(label) + "\n" + value
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	vpWidth := width - 6
	if vpWidth < 20 {
		vpWidth = 20
	}
	vpHeight := height - headerLines - 4
	if vpHeight < 3 {
		vpHeight = 3
	}
	v.viewport.Width = vpWidth
	v.viewport.Height = vpHeight
	if v.org != nil {
		v.viewport.SetContent(v.renderBody())
	}
}

// Reset clears the panel.
func (v *View) Reset() {
	v.SetOrganization(nil)
}
