// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// linesPerCard is the height of one rendered organization including its gap.
const linesPerCard = 4

// OrgList displays organizations as navigable cards.
type OrgList struct {
	orgs     []domain.Organization
	loaded   bool
	selected int
	maxTags  int
	styles   *styles.Styles
	width    int
	height   int
}

// NewOrgList creates a new organization list component.
func NewOrgList(s *styles.Styles) *OrgList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &OrgList{
		selected: 0,
		maxTags:  5,
		styles:   s,
		width:    80,
		height:   12,
	}
}

// Init initialises the list.
func (l *OrgList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *OrgList) Update(msg tea.Msg) (*OrgList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "pgup":
			l.move(-l.visibleCount())
		case "pgdown":
			l.move(l.visibleCount())
		case "home", "g":
			l.selected = 0
		case "end", "G":
			l.move(len(l.orgs))
		}
	}
	return l, nil
}

// View renders the list.
func (l *OrgList) View() string {
	if !l.loaded {
		return l.styles.Muted.Render("Loading organizations...")
	}
	if len(l.orgs) == 0 {
		return l.styles.Normal.Render(domain.EmptyResultMessage) + "\n" +
			l.styles.Muted.Render(domain.EmptyResultHint)
	}

	visible := l.visibleCount()
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.orgs) {
		end = len(l.orgs)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, l.renderCard(i, &l.orgs[i]))
	}
	return strings.Join(cards, "\n\n")
}

// renderCard formats one organization as three lines.
func (l *OrgList) renderCard(index int, org *domain.Organization) string {
	indicator := "  "
	nameStyle := l.styles.Normal.Bold(true)
	if index == l.selected {
		indicator = "> "
		nameStyle = l.styles.Selected
	}

	badge := l.styles.RenderBadge(org.Status)
	name := truncate(org.Name, l.width-len([]rune(org.Status))-8)
	titleLine := indicator + nameStyle.Render(name) + " " + badge

	meta := make([]string, 0, 3)
	for _, v := range []string{org.Type, org.HelpType, org.Amount} {
		if v != "" {
			meta = append(meta, v)
		}
	}
	metaLine := "    " + l.styles.Muted.Render(truncate(strings.Join(meta, " · "), l.width-6))

	shown, more := org.VisibleTags(l.maxTags)
	chips := make([]string, 0, len(shown)+1)
	for _, tag := range shown {
		chips = append(chips, l.styles.Chip.Render(tag))
	}
	if more > 0 {
		chips = append(chips, l.styles.Muted.Render(fmt.Sprintf("+%d more", more)))
	}
	tagLine := "    " + strings.Join(chips, " ")

	return titleLine + "\n" + metaLine + "\n" + tagLine
}

// visibleCount returns how many cards fit in the current height.
func (l *OrgList) visibleCount() int {
	visible := (l.height + 1) / linesPerCard
	if visible < 1 {
		visible = 1
	}
	return visible
}

// SetOrganizations replaces the list contents.
// The highlight follows the previously selected organization when it is still listed.
func (l *OrgList) SetOrganizations(orgs []domain.Organization) {
	var currentID string
	if cur := l.SelectedOrganization(); cur != nil {
		currentID = cur.ID
	}

	l.orgs = orgs
	l.loaded = true
	l.selected = 0
	for i := range orgs {
		if orgs[i].ID == currentID {
			l.selected = i
			break
		}
	}
}

// Organizations returns the current contents.
func (l *OrgList) Organizations() []domain.Organization {
	return l.orgs
}

// Len returns the number of listed organizations.
func (l *OrgList) Len() int {
	return len(l.orgs)
}

// Selected returns the index of the highlighted organization.
func (l *OrgList) Selected() int {
	return l.selected
}

// SetSelected sets the highlighted index.
func (l *OrgList) SetSelected(index int) {
	if index >= 0 && index < len(l.orgs) {
		l.selected = index
	}
}

// SelectedOrganization returns the highlighted organization, or nil if none.
func (l *OrgList) SelectedOrganization() *domain.Organization {
	if len(l.orgs) == 0 || l.selected < 0 || l.selected >= len(l.orgs) {
		return nil
	}
	return &l.orgs[l.selected]
}

// MoveUp moves the highlight up.
func (l *OrgList) MoveUp() {
	l.move(-1)
}

// MoveDown moves the highlight down.
func (l *OrgList) MoveDown() {
	l.move(1)
}

func (l *OrgList) move(delta int) {
	if len(l.orgs) == 0 {
		return
	}
	l.selected += delta
	if l.selected < 0 {
		l.selected = 0
	}
	if l.selected >= len(l.orgs) {
		l.selected = len(l.orgs) - 1
	}
}

// SetMaxTags sets how many tags a card shows before "+N more".
func (l *OrgList) SetMaxTags(n int) {
	l.maxTags = n
}

// MaxTags returns the card tag limit.
func (l *OrgList) MaxTags() int {
	return l.maxTags
}

// SetSize sets the list dimensions.
func (l *OrgList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *OrgList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *OrgList) Height() int {
	return l.height
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
