// Package directory provides the searchable organization directory view.
package directory

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/components/filter"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// Header text.
const (
	Title    = "Consolidated Cyprus Wildfire Support Resources"
	Subtitle = "Companies & Organizations Helping Wildfire Victims"
)

// lastUpdatedLayout formats the header timestamp.
const lastUpdatedLayout = "2 January 2006, 15:04"

// Focus identifies the control receiving key input.
type Focus int

const (
	FocusSearch Focus = iota
	FocusType
	FocusHelpType
	FocusStatus
	FocusTag
	FocusList
	focusCount
)

// View is the directory screen: header figures, search, filters and the list.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	now    func() time.Time

	search   *input.SearchInput
	typeSel  *filter.Selector
	helpSel  *filter.Selector
	status   *filter.Selector
	tagSel   *filter.Selector
	orgs     *list.OrgList
	focus    Focus
	selected domain.Selection

	summary   domain.Summary
	link      domain.ExternalLink
	quickTags []string
	loaded    bool

	width  int
	height int
}

// NewView creates a new directory view.
// A nil clock uses time.Now.
func NewView(s *styles.Styles, km *keymap.KeyMap, now func() time.Time) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if now == nil {
		now = time.Now
	}

	return &View{
		styles:    s,
		keymap:    km,
		now:       now,
		search:    input.NewSearchInput(s),
		typeSel:   filter.NewSelector("All Types", s),
		helpSel:   filter.NewSelector("All Help Types", s),
		status:    filter.NewSelector("All Statuses", s),
		tagSel:    filter.NewSelector("All Tags", s),
		orgs:      list.NewOrgList(s),
		focus:     FocusSearch,
		selected:  domain.NewSelection(),
		quickTags: domain.DefaultQuickTags(),
		width:     80,
		height:    40,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.search.Init()
}

// Update handles key input. A view-state event the key produced is
// returned to the caller, which reduces it before handling the next message.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd, domain.Event) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.focus == FocusSearch {
			var cmd tea.Cmd
			v.search, cmd, _ = v.search.Update(msg)
			return v, cmd, nil
		}
		return v, nil, nil
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.NextField):
		return v, v.setFocus((v.focus + 1) % focusCount), nil
	case keymap.Matches(keyStr, v.keymap.PrevField):
		return v, v.setFocus((v.focus + focusCount - 1) % focusCount), nil
	}

	switch v.focus {
	case FocusSearch:
		return v.updateSearch(keyMsg)
	case FocusType, FocusHelpType, FocusStatus, FocusTag:
		return v.updateFilter(keyMsg)
	case FocusList:
		return v.updateList(keyMsg)
	case focusCount:
	}
	return v, nil, nil
}

func (v *View) updateSearch(msg tea.KeyMsg) (*View, tea.Cmd, domain.Event) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown:
		v.orgs, _ = v.orgs.Update(msg)
		return v, nil, nil
	case tea.KeyEnter:
		return v, v.setFocus(FocusList), nil
	case tea.KeyEsc:
		return v, v.setFocus(FocusList), nil
	}

	var cmd tea.Cmd
	var changed bool
	v.search, cmd, changed = v.search.Update(msg)
	if changed {
		return v, cmd, domain.SearchTermChanged{Term: v.search.Value()}
	}
	return v, cmd, nil
}

func (v *View) updateFilter(msg tea.KeyMsg) (*View, tea.Cmd, domain.Event) {
	keyStr := msg.String()
	sel := v.focusedSelector()
	switch {
	case keymap.Matches(keyStr, v.keymap.NextOption):
		return v, nil, v.filterEvent(sel.Next())
	case keymap.Matches(keyStr, v.keymap.PrevOption):
		return v, nil, v.filterEvent(sel.Prev())
	case keymap.Matches(keyStr, v.keymap.Select),
		keymap.Matches(keyStr, v.keymap.Down),
		keymap.Matches(keyStr, v.keymap.Back):
		return v, v.setFocus(FocusList), nil
	case keymap.Matches(keyStr, v.keymap.Search):
		return v, v.setFocus(FocusSearch), nil
	}
	return v, nil, v.globalKey(keyStr)
}

func (v *View) updateList(msg tea.KeyMsg) (*View, tea.Cmd, domain.Event) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Select):
		if org := v.orgs.SelectedOrganization(); org != nil {
			return v, nil, domain.RecordSelected{ID: org.ID}
		}
		return v, nil, nil
	case keymap.Matches(keyStr, v.keymap.Search):
		return v, v.setFocus(FocusSearch), nil
	}
	if ev := v.globalKey(keyStr); ev != nil {
		return v, nil, ev
	}
	v.orgs, _ = v.orgs.Update(msg)
	return v, nil, nil
}

// globalKey handles quick tag toggles and clearing outside the search input.
func (v *View) globalKey(keyStr string) domain.Event {
	if keymap.Matches(keyStr, v.keymap.ClearFilters) {
		return domain.FiltersCleared{}
	}
	if i, ok := keymap.QuickTagIndex(keyStr); ok && i < len(v.quickTags) {
		return domain.TagToggled{Tag: v.quickTags[i]}
	}
	return nil
}

// filterEvent builds the selection event for the focused filter.
func (v *View) filterEvent(value string) domain.Event {
	switch v.focus {
	case FocusType:
		return domain.TypeSelected{Value: value}
	case FocusHelpType:
		return domain.HelpTypeSelected{Value: value}
	case FocusStatus:
		return domain.StatusSelected{Value: value}
	case FocusSearch, FocusTag, FocusList, focusCount:
	}
	return domain.TagSelected{Value: value}
}

func (v *View) focusedSelector() *filter.Selector {
	switch v.focus {
	case FocusType:
		return v.typeSel
	case FocusHelpType:
		return v.helpSel
	case FocusStatus:
		return v.status
	case FocusSearch, FocusTag, FocusList, focusCount:
	}
	return v.tagSel
}

// setFocus moves focus and updates each control's focus state.
func (v *View) setFocus(f Focus) tea.Cmd {
	v.focus = f
	v.typeSel.Blur()
	v.helpSel.Blur()
	v.status.Blur()
	v.tagSel.Blur()

	if f == FocusSearch {
		return v.search.Focus()
	}
	v.search.Blur()
	switch f {
	case FocusType:
		v.typeSel.Focus()
	case FocusHelpType:
		v.helpSel.Focus()
	case FocusStatus:
		v.status.Focus()
	case FocusTag:
		v.tagSel.Focus()
	case FocusSearch, FocusList, focusCount:
	}
	return nil
}

// SetSelection shows sel in the search box and filters.
func (v *View) SetSelection(sel domain.Selection) {
	v.selected = sel
	v.search.Sync(sel.SearchTerm)
	v.typeSel.SetValue(sel.Type)
	v.helpSel.SetValue(sel.HelpType)
	v.status.SetValue(sel.Status)
	v.tagSel.SetValue(sel.Tag)
}

// SetSnapshot refreshes every control from a derived snapshot.
func (v *View) SetSnapshot(snap *domain.Snapshot) {
	if snap == nil {
		return
	}
	v.typeSel.SetOptions(snap.Facets.Types)
	v.helpSel.SetOptions(snap.Facets.HelpTypes)
	v.status.SetOptions(snap.Facets.Statuses)
	v.tagSel.SetOptions(snap.Facets.Tags)
	v.SetSelection(snap.State.Selection)

	if snap.Result != nil {
		records := snap.Result.Records
		if records == nil {
			records = []domain.Organization{}
		}
		v.orgs.SetOrganizations(records)
		v.loaded = true
	}
	v.summary = snap.Summary
	v.link = snap.Link
}

// SetSettings applies display settings.
func (v *View) SetSettings(settings *domain.AppSettings) {
	if settings == nil {
		return
	}
	v.orgs.SetMaxTags(settings.Display.MaxCardTags)
	if len(settings.Display.QuickTags) > 0 {
		v.quickTags = settings.Display.QuickTags
	}
}

// View renders the directory.
func (v *View) View() string {
	sections := []string{
		v.renderHeader(),
		v.renderCards(),
	}
	if !v.link.IsZero() {
		sections = append(sections, v.renderLink())
	}
	sections = append(sections,
		v.renderSearch(),
		v.renderQuickTags(),
	)
	top := strings.Join(sections, "\n\n")

	listHeight := v.height - lipgloss.Height(top) - 2
	if listHeight < linesForOneCard {
		listHeight = linesForOneCard
	}
	v.orgs.SetSize(v.width, listHeight)

	return top + "\n\n" + v.orgs.View()
}

// linesForOneCard is the minimum list height.
const linesForOneCard = 3

func (v *View) renderHeader() string {
	updated := v.styles.Muted.Render("Last Updated: " + v.now().Format(lastUpdatedLayout))
	return v.styles.Title.Render(Title) + "\n" +
		v.styles.Subtitle.Render(Subtitle) + "\n" +
		updated
}

func (v *View) renderCards() string {
	cards := []string{
		v.renderCard("Total Organizations", fmt.Sprintf("%d", v.summary.Total),
			"Companies & organizations helping"),
		v.renderCard("Active Support", fmt.Sprintf("%d", v.summary.Active),
			"Currently providing aid"),
		v.renderCard("💰 Financial Aid", v.summary.FormatAid(),
			"Confirmed financial support"),
	}
	//nolint:misspell // lipgloss.Top is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (v *View) renderCard(label, value, caption string) string {
	body := v.styles.Normal.Render(label) + "\n" +
		v.styles.CardValue.Render(value) + "\n" +
		v.styles.Muted.Render(caption)
	return v.styles.Card.Render(body)
}

func (v *View) renderLink() string {
	return v.styles.Section.Render("Additional Resources") + "\n" +
		v.styles.Muted.Render("For more comprehensive help provider information:") + "\n" +
		v.styles.Normal.Render(v.link.Name) + " " + v.styles.Link.Render(v.link.URL)
}

func (v *View) renderSearch() string {
	filters := lipgloss.JoinHorizontal(lipgloss.Top,
		v.typeSel.View(), " ",
		v.helpSel.View(), " ",
		v.status.View(), " ",
		v.tagSel.View(),
	)
	return v.styles.Section.Render("Search & Filter") + "\n" +
		v.search.View() + "\n" +
		filters
}

func (v *View) renderQuickTags() string {
	chips := make([]string, 0, len(v.quickTags))
	for i, tag := range v.quickTags {
		label := tag
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, tag)
		}
		if v.selected.Tag == tag {
			chips = append(chips, v.styles.ActiveChip.Render(label))
		} else {
			chips = append(chips, v.styles.Chip.Render(label))
		}
	}
	return v.styles.Muted.Render("Popular Categories:") + " " + strings.Join(chips, " ")
}

// Capturing reports whether keys are going to the search input,
// so single-letter shortcuts must not be interpreted globally.
func (v *View) Capturing() bool {
	return v.focus == FocusSearch
}

// Focus returns the focused control.
func (v *View) Focus() Focus {
	return v.focus
}

// SetFocus moves focus to f.
func (v *View) SetFocus(f Focus) tea.Cmd {
	return v.setFocus(f)
}

// SearchValue returns the text in the search input.
func (v *View) SearchValue() string {
	return v.search.Value()
}

// Organizations returns the listed organizations.
func (v *View) Organizations() []domain.Organization {
	return v.orgs.Organizations()
}

// SelectedOrganization returns the highlighted organization, or nil.
func (v *View) SelectedOrganization() *domain.Organization {
	return v.orgs.SelectedOrganization()
}

// Loaded reports whether a snapshot with results has been applied.
func (v *View) Loaded() bool {
	return v.loaded
}

// Count returns the number of listed organizations and the dataset total.
func (v *View) Count() (shown, total int) {
	return v.orgs.Len(), v.summary.Total
}

// QuickTags returns the quick filter categories.
func (v *View) QuickTags() []string {
	return v.quickTags
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.search.SetWidth(width - 4)
}

// Reset returns focus to the search input.
func (v *View) Reset() tea.Cmd {
	return v.setFocus(FocusSearch)
}
