package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/proffy/internal/config"
	"github.com/akyairhashvil/proffy/internal/favorites"
	"github.com/akyairhashvil/proffy/internal/models"
	"github.com/akyairhashvil/proffy/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode says which part of the screen receives keys.
type Mode int

const (
	ModeList Mode = iota
	ModeFilters
)

// ListItem is one rendered result row.
type ListItem struct {
	Teacher   models.Teacher
	Favorited bool
}

// Options tune the screen without changing its collaborators.
type Options struct {
	Theme      string
	ReportsDir string
}

// TeacherListModel is the "available proffys" screen: a filter panel, the
// result list of the last applied search and the favorite id set.
type TeacherListModel struct {
	ctx    context.Context
	cancel context.CancelFunc

	classes ClassSearcher
	store   FavoritesStore
	keys    *HandlerRegistry
	theme   Theme

	filters   *FilterForm
	teachers  []models.Teacher
	favorites favorites.IDSet
	cursor    int
	scroll    int

	searchSeq    int
	cancelSearch context.CancelFunc
	searching    bool
	searched     bool

	reportsDir string
	status     string
	err        error
	now        func() time.Time

	width, height int
}

// NewTeacherListModel mounts the screen. The model owns a context derived
// from ctx; Close cancels it along with any search still in flight.
func NewTeacherListModel(ctx context.Context, classes ClassSearcher, store FavoritesStore, opts Options) TeacherListModel {
	ctx, cancel := context.WithCancel(ctx)
	reportsDir := opts.ReportsDir
	if reportsDir == "" {
		reportsDir = util.ReportsDir(config.AppName)
	}
	return TeacherListModel{
		ctx:        ctx,
		cancel:     cancel,
		classes:    classes,
		store:      store,
		keys:       defaultRegistry(),
		theme:      ThemeByName(opts.Theme),
		filters:    NewFilterForm(),
		teachers:   []models.Teacher{},
		favorites:  favorites.IDSet{},
		reportsDir: reportsDir,
		now:        time.Now,
		width:      config.DefaultWidth,
	}
}

func (m TeacherListModel) Init() tea.Cmd {
	return nil
}

// Close unmounts the screen. Completions that arrive afterwards are dropped.
func (m TeacherListModel) Close() {
	m.cancel()
}

func (m TeacherListModel) closed() bool {
	return m.ctx.Err() != nil
}

func (m TeacherListModel) Mode() Mode {
	if m.filters.Visible {
		return ModeFilters
	}
	return ModeList
}

func (m TeacherListModel) FiltersVisible() bool {
	return m.filters.Visible
}

func (m TeacherListModel) Filters() models.ClassFilters {
	return m.filters.Filters()
}

// SetFilters fills the three filter inputs.
func (m *TeacherListModel) SetFilters(f models.ClassFilters) {
	m.filters.SetValues(f.Subject, f.WeekDay, f.Time)
}

// Teachers returns the result list of the last applied search.
func (m TeacherListModel) Teachers() []models.Teacher {
	return m.teachers
}

func (m TeacherListModel) FavoriteIDs() favorites.IDSet {
	return m.favorites
}

func (m TeacherListModel) Searching() bool {
	return m.searching
}

func (m TeacherListModel) Status() string {
	return m.status
}

func (m TeacherListModel) Err() error {
	return m.err
}

func (m TeacherListModel) Cursor() int {
	return m.cursor
}

// Items decorates each result with whether its id is a favorite.
func (m TeacherListModel) Items() []ListItem {
	items := make([]ListItem, len(m.teachers))
	for i, t := range m.teachers {
		items[i] = ListItem{Teacher: t, Favorited: m.favorites.Has(t.ID)}
	}
	return items
}

// ToggleFilters flips the filter panel visibility.
func (m *TeacherListModel) ToggleFilters() tea.Cmd {
	return m.filters.Toggle()
}

// SubmitFilters re-reads the favorites and issues one search with the three
// current input values. Both start together; their completions are not
// ordered. A search still in flight from an earlier submit is cancelled.
func (m *TeacherListModel) SubmitFilters() tea.Cmd {
	if m.closed() {
		return nil
	}
	if m.cancelSearch != nil {
		m.cancelSearch()
	}
	searchCtx, cancel := context.WithCancel(m.ctx)
	m.cancelSearch = cancel
	m.searchSeq++
	m.searching = true
	m.status = "Searching..."
	return tea.Batch(
		loadFavoritesCmd(m.ctx, m.store),
		searchClassesCmd(searchCtx, cancel, m.classes, m.searchSeq, m.filters.Filters()),
	)
}

// LoadFavorites re-reads the favorites value on its own.
func (m *TeacherListModel) LoadFavorites() tea.Cmd {
	if m.closed() {
		return nil
	}
	return loadFavoritesCmd(m.ctx, m.store)
}

// SelectedTeacher returns the record under the cursor.
func (m TeacherListModel) SelectedTeacher() (models.Teacher, bool) {
	if m.cursor < 0 || m.cursor >= len(m.teachers) {
		return models.Teacher{}, false
	}
	return m.teachers[m.cursor], true
}

// ToggleFavorite adds or removes the selected tutor in the favorites store.
func (m *TeacherListModel) ToggleFavorite() tea.Cmd {
	teacher, ok := m.SelectedTeacher()
	if !ok || m.closed() {
		return nil
	}
	return toggleFavoriteCmd(m.ctx, m.store, teacher)
}

// ExportReport writes the current list to a PDF in the reports directory.
func (m *TeacherListModel) ExportReport() tea.Cmd {
	items := m.Items()
	if len(items) == 0 {
		m.status = "Nothing to export yet."
		return nil
	}
	m.status = "Exporting report..."
	return exportReportCmd(m.reportsDir, items, m.filters.Filters(), m.now())
}

func (m *TeacherListModel) moveCursor(delta int) {
	if len(m.teachers) == 0 {
		m.cursor, m.scroll = 0, 0
		return
	}
	m.cursor = util.Clamp(m.cursor+delta, 0, len(m.teachers)-1)
	visible := m.visibleCount()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
}

func (m TeacherListModel) visibleCount() int {
	return config.MaxVisibleTeachers
}
