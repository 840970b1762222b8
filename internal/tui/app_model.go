package tui

import (
	"context"
	"log/slog"

	"todo-cli/internal/model"
	"todo-cli/internal/state"
	"todo-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type Options struct {
	Service Service
	// ConfigErr, when set, replaces the interface with a static message and
	// disables all network calls.
	ConfigErr error
	// StateDir holds ui_state.json (last filter). Empty disables persistence.
	StateDir string
	// BaseURL is shown in the header.
	BaseURL string
	Log     *slog.Logger
	Context context.Context
}

type appModel struct {
	ctx   context.Context
	svc   Service
	state *state.Store
	prefs store.Store
	log   *slog.Logger

	baseURL   string
	configErr error

	width  int
	height int

	keys      keyMap
	help      help.Model
	list      list.Model
	newInput  textinput.Model
	editInput textinput.Model
	spinner   spinner.Model

	focus     focusArea
	editingID model.TaskID
	loading   bool

	modal         modalKind
	confirmFocus  confirmModalFocus
	pendingDelete model.TaskID

	notice    *notice
	noticeSeq int
}

func newAppModel(opts Options) appModel {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := appModel{
		ctx:       ctx,
		svc:       opts.Service,
		state:     state.New(),
		prefs:     store.Store{Dir: opts.StateDir},
		log:       log,
		baseURL:   opts.BaseURL,
		configErr: opts.ConfigErr,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}

	m.list = list.New(nil, newTaskDelegate(), 80, 20)
	m.list.SetShowTitle(false)
	m.list.SetShowStatusBar(false)
	m.list.SetShowHelp(false)
	m.list.SetFilteringEnabled(false)
	m.list.DisableQuitKeybindings()

	m.newInput = textinput.New()
	m.newInput.Prompt = "+ "
	m.newInput.Placeholder = "What needs to be done?"
	m.newInput.CharLimit = 500

	m.editInput = textinput.New()
	m.editInput.Prompt = ""
	m.editInput.CharLimit = 500

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = styleAccent()

	if st, err := m.prefs.LoadUIState(); err != nil {
		m.log.Warn("load ui state", "err", err)
	} else if f, err := model.ParseFilter(st.Filter); err == nil {
		m.state.SetFilter(f)
	}

	// Init issues the first fetch; Init cannot mutate the model, so the
	// spinner state is set here.
	m.loading = m.configErr == nil && m.svc != nil

	m.render()
	return m
}

func (m *appModel) selectedTask() (model.Task, bool) {
	row, ok := m.list.SelectedItem().(taskRow)
	if !ok {
		return model.Task{}, false
	}
	return m.state.Get(row.id)
}
