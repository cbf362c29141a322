package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/views/summary"
)

// statusPollInterval drives re-reads of the submission status so the
// transient Saved/Error banner clears itself on screen.
const statusPollInterval = 500 * time.Millisecond

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the global keybindings.
	keys *keymap.KeyMap

	// formView is the checklist form.
	formView *form.View

	// summaryView is the tally view.
	summaryView *summary.View

	// statusBar shows submission status and identity.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// signingIn guards against overlapping sign-in flows.
	signingIn bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()

	app := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keys:        keys,
		formView:    form.NewView(s, ports.Checklist),
		summaryView: summary.NewView(s, ports.Checklist),
		statusBar:   status.NewBar(s, keys),
		currentView: messages.ViewForm,
	}
	app.refreshStatus()

	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("inspecta - Inspection Checklist"),
		statusTick(),
	)
}

// statusTick schedules the next status poll.
func statusTick() tea.Cmd {
	return tea.Tick(statusPollInterval, func(time.Time) tea.Msg {
		return messages.StatusTick{}
	})
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.formView.SetDimensions(msg.Width, msg.Height)
		a.summaryView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// While a remark or metadata field is being edited, every key
		// belongs to the text input.
		if a.currentView == messages.ViewForm && a.formView.Editing() {
			a.formView, cmd = a.formView.Update(msg)
			return a, cmd
		}

		if handled, handledCmd := a.handleGlobalKey(msg.String()); handled {
			return a, handledCmd
		}

		switch a.currentView {
		case messages.ViewForm:
			a.formView, cmd = a.formView.Update(msg)
			return a, cmd
		case messages.ViewSummary:
			if msg.String() == "esc" {
				a.currentView = messages.ViewForm
			}
			return a, nil
		case messages.ViewHelp:
			if msg.String() == "esc" {
				a.currentView = messages.ViewForm
			}
			return a, nil
		}
		return a, nil

	case messages.StatusTick:
		a.refreshStatus()
		return a, statusTick()

	case messages.SubmitCompleted:
		a.err = msg.Err
		if msg.Err == nil {
			// Success consumed the form; start over at the top.
			a.formView.Reset()
			a.currentView = messages.ViewForm
		}
		a.refreshStatus()
		return a, nil

	case messages.SignInCompleted:
		a.signingIn = false
		a.err = msg.Err
		a.refreshStatus()
		return a, nil

	case messages.SignedOut:
		a.err = msg.Err
		a.refreshStatus()
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewForm:
		a.formView, cmd = a.formView.Update(msg)
	case messages.ViewSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// handleGlobalKey dispatches keys that work from any view.
func (a *App) handleGlobalKey(keyStr string) (bool, tea.Cmd) {
	switch {
	case keymap.Matches(keyStr, a.keys.Summary):
		if a.currentView == messages.ViewSummary {
			a.currentView = messages.ViewForm
		} else {
			a.currentView = messages.ViewSummary
		}
		return true, nil

	case keymap.Matches(keyStr, a.keys.Help):
		if a.currentView == messages.ViewHelp {
			a.currentView = messages.ViewForm
		} else {
			a.currentView = messages.ViewHelp
		}
		return true, nil

	case keymap.Matches(keyStr, a.keys.Submit):
		return true, a.submit()

	case keymap.Matches(keyStr, a.keys.Reset):
		a.ports.Checklist.Reset()
		a.formView.Reset()
		return true, nil

	case keymap.Matches(keyStr, a.keys.SignIn):
		return true, a.signIn()

	case keymap.Matches(keyStr, a.keys.SignOut):
		return true, a.signOut()

	case keymap.Matches(keyStr, a.keys.Quit):
		return true, tea.Quit
	}

	return false, nil
}

// submit runs the submission pipeline off the update loop.
func (a *App) submit() tea.Cmd {
	submission := a.ports.Submission
	ctx := a.ctx
	a.refreshStatus()
	return func() tea.Msg {
		return messages.SubmitCompleted{Err: submission.Submit(ctx)}
	}
}

// signIn runs the browser sign-in flow off the update loop.
func (a *App) signIn() tea.Cmd {
	if a.signingIn {
		return nil
	}
	a.signingIn = true

	session := a.ports.Session
	ctx := a.ctx
	return func() tea.Msg {
		s, err := session.SignIn(ctx)
		return messages.SignInCompleted{Session: s, Err: err}
	}
}

func (a *App) signOut() tea.Cmd {
	session := a.ports.Session
	return func() tea.Msg {
		return messages.SignedOut{Err: session.SignOut()}
	}
}

// refreshStatus re-reads the submission status and identity into the
// status bar.
func (a *App) refreshStatus() {
	a.statusBar.SetStatus(a.ports.Submission.Status())

	current := a.ports.Session.Current()
	switch {
	case current == nil:
		a.statusBar.SetIdentity("")
	case current.Name != "":
		a.statusBar.SetIdentity(current.Name)
	default:
		a.statusBar.SetIdentity(current.Email)
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewForm:
		body = a.formView.View()
	case messages.ViewSummary:
		body = a.summaryView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.formView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Form:
  j/k, ↑/↓    Move between fields and questions
  h/l, ←/→    Previous / next category
  y / n / a   Answer Yes / No / N/A
  enter, r    Edit field or remark (enter saves, esc cancels)

Actions:
  ctrl+s      Submit the checklist
  ctrl+r      Reset the whole form
  i           Sign in with Google
  o           Sign out

Views:
  tab         Toggle summary
  ?           Toggle this help
  esc         Back to form
  q, ctrl+c   Quit

[esc] back to form`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.formView.SetDimensions(width, height)
	a.summaryView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
