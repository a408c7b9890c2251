// Package shell is the interactive to-do screen: a title, a scrollable task
// list, a text field that adds tasks on Enter, and key bindings for clearing
// and pushing. Lines starting with ':' run actions such as :print.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"todo/internal/config"
	"todo/internal/export"
	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/tasklist"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

var (
	errPushUnavailable = errors.New("push is not available")
	errPushRunning     = errors.New("a push is already running")
)

// Connector opens the export backend on first use.
type Connector func(ctx context.Context) (service.Service, error)

// Options configure a Screen.
type Options struct {
	Settings config.Settings

	// Quiet suppresses informational messages (push and print results).
	Quiet bool

	// Connect is used by push. Nil disables pushing.
	Connect Connector

	Log *logging.Logger
}

// Screen is the tea.Model of the to-do screen. It observes its TaskList and
// refreshes the list view after every mutation.
type Screen struct {
	list     *tasklist.TaskList
	settings config.Settings
	quiet    bool
	connect  Connector
	svc      service.Service
	log      *logging.Logger
	ctx      context.Context

	keys   keyMap
	styles styles
	help   help.Model
	input  textinput.Model
	view   viewport.Model

	width, height int

	// follow keeps the newest task in sight until the user scrolls away.
	follow bool

	status    string
	statusErr bool
	pushing   bool
	quitting  bool

	unsubscribe func()
}

// pushDoneMsg carries the result of a push started by the screen.
type pushDoneMsg struct {
	svc   service.Service
	total int
	res   export.Result
	err   error
}

// New creates a Screen over list. Call Close to stop observing the list.
func New(list *tasklist.TaskList, opts Options) *Screen {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	s := &Screen{
		list:     list,
		settings: opts.Settings,
		quiet:    opts.Quiet,
		connect:  opts.Connect,
		log:      log.WithComponent("shell"),
		ctx:      context.Background(),
		keys:     defaultKeyMap(),
		styles:   defaultStyles(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	s.input = textinput.New()
	s.input.Prompt = "> "
	s.input.Placeholder = opts.Settings.Hint
	s.styles.placeholder = s.input.PlaceholderStyle
	s.input.Focus()

	s.view = viewport.New(defaultWidth, 1)
	s.view.KeyMap = s.keys.scrolling()

	s.renderList(list.Items())
	s.unsubscribe = list.Subscribe(s)
	s.layout()
	return s
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run shows the screen until the user quits or ctx is cancelled.
func (s *Screen) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.ctx = ctx
	p := tea.NewProgram(s, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			s.log.Debug("session cancelled")
			return nil
		}
		return err
	}
	return nil
}

// Close detaches the screen from its list.
func (s *Screen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Hint returns the placeholder currently shown in the text field.
func (s *Screen) Hint() string {
	return s.input.Placeholder
}

// Status returns the message line below the text field.
func (s *Screen) Status() string {
	return s.status
}

// Quitting reports whether the user asked to leave.
func (s *Screen) Quitting() bool {
	return s.quitting
}

// ListChanged implements tasklist.Observer.
func (s *Screen) ListChanged(c tasklist.Change) {
	s.log.Debug("list changed", logging.Fields{"kind": c.Kind, "count": len(c.Items)})
	s.renderList(c.Items)
	s.follow = c.Kind == tasklist.Added
	if !s.follow {
		s.view.GotoTop()
	}
	s.layout()
}

// Init implements tea.Model.
func (s *Screen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.input.Width = max(msg.Width-len(s.input.Prompt)-1, 0)
	case tea.KeyMsg:
		cmd = s.handleKey(msg)
	case pushDoneMsg:
		s.finishPush(msg)
	default:
		s.input, cmd = s.input.Update(msg)
	}
	s.layout()
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, s.keys.Quit):
		s.quitting = true
		return tea.Quit
	case key.Matches(msg, s.keys.Submit):
		line := s.input.Value()
		s.input.SetValue("")
		s.clearStatus()
		return s.submit(line)
	case key.Matches(msg, s.keys.Clear):
		s.clearStatus()
		s.list.Clear()
	case key.Matches(msg, s.keys.Push):
		s.clearStatus()
		cmd, err := s.push("")
		if err != nil {
			s.fail(err)
		}
		return cmd
	case key.Matches(msg, s.keys.scrollKeys()...):
		s.view, cmd = s.view.Update(msg)
		s.follow = s.view.AtBottom()
	default:
		s.input, cmd = s.input.Update(msg)
	}
	return cmd
}

// submit handles one line from the text field. A line starting with ':' is
// an action; anything else is the text of a new task.
func (s *Screen) submit(line string) tea.Cmd {
	if !strings.HasPrefix(line, ":") {
		s.add(line)
		return nil
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	act, ok := findAction(name)
	if !ok {
		s.fail(fmt.Errorf("unknown action: :%s (try :help)", name))
		return nil
	}
	cmd, err := act.run(s, arg)
	if err != nil {
		s.log.Debug("action failed", logging.Fields{"action": act.name, "error": err})
		s.fail(err)
	}
	return cmd
}

// add is the "Add" button: an empty submission swaps the hint for the
// warning and leaves the list alone.
func (s *Screen) add(raw string) {
	task, err := s.list.Add(raw)
	if errors.Is(err, tasklist.ErrEmpty) {
		s.input.Placeholder = s.settings.Warning
		s.input.PlaceholderStyle = s.styles.warning
		s.log.Debug("rejected empty task")
		return
	}
	s.input.Placeholder = s.settings.Hint
	s.input.PlaceholderStyle = s.styles.placeholder
	s.log.Debug("task added", logging.Fields{"length": len(task.Text), "count": s.list.Len()})
}

// push starts exporting a snapshot of the list. The returned command runs
// off the event loop and reports back with a pushDoneMsg.
func (s *Screen) push(listName string) (tea.Cmd, error) {
	items := s.list.Items()
	if len(items) == 0 {
		return nil, export.ErrNothingToPush
	}
	if s.pushing {
		return nil, errPushRunning
	}
	if s.svc == nil && s.connect == nil {
		return nil, errPushUnavailable
	}

	listName = strings.TrimSpace(listName)
	if listName == "" {
		listName = s.settings.List
	}
	s.pushing = true
	s.info("pushing " + output.TaskCount(len(items)) + "...")

	ctx, svc, connect := s.ctx, s.svc, s.connect
	return func() tea.Msg {
		if svc == nil {
			var err error
			if svc, err = connect(ctx); err != nil {
				return pushDoneMsg{total: len(items), err: err}
			}
		}
		res, err := export.Push(ctx, svc, listName, items)
		return pushDoneMsg{svc: svc, total: len(items), res: res, err: err}
	}, nil
}

func (s *Screen) finishPush(msg pushDoneMsg) {
	s.pushing = false
	if msg.svc != nil {
		s.svc = msg.svc
	}

	var b strings.Builder
	if msg.err != nil {
		s.log.Debug("push failed", logging.Fields{"pushed": msg.res.Pushed, "error": msg.err})
		if msg.res.Pushed > 0 && !s.quiet {
			output.FormatPartialPush(&b, msg.res.Pushed, msg.total, msg.res.List.Title)
		}
		s.status = b.String() + "error: " + msg.err.Error()
		s.statusErr = true
		return
	}

	s.log.Info("pushed tasks", logging.Fields{"list": msg.res.List.Title, "count": msg.res.Pushed})
	output.FormatPushed(&b, msg.res.Pushed, msg.res.List.Title, msg.res.CreatedList)
	s.clearStatus()
	s.info(strings.TrimSuffix(b.String(), "\n"))
}

// info shows a message unless quiet.
func (s *Screen) info(msg string) {
	if s.quiet {
		return
	}
	s.status = msg
	s.statusErr = false
}

func (s *Screen) fail(err error) {
	s.status = "error: " + err.Error()
	s.statusErr = true
}

func (s *Screen) clearStatus() {
	s.status = ""
	s.statusErr = false
}

func (s *Screen) renderList(items []tasklist.Task) {
	var b strings.Builder
	output.FormatList(&b, s.settings.Bullet, items)
	s.view.SetContent(strings.TrimSuffix(b.String(), "\n"))
}

// layout gives the list whatever height the header and footer leave.
func (s *Screen) layout() {
	chrome := lipgloss.Height(s.header()) + lipgloss.Height(s.footer())
	s.view.Width = s.width
	s.view.Height = max(s.height-chrome, 1)
	if s.follow {
		s.view.GotoBottom()
	}
}

// View implements tea.Model.
func (s *Screen) View() string {
	return s.header() + "\n" + s.view.View() + "\n" + s.footer()
}

func (s *Screen) header() string {
	return s.styles.title.Render(s.settings.Title) + "\n" + s.styles.rule.Render(output.Separator)
}

func (s *Screen) footer() string {
	var b strings.Builder
	b.WriteString(s.styles.rule.Render(output.Separator))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	if s.status != "" {
		style := s.styles.info
		if s.statusErr {
			style = s.styles.err
		}
		b.WriteString("\n")
		b.WriteString(style.Render(s.status))
	}
	b.WriteString("\n")
	b.WriteString(s.help.ShortHelpView(s.keys.ShortHelp()))
	return b.String()
}
