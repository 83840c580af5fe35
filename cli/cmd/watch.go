package cmd

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/tictoc/demo"
	"github.com/ardnew/tictoc/prof"
)

// watchInterval is the refresh period of the live view.
const watchInterval = 100 * time.Millisecond

type (
	// watchTickMsg requests a refresh of the statistics table.
	watchTickMsg time.Time

	// watchDoneMsg is sent when the demo workload returns.
	watchDoneMsg struct {
		res demo.Result
		err error
	}
)

// Styles.
var (
	watchTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))
	watchDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	watchErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	watchHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	watchTableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8"))
)

var watchColumns = []table.Column{
	{Title: "Region", Width: 24},
	{Title: "Calls", Width: 8},
	{Title: "Total s", Width: 12},
	{Title: "Avg s", Width: 12},
	{Title: "Min s", Width: 12},
	{Title: "Max s", Width: 12},
	{Title: "Open", Width: 6},
}

// watchModel is the Bubble Tea model of the live view. It polls the
// profiler's statistics while the workload runs in a command goroutine.
type watchModel struct {
	profiler *prof.Profiler
	run      tea.Cmd
	cancel   context.CancelFunc
	table    table.Model
	spinner  spinner.Model
	result   demo.Result
	err      error
	started  time.Time
	elapsed  time.Duration
	done     bool
	aborted  bool
}

// watch runs the demo workload on p while rendering live statistics to w.
func watch(
	ctx context.Context,
	p *prof.Profiler,
	limit int,
	w io.Writer,
) (demo.Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newWatchModel(p, cancel, func() tea.Msg {
		res, err := demo.Run(runCtx, p, limit)

		return watchDoneMsg{res: res, err: err}
	})

	final, err := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithOutput(w),
	).Run()
	if err != nil {
		return demo.Result{}, ErrWatch.Wrap(err)
	}

	fm, _ := final.(watchModel)

	return fm.result, fm.err
}

func newWatchModel(
	p *prof.Profiler,
	cancel context.CancelFunc,
	run tea.Cmd,
) watchModel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Cell

	t := table.New(
		table.WithColumns(watchColumns),
		table.WithHeight(4),
		table.WithFocused(false),
		table.WithStyles(styles),
	)

	return watchModel{
		profiler: p,
		run:      run,
		cancel:   cancel,
		table:    t,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		started:  time.Now(),
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run, watchTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// The workload notices cancellation between calls and
			// reports back with watchDoneMsg.
			m.aborted = true
			m.cancel()
		}

		return m, nil

	case watchTickMsg:
		m = m.refresh()
		if m.done {
			return m, nil
		}

		return m, watchTick()

	case watchDoneMsg:
		m.result, m.err, m.done = msg.res, msg.err, true
		m = m.refresh()

		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

// refresh reloads the table from the profiler's current statistics.
func (m watchModel) refresh() watchModel {
	stats := m.profiler.Aggregate()
	prof.SortByAvg(stats)

	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		rows[i] = table.Row{
			s.Name,
			strconv.Itoa(s.Calls),
			formatSeconds(s.Total),
			formatSeconds(s.Avg),
			formatSeconds(s.Min),
			formatSeconds(s.Max),
			strconv.Itoa(s.Open),
		}
	}

	m.table.SetRows(rows)
	m.table.SetHeight(len(rows) + 2)
	m.elapsed = time.Since(m.started).Truncate(time.Millisecond)

	return m
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', 5, 64)
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(watchTitleStyle.Render("tictoc demo"))
	b.WriteString(" ")

	switch {
	case m.done && m.err != nil:
		b.WriteString(watchErrorStyle.Render("✗ " + m.err.Error()))
	case m.done:
		b.WriteString(watchDoneStyle.Render("✔ done in " + m.elapsed.String()))
	case m.aborted:
		b.WriteString(m.spinner.View() + " stopping")
	default:
		b.WriteString(m.spinner.View() + " running " + m.elapsed.String())
	}

	b.WriteString("\n")
	b.WriteString(watchTableStyle.Render(m.table.View()))
	b.WriteString("\n")

	if !m.done {
		b.WriteString(watchHintStyle.Render("q: stop"))
		b.WriteString("\n")
	}

	return b.String()
}
