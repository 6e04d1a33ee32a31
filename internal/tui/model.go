package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enotkrutoy/CyberSearch/internal/domain"
	"github.com/enotkrutoy/CyberSearch/internal/domain/diagnostic"
	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
	"github.com/enotkrutoy/CyberSearch/internal/usecase/generate"
)

// Opener launches a URL in the user's browser.
type Opener interface {
	Open(rawURL string) error
}

// noticeClass classifies one line of the panel activity log.
type noticeClass int

const (
	classInfo noticeClass = iota
	classOK
	classWarn
	classAlert
)

// notice is one timestamped line of the activity log.
type notice struct {
	class noticeClass
	text  string
	at    time.Time
}

// Focusable panel elements, cycled with tab.
const (
	focusPhrase = iota
	focusVectors
	focusDensity
	focusPage
	focusCount
)

// Arrow keys move the density slider in coarser steps than the
// single-unit vectors and page sliders.
const densityStep = 16

// bootTickInterval paces the startup notice reveal.
const bootTickInterval = 300 * time.Millisecond

const maxLogLines = 8

type (
	bootTickMsg       time.Time
	generatedMsg      struct{ result generate.Result }
	generateFailedMsg struct{ err error }
	launchedMsg       struct{ err error }
)

// Model is the interactive panel. It owns the phrase input, the three
// parameter sliders and the activity log, and delegates generation to
// the injected Generator.
type Model struct {
	generator generate.Generator
	opener    Opener
	styles    Styles

	input textinput.Model
	focus int

	vectors int
	density int
	page    int

	bootQueue []notice
	log       []notice
	result    *generate.Result

	width  int
	height int
}

// New builds the panel model. defaults seeds the three sliders,
// typically from the panel profile in the configuration.
func New(generator generate.Generator, opener Opener, defaults vector.Params) Model {
	styles := NewStyles(DetectTheme())

	ti := textinput.New()
	ti.Placeholder = "search phrase"
	ti.Focus()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 60
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	return Model{
		generator: generator,
		opener:    opener,
		styles:    styles,
		input:     ti,
		focus:     focusPhrase,
		vectors:   defaults.Vectors(),
		density:   defaults.Density(),
		page:      defaults.Page(),
		bootQueue: bootNotices(),
	}
}

// bootNotices is the startup sequence revealed one line per tick.
func bootNotices() []notice {
	return []notice{
		{class: classInfo, text: "search vector panel online"},
		{class: classInfo, text: "profile defaults loaded"},
		{class: classInfo, text: "vector builder armed"},
		{class: classWarn, text: "queries leave this machine only when a browser launch is requested"},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.nextBootNotice(),
	)
}

// nextBootNotice schedules the reveal of the next queued startup line.
func (m Model) nextBootNotice() tea.Cmd {
	return tea.Tick(bootTickInterval, func(t time.Time) tea.Msg {
		return bootTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		return m, nil

	case bootTickMsg:
		if len(m.bootQueue) == 0 {
			return m, nil
		}
		head := m.bootQueue[0]
		head.at = time.Time(msg)
		m.bootQueue = m.bootQueue[1:]
		m.log = append(m.log, head)
		if len(m.bootQueue) > 0 {
			return m, m.nextBootNotice()
		}
		return m, nil

	case generatedMsg:
		m.result = &msg.result
		for _, d := range msg.result.Diagnostics {
			m.log = append(m.log, notice{
				class: classify(d.Kind()),
				text:  fmt.Sprintf("%s: %s", d.Kind(), d.Text()),
				at:    d.At(),
			})
		}
		m.log = append(m.log, notice{
			class: classOK,
			text:  fmt.Sprintf("%d vectors built for %q", len(msg.result.Vectors), msg.result.Term),
			at:    time.Now(),
		})
		return m, m.launch(msg.result.Vectors[0].URL())

	case generateFailedMsg:
		if errors.Is(msg.err, domain.ErrEmptyTerm) {
			m.log = append(m.log, notice{
				class: classWarn,
				text:  "empty search phrase, nothing to build",
				at:    time.Now(),
			})
		} else {
			m.log = append(m.log, notice{
				class: classAlert,
				text:  msg.err.Error(),
				at:    time.Now(),
			})
		}
		return m, nil

	case launchedMsg:
		if msg.err != nil {
			m.log = append(m.log, notice{
				class: classAlert,
				text:  fmt.Sprintf("%s: %v", diagnostic.PopupBlocked, msg.err),
				at:    time.Now(),
			})
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.focus = (m.focus + 1) % focusCount
		m.syncFocus()
		return m, nil

	case tea.KeyShiftTab:
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.syncFocus()
		return m, nil

	case tea.KeyLeft:
		if m.focus != focusPhrase {
			m.adjust(-1)
			return m, nil
		}

	case tea.KeyRight:
		if m.focus != focusPhrase {
			m.adjust(1)
			return m, nil
		}

	case tea.KeyEnter:
		return m, m.submit()
	}

	// Plain letters act as hotkeys only while the phrase input is not
	// focused; otherwise they belong to the input.
	if m.focus != focusPhrase {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "o":
			if m.result != nil && len(m.result.Vectors) > 0 {
				return m, m.launch(m.result.Vectors[0].URL())
			}
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) syncFocus() {
	if m.focus == focusPhrase {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// adjust moves the focused slider by delta steps within its bounds.
func (m *Model) adjust(delta int) {
	switch m.focus {
	case focusVectors:
		m.vectors = clamp(m.vectors+delta, vector.MinVectors, vector.MaxVectors)
	case focusDensity:
		m.density = clamp(m.density+delta*densityStep, vector.MinDensity, vector.MaxDensity)
	case focusPage:
		m.page = clamp(m.page+delta, vector.MinPage, vector.MaxPage)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// submit kicks off a generation with the current phrase and sliders.
func (m Model) submit() tea.Cmd {
	term := m.input.Value()
	params := vector.NewParams(m.vectors, m.density, m.page)
	generator := m.generator
	return func() tea.Msg {
		result, err := generator.Generate(context.Background(), term, params)
		if err != nil {
			return generateFailedMsg{err: err}
		}
		return generatedMsg{result: result}
	}
}

// launch opens rawURL in the browser off the update loop.
func (m Model) launch(rawURL string) tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		return launchedMsg{err: opener.Open(rawURL)}
	}
}

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("cybersearch panel"))
	b.WriteString("\n\n")

	for _, n := range tail(m.log, maxLogLines) {
		b.WriteString(m.styles.Muted.Render(n.at.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(m.styles.Notice(n.class).Render(n.text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.focusMark(focusPhrase))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.sliderView(focusVectors, "vectors", m.vectors, vector.MinVectors, vector.MaxVectors))
	b.WriteString("\n")
	b.WriteString(m.sliderView(focusDensity, "density", m.density, vector.MinDensity, vector.MaxDensity))
	b.WriteString("\n")
	b.WriteString(m.sliderView(focusPage, "page", m.page, vector.MinPage, vector.MaxPage))
	b.WriteString("\n")

	if m.result != nil {
		b.WriteString("\n")
		for _, v := range m.result.Vectors {
			row := fmt.Sprintf("#%-2d %s", v.Index(), truncate(v.URL(), width-6))
			if v.Index() == 0 {
				b.WriteString(m.styles.PrimaryRow.Render(row))
			} else {
				b.WriteString(m.styles.VectorRow.Render(row))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("tab focus · ←/→ adjust · enter build · o open · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) focusMark(focus int) string {
	if m.focus == focus {
		return m.styles.FocusMark.Render("» ")
	}
	return "  "
}

// sliderView renders one labelled parameter bar with its value.
func (m Model) sliderView(focus int, label string, value, lo, hi int) string {
	const barWidth = 24
	filled := (value - lo) * barWidth / (hi - lo)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("%s%s %s %s",
		m.focusMark(focus),
		m.styles.SliderLabel.Render(fmt.Sprintf("%-8s", label)),
		m.styles.SliderBar.Render(bar),
		m.styles.Body.Render(fmt.Sprintf("%4d", value)),
	)
}

func tail(notices []notice, n int) []notice {
	if len(notices) <= n {
		return notices
	}
	return notices[len(notices)-n:]
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
