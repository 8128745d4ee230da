package prompt

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/kk-code-lab/rselect/internal/ui/input"
	"github.com/kk-code-lab/rselect/internal/ui/paginate"
	"github.com/kk-code-lab/rselect/internal/ui/textinput"
)

type status int

const (
	statusEditing status = iota
	statusSubmitted
	statusCanceled
)

// selectPrompt holds the mutable state of one Select interaction. cursor
// indexes filtered, not options.
type selectPrompt struct {
	message     string
	options     []string
	helpMessage string
	pageSize    int
	vimMode     bool
	filter      Filter
	formatter   Formatter
	logger      *zap.Logger

	input    *textinput.Input
	filtered []int
	cursor   int
}

func newSelectPrompt(s Select) (*selectPrompt, error) {
	if len(s.Options) == 0 {
		return nil, fmt.Errorf("%w: available options can not be empty", ErrInvalidConfiguration)
	}
	if s.StartingCursor < 0 || s.StartingCursor >= len(s.Options) {
		return nil, fmt.Errorf("%w: starting cursor index %d is out-of-bounds for length %d of options",
			ErrInvalidConfiguration, s.StartingCursor, len(s.Options))
	}

	p := &selectPrompt{
		message:     s.Message,
		options:     s.Options,
		helpMessage: s.HelpMessage,
		pageSize:    s.PageSize,
		vimMode:     s.VimMode,
		filter:      s.Filter,
		formatter:   s.Formatter,
		logger:      s.Logger,
		input:       textinput.New(),
		filtered:    lo.Range(len(s.Options)),
		cursor:      s.StartingCursor,
	}
	if p.filter == nil {
		p.filter = DefaultFilter
	}
	if p.formatter == nil {
		p.formatter = DefaultFormatter
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p, nil
}

// filterOptions returns the indices of the options matching the current
// filter text, in option order. An empty filter matches everything.
func (p *selectPrompt) filterOptions() []int {
	text := p.input.Content()
	matches := make([]int, 0, len(p.options))
	for i, opt := range p.options {
		if text == "" || p.filter(text, opt, i) {
			matches = append(matches, i)
		}
	}
	return matches
}

// refilter recomputes the visible options. The cursor is clamped onto the last
// row when the list shrinks below it, and left alone when nothing matches.
func (p *selectPrompt) refilter() {
	matches := p.filterOptions()
	if len(matches) > 0 && p.cursor >= len(matches) {
		p.cursor = len(matches) - 1
	}
	p.filtered = matches

	p.logger.Debug("options filtered",
		zap.String("filter", p.input.Content()),
		zap.Int("matches", len(matches)),
		zap.Int("cursor", p.cursor))
}

func (p *selectPrompt) moveUp() {
	switch {
	case p.cursor > 0:
		p.cursor--
	case len(p.filtered) > 0:
		p.cursor = len(p.filtered) - 1
	default:
		p.cursor = 0
	}
}

func (p *selectPrompt) moveDown() {
	if len(p.filtered) == 0 {
		return
	}
	p.cursor++
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
}

// answer resolves the highlighted option. It reports false when nothing
// matches the filter.
func (p *selectPrompt) answer() (Answer, bool) {
	if p.cursor < 0 || p.cursor >= len(p.filtered) {
		return Answer{}, false
	}
	idx := p.filtered[p.cursor]
	return NewAnswer(idx, p.options[idx]), true
}

// handleKey applies one key press and returns the resulting status.
func (p *selectPrompt) handleKey(key input.Key) status {
	switch {
	case key.Kind == input.KindCancel:
		return statusCanceled
	case key.Kind == input.KindSubmit, key.IsChar(' ', input.ModNone):
		if _, ok := p.answer(); ok {
			return statusSubmitted
		}
	case key.Is(input.KindUp), p.vimMode && key.IsChar('k', input.ModNone):
		p.moveUp()
	case key.Is(input.KindDown), p.vimMode && key.IsChar('j', input.ModNone):
		p.moveDown()
	default:
		if p.input.HandleKey(key) {
			p.refilter()
		}
	}
	return statusEditing
}

// row is one visible option in a rendered frame.
type row struct {
	answer   Answer
	selected bool
}

// frame is everything drawn for one iteration of the loop.
type frame struct {
	message      string
	filter       string
	filterCursor int
	rows         []row
	help         string
}

func (p *selectPrompt) frame() frame {
	choices := lo.Map(p.filtered, func(idx int, _ int) Answer {
		return NewAnswer(idx, p.options[idx])
	})
	page := paginate.Paginate(p.pageSize, choices, p.cursor)

	rows := make([]row, len(page.Content))
	for i, choice := range page.Content {
		rows[i] = row{answer: choice, selected: i == page.Selection}
	}

	return frame{
		message:      p.message,
		filter:       p.input.Content(),
		filterCursor: p.input.Cursor(),
		rows:         rows,
		help:         p.helpMessage,
	}
}

func (p *selectPrompt) render(r Renderer) error {
	f := p.frame()

	if err := r.ResetPrompt(); err != nil {
		return err
	}
	if err := r.PrintPromptInput(f.message, f.filter, f.filterCursor); err != nil {
		return err
	}
	for _, rw := range f.rows {
		if err := r.PrintOption(rw.selected, rw.answer.Value); err != nil {
			return err
		}
	}
	if f.help != "" {
		if err := r.PrintHelp(f.help); err != nil {
			return err
		}
	}
	return r.Flush()
}

func (p *selectPrompt) run(r Renderer) (answer Answer, err error) {
	defer func() {
		if err != nil {
			_ = r.Close()
		}
	}()

	for {
		if err := p.render(r); err != nil {
			return Answer{}, err
		}

		key, err := r.ReadKey()
		if err != nil {
			return Answer{}, err
		}

		switch p.handleKey(key) {
		case statusCanceled:
			p.logger.Debug("prompt canceled")
			return Answer{}, ErrOperationCanceled
		case statusSubmitted:
			final, _ := p.answer()
			if err := r.Cleanup(p.message, p.formatter(final)); err != nil {
				return Answer{}, err
			}
			p.logger.Debug("prompt submitted", zap.Int("index", final.Index), zap.String("value", final.Value))
			return final, nil
		}
	}
}
