package prompt

import "go.uber.org/zap"

// Default configuration values for Select.
const (
	DefaultHelpMessage    = "↑↓ to move, space or enter to select, type to filter"
	DefaultPageSize       = 7
	DefaultVimMode        = false
	DefaultStartingCursor = 0
)

// Select asks the user to pick exactly one option from a list.
//
// The highlighted option is submitted with space or enter. Typing narrows the
// list through Filter; up/down (and j/k when VimMode is set) move the
// highlight, wrapping at both ends. The list is paginated PageSize rows at a
// time.
//
// Options must be non-empty and StartingCursor must index into it, otherwise
// Prompt fails with ErrInvalidConfiguration before touching the terminal.
type Select struct {
	// Message is shown on the prompt line.
	Message string
	// Options are the labels to choose from.
	Options []string
	// HelpMessage is shown below the options. Empty hides the help line.
	HelpMessage string
	// PageSize is the number of options visible at once.
	PageSize int
	// VimMode enables j/k as down/up.
	VimMode bool
	// StartingCursor is the option highlighted when the prompt opens.
	StartingCursor int
	// Filter decides which options match the typed filter text.
	Filter Filter
	// Formatter renders the answer on the final prompt line.
	Formatter Formatter
	// Logger receives debug events. Never nil after NewSelect.
	Logger *zap.Logger
}

// NewSelect returns a Select with every field populated with its default.
// The options slice is copied.
func NewSelect(message string, options []string) Select {
	return Select{
		Message:        message,
		Options:        append([]string(nil), options...),
		HelpMessage:    DefaultHelpMessage,
		PageSize:       DefaultPageSize,
		VimMode:        DefaultVimMode,
		StartingCursor: DefaultStartingCursor,
		Filter:         DefaultFilter,
		Formatter:      DefaultFormatter,
		Logger:         zap.NewNop(),
	}
}

// WithHelpMessage sets the help line.
func (s Select) WithHelpMessage(message string) Select {
	s.HelpMessage = message
	return s
}

// WithoutHelpMessage hides the help line.
func (s Select) WithoutHelpMessage() Select {
	s.HelpMessage = ""
	return s
}

// WithPageSize sets the number of visible rows.
func (s Select) WithPageSize(pageSize int) Select {
	s.PageSize = pageSize
	return s
}

// WithVimMode enables or disables j/k navigation.
func (s Select) WithVimMode(vimMode bool) Select {
	s.VimMode = vimMode
	return s
}

// WithStartingCursor sets the initially highlighted option.
func (s Select) WithStartingCursor(cursor int) Select {
	s.StartingCursor = cursor
	return s
}

// WithFilter sets the filter function.
func (s Select) WithFilter(filter Filter) Select {
	s.Filter = filter
	return s
}

// WithFormatter sets the answer formatter.
func (s Select) WithFormatter(formatter Formatter) Select {
	s.Formatter = formatter
	return s
}

// WithLogger sets the logger.
func (s Select) WithLogger(logger *zap.Logger) Select {
	s.Logger = logger
	return s
}

// Validate reports ErrInvalidConfiguration for an empty option list or an
// out-of-range starting cursor.
func (s Select) Validate() error {
	_, err := newSelectPrompt(s)
	return err
}

// Prompt runs the interaction on r and returns the submitted answer.
func (s Select) Prompt(r Renderer) (Answer, error) {
	p, err := newSelectPrompt(s)
	if err != nil {
		return Answer{}, err
	}
	return p.run(r)
}
