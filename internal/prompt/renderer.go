package prompt

import "github.com/kk-code-lab/rselect/internal/ui/input"

// Renderer is the terminal the prompt draws on and reads keys from. Any error
// it returns aborts the interaction.
type Renderer interface {
	// ResetPrompt clears the prompt area before a new frame.
	ResetPrompt() error
	// PrintPromptInput draws the prompt line with the current filter text and
	// the filter's cursor position in runes.
	PrintPromptInput(message, filter string, cursor int) error
	// PrintOption draws one option row.
	PrintOption(selected bool, label string) error
	// PrintHelp draws the help line.
	PrintHelp(message string) error
	// Flush makes the frame visible.
	Flush() error
	// ReadKey blocks until the next key press.
	ReadKey() (input.Key, error)
	// Cleanup releases the terminal and leaves the final answer line behind.
	Cleanup(message, answer string) error
	// Close releases the terminal. It is safe to call more than once.
	Close() error
}
