package prompt

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/rselect/internal/ui/input"
)

var errKeysExhausted = errors.New("no more scripted keys")

// fakeRenderer records every boundary call and replays scripted keys.
type fakeRenderer struct {
	keys  []input.Key
	calls []string

	// frames holds the option rows of each flushed frame.
	frames  [][]string
	current []string

	cleanupMessage string
	cleanupAnswer  string
	closed         int

	failOn string
}

func newFakeRenderer(keys ...input.Key) *fakeRenderer {
	return &fakeRenderer{keys: keys}
}

func (f *fakeRenderer) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn == call {
		return fmt.Errorf("%s failed", call)
	}
	return nil
}

func (f *fakeRenderer) ResetPrompt() error {
	f.current = nil
	return f.record("reset")
}

func (f *fakeRenderer) PrintPromptInput(message, filter string, cursor int) error {
	return f.record(fmt.Sprintf("prompt %s [%s|%d]", message, filter, cursor))
}

func (f *fakeRenderer) PrintOption(selected bool, label string) error {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	f.current = append(f.current, prefix+label)
	return f.record("option")
}

func (f *fakeRenderer) PrintHelp(message string) error {
	return f.record("help " + message)
}

func (f *fakeRenderer) Flush() error {
	f.frames = append(f.frames, f.current)
	return f.record("flush")
}

func (f *fakeRenderer) ReadKey() (input.Key, error) {
	if err := f.record("read"); err != nil {
		return input.Key{}, err
	}
	if len(f.keys) == 0 {
		return input.Key{}, errKeysExhausted
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func (f *fakeRenderer) Cleanup(message, answer string) error {
	f.cleanupMessage = message
	f.cleanupAnswer = answer
	f.closed++
	return f.record("cleanup")
}

func (f *fakeRenderer) Close() error {
	f.closed++
	return nil
}

func (f *fakeRenderer) lastFrame() []string {
	if len(f.frames) == 0 {
		return nil
	}
	return f.frames[len(f.frames)-1]
}

func down() input.Key { return input.Special(input.KindDown) }
func up() input.Key   { return input.Special(input.KindUp) }
func enter() input.Key {
	return input.Special(input.KindSubmit)
}
func char(r rune) input.Key { return input.Char(r, input.ModNone) }

func typed(s string) []input.Key {
	keys := make([]input.Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, char(r))
	}
	return keys
}
