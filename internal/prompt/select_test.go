package prompt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kk-code-lab/rselect/internal/ui/input"
)

var fruits = []string{
	"Banana", "Apple", "Strawberry", "Grapes", "Lemon", "Tangerine",
	"Watermelon", "Orange", "Pear", "Avocado", "Pineapple",
}

func TestNewSelectDefaults(t *testing.T) {
	opts := []string{"a", "b"}
	s := NewSelect("Pick", opts)

	assert.Equal(t, DefaultHelpMessage, s.HelpMessage)
	assert.Equal(t, 7, s.PageSize)
	assert.False(t, s.VimMode)
	assert.Equal(t, 0, s.StartingCursor)
	assert.NotNil(t, s.Filter)
	assert.NotNil(t, s.Formatter)
	assert.NotNil(t, s.Logger)

	opts[0] = "mutated"
	assert.Equal(t, "a", s.Options[0], "options must be copied")
}

func TestSelectBuilderLeavesOriginalUntouched(t *testing.T) {
	base := NewSelect("Pick", fruits)
	custom := base.WithPageSize(3).WithVimMode(true).WithStartingCursor(2).WithoutHelpMessage()

	assert.Equal(t, 3, custom.PageSize)
	assert.True(t, custom.VimMode)
	assert.Equal(t, 2, custom.StartingCursor)
	assert.Empty(t, custom.HelpMessage)
	assert.Equal(t, 7, base.PageSize)
	assert.Equal(t, "custom", base.WithHelpMessage("custom").HelpMessage)
}

func TestPromptRejectsInvalidConfigurationBeforeIO(t *testing.T) {
	tests := []struct {
		name string
		sel  Select
	}{
		{"empty options", NewSelect("Pick", nil)},
		{"empty options with other settings", NewSelect("Pick", []string{}).WithStartingCursor(0).WithPageSize(2)},
		{"cursor equal to length", NewSelect("Pick", []string{"a", "b"}).WithStartingCursor(2)},
		{"cursor past length", NewSelect("Pick", []string{"a"}).WithStartingCursor(10)},
		{"negative cursor", NewSelect("Pick", []string{"a"}).WithStartingCursor(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeRenderer()
			_, err := tt.sel.Prompt(r)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Empty(t, r.calls, "no terminal I/O expected")
		})
	}
}

func TestInvalidCursorErrorMessage(t *testing.T) {
	_, err := newSelectPrompt(NewSelect("Pick", []string{"a", "b"}).WithStartingCursor(5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting cursor index 5 is out-of-bounds for length 2 of options")
}

func TestScenarioWrapAroundAndSubmit(t *testing.T) {
	r := newFakeRenderer(down(), down(), down(), enter())
	ans, err := NewSelect("Fruit?", []string{"Banana", "Apple", "Strawberry"}).Prompt(r)

	require.NoError(t, err)
	assert.Equal(t, Answer{Index: 0, Value: "Banana"}, ans)
	assert.Equal(t, []string{"  Banana", "  Apple", "> Strawberry"}, r.frames[2])
	assert.Equal(t, "Fruit?", r.cleanupMessage)
	assert.Equal(t, "Banana", r.cleanupAnswer)
}

func TestScenarioPaginationFollowsCursor(t *testing.T) {
	keys := make([]input.Key, 0, 8)
	for i := 0; i < 7; i++ {
		keys = append(keys, down())
	}
	keys = append(keys, enter())
	r := newFakeRenderer(keys...)

	ans, err := NewSelect("Fruit?", fruits).Prompt(r)
	require.NoError(t, err)
	assert.Equal(t, Answer{Index: 7, Value: "Orange"}, ans)

	assert.Equal(t, []string{
		"> Banana", "  Apple", "  Strawberry", "  Grapes", "  Lemon", "  Tangerine", "  Watermelon",
	}, r.frames[0])
	assert.Equal(t, []string{
		"  Lemon", "  Tangerine", "  Watermelon", "> Orange", "  Pear", "  Avocado", "  Pineapple",
	}, r.lastFrame())
}

func TestScenarioFilterClampsCursorAndSubmits(t *testing.T) {
	keys := []input.Key{down()}
	keys = append(keys, typed("ap")...)
	keys = append(keys, enter())
	r := newFakeRenderer(keys...)

	ans, err := NewSelect("Fruit?", []string{"Banana", "Apple"}).Prompt(r)
	require.NoError(t, err)
	assert.Equal(t, Answer{Index: 1, Value: "Apple"}, ans)
	assert.Equal(t, []string{"> Apple"}, r.lastFrame())
}

func TestSpaceSubmits(t *testing.T) {
	r := newFakeRenderer(down(), char(' '))
	ans, err := NewSelect("Pick", []string{"a", "b"}).Prompt(r)
	require.NoError(t, err)
	assert.Equal(t, 1, ans.Index)
}

func TestSubmitIgnoredWhenNothingMatches(t *testing.T) {
	keys := append(typed("zz"), enter(), char(' '), input.Special(input.KindBackspace), input.Special(input.KindBackspace), enter())
	r := newFakeRenderer(keys...)

	ans, err := NewSelect("Pick", []string{"alpha", "beta"}).Prompt(r)
	require.NoError(t, err)
	assert.Equal(t, Answer{Index: 0, Value: "alpha"}, ans)
}

func TestCancelClosesRendererAndReturnsError(t *testing.T) {
	r := newFakeRenderer(down(), input.Special(input.KindCancel))
	_, err := NewSelect("Pick", []string{"a", "b"}).Prompt(r)

	require.ErrorIs(t, err, ErrOperationCanceled)
	assert.Equal(t, 1, r.closed)
	assert.Empty(t, r.cleanupAnswer)
}

func TestRendererFailuresAbortAndClose(t *testing.T) {
	for _, call := range []string{"reset", "option", "flush", "read", "cleanup"} {
		t.Run(call, func(t *testing.T) {
			r := newFakeRenderer(enter())
			r.failOn = call
			_, err := NewSelect("Pick", []string{"a"}).Prompt(r)
			require.Error(t, err)
			assert.Contains(t, err.Error(), call+" failed")
			assert.GreaterOrEqual(t, r.closed, 1)
		})
	}
}

func TestRenderDrawsPromptOptionsAndHelp(t *testing.T) {
	r := newFakeRenderer(char('a'), enter())
	_, err := NewSelect("Pick", []string{"a", "b"}).WithHelpMessage("help!").Prompt(r)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"reset", "prompt Pick [|0]", "option", "option", "help help!", "flush", "read",
		"reset", "prompt Pick [a|1]", "option", "help help!", "flush", "read",
		"cleanup",
	}, r.calls)
}

func TestRenderSkipsHelpWhenDisabled(t *testing.T) {
	r := newFakeRenderer(enter())
	_, err := NewSelect("Pick", []string{"a"}).WithoutHelpMessage().Prompt(r)
	require.NoError(t, err)
	assert.NotContains(t, r.calls, "help ")
	assert.Equal(t, []string{"reset", "prompt Pick [|0]", "option", "flush", "read", "cleanup"}, r.calls)
}

func TestVimModeKeys(t *testing.T) {
	opts := []string{"one", "two", "three"}

	r := newFakeRenderer(char('j'), char('j'), char('k'), enter())
	ans, err := NewSelect("Pick", opts).WithVimMode(true).Prompt(r)
	require.NoError(t, err)
	assert.Equal(t, "two", ans.Value)

	// Without vim mode j and k are filter text.
	r = newFakeRenderer(char('k'), enter())
	_, err = NewSelect("Pick", opts).Prompt(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, errKeysExhausted)
}

func TestModifiedArrowsGoToFilterBuffer(t *testing.T) {
	p, err := newSelectPrompt(NewSelect("Pick", []string{"a", "b", "c"}))
	require.NoError(t, err)

	p.handleKey(input.Key{Kind: input.KindDown, Mod: input.ModShift})
	assert.Equal(t, 0, p.cursor)
	p.handleKey(input.Char('j', input.ModAlt))
	assert.Equal(t, 0, p.cursor)
	assert.Equal(t, "", p.input.Content())
}

func TestCustomFormatterAndFilter(t *testing.T) {
	onlyEven := func(_, _ string, index int) bool { return index%2 == 0 }
	formatter := func(a Answer) string { return fmt.Sprintf("#%d %s", a.Index, a.Value) }

	r := newFakeRenderer(char('x'), down(), enter())
	ans, err := NewSelect("Pick", []string{"a", "b", "c", "d"}).
		WithFilter(onlyEven).
		WithFormatter(formatter).
		Prompt(r)

	require.NoError(t, err)
	assert.Equal(t, Answer{Index: 2, Value: "c"}, ans)
	assert.Equal(t, "#2 c", r.cleanupAnswer)
}

func TestStartingCursorIsHighlighted(t *testing.T) {
	r := newFakeRenderer(enter())
	ans, err := NewSelect("Pick", fruits).WithStartingCursor(9).Prompt(r)
	require.NoError(t, err)
	assert.Equal(t, "Avocado", ans.Value)
	assert.Contains(t, r.frames[0], "> Avocado")
}

func TestNilCallbacksFallBackToDefaults(t *testing.T) {
	s := NewSelect("Pick", []string{"Banana", "Apple"})
	s.Filter = nil
	s.Formatter = nil
	s.Logger = nil

	r := newFakeRenderer(append(typed("APP"), enter())...)
	ans, err := s.Prompt(r)
	require.NoError(t, err)
	assert.Equal(t, "Apple", ans.Value)
	assert.Equal(t, "Apple", r.cleanupAnswer)
}

func TestFilterLogsAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := newFakeRenderer(char('a'), input.Special(input.KindCancel))

	_, err := NewSelect("Pick", []string{"Banana", "Cherry"}).WithLogger(zap.New(core)).Prompt(r)
	require.True(t, errors.Is(err, ErrOperationCanceled))

	entries := logs.FilterMessage("options filtered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "a", fields["filter"])
	assert.EqualValues(t, 1, fields["matches"])
}

func TestValidate(t *testing.T) {
	require.NoError(t, NewSelect("Pick", []string{"a"}).Validate())
	require.ErrorIs(t, NewSelect("Pick", nil).Validate(), ErrInvalidConfiguration)
}
