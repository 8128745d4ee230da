package app

import (
	"errors"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kk-code-lab/rselect/internal/prompt"
	renderui "github.com/kk-code-lab/rselect/internal/ui/render"
)

// Options configures an Application.
type Options struct {
	// Screen overrides the terminal screen; tests pass a simulation screen.
	Screen tcell.Screen
	// Out receives the final prompt line. Defaults to stderr.
	Out io.Writer
	// Theme overrides the default colors when non-nil.
	Theme *renderui.ColorTheme
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Application owns the terminal for the duration of one prompt.
type Application struct {
	screen   tcell.Screen
	renderer *renderui.Renderer
	logger   *zap.Logger
}

// NewApplication acquires and initialises the screen.
func NewApplication(opts Options) (*Application, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer := renderui.NewRenderer(screen, out)
	if opts.Theme != nil {
		renderer.SetTheme(*opts.Theme)
	}

	return &Application{
		screen:   screen,
		renderer: renderer,
		logger:   logger,
	}, nil
}

// Run shows sel and returns the submitted answer. The screen is released on
// every exit path; the Application cannot be reused afterwards. A sel without
// a logger, or with the no-op logger NewSelect installs, logs through the
// Application's logger.
func (app *Application) Run(sel prompt.Select) (prompt.Answer, error) {
	defer func() {
		_ = app.Close()
	}()

	if sel.Logger == nil || !sel.Logger.Core().Enabled(zapcore.FatalLevel) {
		sel = sel.WithLogger(app.logger)
	}

	app.logger.Info("prompt started",
		zap.String("message", sel.Message),
		zap.Int("options", len(sel.Options)),
		zap.Int("page_size", sel.PageSize),
		zap.Bool("vim_mode", sel.VimMode))

	answer, err := sel.Prompt(app.renderer)
	switch {
	case err == nil:
		app.logger.Info("answer submitted", zap.Int("index", answer.Index), zap.String("value", answer.Value))
	case errors.Is(err, prompt.ErrOperationCanceled):
		app.logger.Info("prompt canceled")
	default:
		app.logger.Warn("prompt failed", zap.Error(err))
	}
	return answer, err
}

// Close cleans up resources.
func (app *Application) Close() error {
	return app.renderer.Close()
}
