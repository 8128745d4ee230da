package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kk-code-lab/rselect/internal/app"
	"github.com/kk-code-lab/rselect/internal/config"
	"github.com/kk-code-lab/rselect/internal/logging"
	"github.com/kk-code-lab/rselect/internal/prompt"
	renderui "github.com/kk-code-lab/rselect/internal/ui/render"
)

// Exit statuses.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitCanceled = 130
)

var errNoOptions = errors.New("no options given: pass them as arguments or pipe them on stdin")

// runFunc shows the prompt; tests replace it to avoid a real terminal.
type runFunc func(sel prompt.Select, opts app.Options) (prompt.Answer, error)

func runApplication(sel prompt.Select, opts app.Options) (prompt.Answer, error) {
	application, err := app.NewApplication(opts)
	if err != nil {
		return prompt.Answer{}, fmt.Errorf("failed to initialise terminal: %w", err)
	}
	return application.Run(sel)
}

type cliFlags struct {
	message     string
	helpMessage string
	noHelp      bool
	pageSize    int
	vimMode     bool
	cursor      int
	filter      string
	printIndex  bool
	configPath  string
	logFile     string
	logLevel    string
}

type rootDeps struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
	run        runFunc
}

func defaultDeps() rootDeps {
	return rootDeps{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		run:        runApplication,
	}
}

func newRootCmd(deps rootDeps) *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "rselect [flags] [option...]",
		Short: "Pick one option from a filterable list",
		Long: `rselect shows an interactive list and prints the option you pick.

Options come from the arguments or, when none are given, one per line from
stdin. Type to filter, use the arrow keys to move, space or enter to select
and Esc to cancel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, deps, flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.message, "message", "m", "Select an option:", "prompt message")
	f.StringVar(&flags.helpMessage, "help-message", "", "help line shown below the options")
	f.BoolVar(&flags.noHelp, "no-help", false, "hide the help line")
	f.IntVarP(&flags.pageSize, "page-size", "p", prompt.DefaultPageSize, "number of options visible at once")
	f.BoolVar(&flags.vimMode, "vim", false, "use j/k to move down/up")
	f.IntVarP(&flags.cursor, "cursor", "c", prompt.DefaultStartingCursor, "index of the initially highlighted option")
	f.StringVar(&flags.filter, "filter", "", "filter mode: substring, fuzzy or prefix")
	f.BoolVar(&flags.printIndex, "index", false, "print the option index instead of its label")
	f.StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	f.StringVar(&flags.logFile, "log-file", "", "write debug logs to this file")
	f.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

func execute(cmd *cobra.Command, deps rootDeps, flags cliFlags, args []string) error {
	cfgPath, explicit := flags.configPath, flags.configPath != ""
	if !explicit {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	options := args
	if len(options) == 0 {
		if deps.isTerminal() {
			return errNoOptions
		}
		if options, err = readOptions(deps.stdin); err != nil {
			return err
		}
	}

	sel, err := cfg.Apply(prompt.NewSelect(flags.message, options))
	if err != nil {
		return err
	}
	sel = sel.WithStartingCursor(flags.cursor)
	if err := sel.Validate(); err != nil {
		return err
	}

	theme, err := buildTheme(cfg.Theme)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	answer, err := deps.run(sel.WithLogger(logger), app.Options{
		Out:    deps.stderr,
		Theme:  &theme,
		Logger: logger,
	})
	if err != nil {
		logger.Debug("prompt returned error", zap.Error(err))
		return err
	}

	if flags.printIndex {
		_, err = fmt.Fprintln(deps.stdout, answer.Index)
	} else {
		_, err = fmt.Fprintln(deps.stdout, answer.Value)
	}
	return err
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config, flags cliFlags) {
	changed := fs.Changed
	if changed("page-size") {
		cfg.Prompt.PageSize = flags.pageSize
	}
	if changed("vim") {
		cfg.Prompt.VimMode = flags.vimMode
	}
	if changed("help-message") {
		cfg.Prompt.HelpMessage = flags.helpMessage
		cfg.Prompt.HideHelp = flags.helpMessage == ""
	}
	if changed("no-help") {
		cfg.Prompt.HideHelp = flags.noHelp
	}
	if changed("filter") {
		cfg.Prompt.Filter = flags.filter
	}
	if changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
}

func buildTheme(settings config.ThemeSettings) (renderui.ColorTheme, error) {
	theme := renderui.GetColorTheme()
	fields := []struct {
		name  string
		value string
		dst   *tcell.Color
	}{
		{"prompt_fg", settings.PromptFg, &theme.PromptFg},
		{"selection_fg", settings.SelectionFg, &theme.SelectionFg},
		{"selection_bg", settings.SelectionBg, &theme.SelectionBg},
		{"help_fg", settings.HelpFg, &theme.HelpFg},
		{"answer_fg", settings.AnswerFg, &theme.AnswerFg},
	}
	for _, field := range fields {
		c, err := renderui.ParseColor(field.value, *field.dst)
		if err != nil {
			return theme, fmt.Errorf("%w: theme.%s: %v", prompt.ErrInvalidConfiguration, field.name, err)
		}
		*field.dst = c
	}
	return theme, nil
}

// readOptions returns the non-blank lines of r.
func readOptions(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	options := lo.Filter(lines, func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	if len(options) == 0 {
		return nil, errNoOptions
	}
	return options, nil
}

// exitCode maps an error from the root command to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, prompt.ErrOperationCanceled):
		return exitCanceled
	case errors.Is(err, prompt.ErrInvalidConfiguration),
		errors.Is(err, config.ErrUnsupportedFormat),
		errors.Is(err, errNoOptions):
		return exitUsage
	default:
		return exitFailure
	}
}
