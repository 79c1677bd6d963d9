// sb is a sticky-note ticket board for the terminal.
//
// Tickets are short notes with a priority color, kept in a local key-value
// store (a JSON file by default, or SQLite). Run without flags on a
// terminal to open the board; with --list, or when stdout is not a
// terminal, the tickets are printed instead.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vanderheijden86/stickyboard/internal/store"
	"github.com/vanderheijden86/stickyboard/pkg/board"
	"github.com/vanderheijden86/stickyboard/pkg/config"
	"github.com/vanderheijden86/stickyboard/pkg/debug"
	"github.com/vanderheijden86/stickyboard/pkg/metrics"
	"github.com/vanderheijden86/stickyboard/pkg/ui"
	"github.com/vanderheijden86/stickyboard/pkg/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "sb: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	storePath  string
	backend    string
	configPath string
	exportPath string
	importPath string
	list       bool
	ephemeral  bool
	debug      bool
	version    bool
	help       bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sb", pflag.ContinueOnError)
	fs.StringVar(&opts.storePath, "store", "", "ticket store location (default from config)")
	fs.StringVar(&opts.backend, "backend", "", "store backend: json, sqlite or memory (default from config)")
	fs.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stickyboard/config.yaml)")
	fs.BoolVar(&opts.list, "list", false, "print tickets and exit")
	fs.StringVar(&opts.exportPath, "export", "", "write a localStorage dump to `PATH` (- for stdout) and exit")
	fs.StringVar(&opts.importPath, "import", "", "read a localStorage dump from `PATH` (- for stdin) and exit")
	fs.BoolVar(&opts.ephemeral, "ephemeral", false, "use an in-memory store that is discarded on exit")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging and timing metrics")
	fs.BoolVar(&opts.version, "version", false, "show version")
	fs.BoolVarP(&opts.help, "help", "h", false, "show help")
	return fs
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: sb [options]")
	fmt.Fprintln(w, "\nA sticky-note ticket board for the terminal.")
	fmt.Fprintln(w, "\nOptions:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	fs := newFlagSet(&opts)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, fs)
			return nil
		}
		return err
	}
	if opts.help {
		printHelp(stdout, fs)
		return nil
	}
	if opts.version {
		fmt.Fprintf(stdout, "sb %s\n", version.Version)
		return nil
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(&cfg, opts); err != nil {
		return err
	}

	interactive := !opts.list && opts.exportPath == "" && opts.importPath == "" && isTerminal(stdout)

	debugMode := opts.debug || debug.Enabled()
	if debugMode {
		debug.SetEnabled(true)
		metrics.SetEnabled(true)
	}
	logger, closeLog, err := setupLogging(cfg.Log, interactive, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := openStore(cfg.Store, logger)
	if err != nil {
		return err
	}
	defer s.Close()
	logger.Info().Str("backend", cfg.Store.Backend).Str("path", cfg.Store.Path).Msg("store opened")

	if opts.importPath != "" || opts.exportPath != "" {
		if opts.importPath != "" {
			n, err := importDump(s, opts.importPath, stdin)
			if err != nil {
				return err
			}
			fmt.Fprintf(stderr, "imported %d tickets\n", n)
		}
		if opts.exportPath != "" {
			n, err := exportDump(s, opts.exportPath, stdout)
			if err != nil {
				return err
			}
			if opts.exportPath != "-" {
				fmt.Fprintf(stderr, "exported %d tickets to %s\n", n, opts.exportPath)
			}
		}
		return nil
	}

	if !interactive {
		return listTickets(s, stdout)
	}

	b := board.New(s, board.WithLogger(logger))
	if err := b.Load(); err != nil {
		return err
	}
	m := ui.NewModel(b,
		ui.WithLogger(logger),
		ui.WithCardWidth(cfg.UI.CardWidth),
	)
	err = runTUIProgram(m, cfg.UI.AltScreen)
	if debugMode {
		logTimingSummary(logger)
	}
	if err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}

// loadConfig reads the config file at path, or the XDG default when path
// is empty. A missing default file is not an error; a missing explicit
// file is.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return cfg, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	path = config.ExpandHome(path)
	if _, err := os.Stat(path); err != nil {
		return config.DefaultConfig(), fmt.Errorf("loading config: %w", err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// applyFlags lets command-line flags override the config file.
func applyFlags(cfg *config.Config, opts options) error {
	if opts.backend != "" {
		cfg.Store.Backend = opts.backend
	}
	if opts.ephemeral {
		cfg.Store.Backend = string(store.BackendMemory)
	}
	if opts.storePath != "" {
		cfg.Store.Path = config.ExpandHome(opts.storePath)
	}
	typ, err := store.ParseBackendType(cfg.Store.Backend)
	if err != nil {
		return err
	}
	cfg.Store.Backend = string(typ)
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	return nil
}

// setupLogging routes log records to the configured file. Non-interactive
// runs log warnings and errors to stderr when no file is configured.
func setupLogging(lc config.LogConfig, interactive bool, stderr io.Writer) (zerolog.Logger, func(), error) {
	if lc.File == "" {
		if interactive {
			return zerolog.Nop(), func() {}, nil
		}
		w := zerolog.ConsoleWriter{Out: stderr, NoColor: true, TimeFormat: time.Kitchen}
		level := lc.Level
		if level == "" || level == "info" {
			level = "warn"
		}
		return debug.Setup(w, level), func() {}, nil
	}
	f, err := debug.OpenLogFile(lc.File)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	return debug.Setup(f, lc.Level), func() { f.Close() }, nil
}

func openStore(sc config.StoreConfig, logger zerolog.Logger) (*store.Store, error) {
	typ, err := store.ParseBackendType(sc.Backend)
	if err != nil {
		return nil, err
	}
	backend, err := store.Open(typ, sc.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", typ, err)
	}
	return store.New(backend, store.WithLogger(logger)), nil
}

func importDump(s *store.Store, path string, stdin io.Reader) (int, error) {
	if path == "-" {
		return s.Import(stdin)
	}
	f, err := os.Open(config.ExpandHome(path))
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	defer f.Close()
	return s.Import(f)
}

func exportDump(s *store.Store, path string, stdout io.Writer) (int, error) {
	if path == "-" {
		return s.Export(stdout)
	}
	f, err := os.Create(config.ExpandHome(path))
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	n, err := s.Export(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("export: %w", cerr)
	}
	return n, err
}

// listTickets prints one line per ticket: id, color and the description
// with markup left as stored.
func listTickets(s *store.Store, w io.Writer) error {
	tickets, err := s.List()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOLOR\tDESCRIPTION")
	for _, t := range tickets {
		color := t.Color
		if name, ok := t.ColorName(); ok {
			color = string(name)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, color, strconv.Quote(t.Description))
	}
	return tw.Flush()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func logTimingSummary(logger zerolog.Logger) {
	for _, s := range metrics.Summaries() {
		logger.Info().
			Str("op", s.Name).
			Int64("count", s.Count).
			Dur("avg", s.Avg).
			Dur("max", s.Max).
			Msg("timing summary")
	}
}

func runTUIProgram(m ui.Model, altScreen bool) error {
	progOpts := []tea.ProgramOption{tea.WithoutSignalHandler()}
	if altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
