package scaffold

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// ErrDrift is returned by a check run when the tree differs from the manifest.
var ErrDrift = errors.New("tree does not match manifest")

type Config struct {
	Root     string
	Manifest string
	Files    []string
	DryRun   bool
	Check    bool
	List     bool
	Quiet    bool
	NoColor  bool
}

type App struct {
	cfg            *Config
	fs             FS
	pathResolver   *PathResolver
	sourceProvider *SourceProvider
	console        *Console
}

type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

func (e *DetailedError) Unwrap() error { return e.Err }

func NewApp(cfg *Config, out io.Writer) (*App, error) {
	pr, err := NewPathResolver(cfg.Root)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:            cfg,
		fs:             NewRealFS(),
		pathResolver:   pr,
		sourceProvider: NewSourceProvider(),
		console:        NewConsole(out, cfg.NoColor),
	}, nil
}

func (a *App) Execute() (summary Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()

	m, err := a.sourceProvider.LoadManifest(a.cfg.Manifest)
	if err != nil {
		return Summary{}, err
	}
	m, err = m.Filter(a.cfg.Files)
	if err != nil {
		return Summary{}, err
	}

	switch {
	case a.cfg.List:
		a.console.Print(a.console.FormatManifest(m))
		return Summary{}, nil
	case a.cfg.DryRun:
		a.console.Print(a.console.FormatPlan(a.fileManager(nil).Plan(m)))
		return Summary{}, nil
	case a.cfg.Check:
		return a.check(m)
	default:
		return a.run(m)
	}
}

func (a *App) fileManager(r Reporter) *FileManager {
	return NewFileManager(a.fs, a.pathResolver, r)
}

func (a *App) reporter() Reporter {
	if a.cfg.Quiet {
		return nopReporter{}
	}
	return a.console
}

// run performs the scaffold. The first failure ends it; the footer is only
// printed after every entry succeeded.
func (a *App) run(m *Manifest) (Summary, error) {
	r := a.reporter()
	s, err := a.fileManager(r).Apply(m)
	if err != nil {
		return s, err
	}
	for _, line := range m.Footer {
		r.Println(line)
	}
	return s, nil
}

func (a *App) check(m *Manifest) (Summary, error) {
	s := a.fileManager(nil).Check(m)
	if s.Clean() {
		s.Message = "Tree matches manifest " + m.Name
	} else {
		s.Message = "Tree differs from manifest " + m.Name
	}
	if !a.cfg.Quiet {
		a.console.Print(a.console.FormatSummary(s))
	}
	if !s.Clean() {
		return s, ErrDrift
	}
	return s, nil
}
