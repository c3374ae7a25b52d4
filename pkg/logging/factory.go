package logging

import "fmt"

// Output formats understood by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatNone    = "none"
)

// Settings selects and configures a Logger.
type Settings struct {
	// Format is one of FormatConsole, FormatJSON or FormatNone.
	Format string

	// Path is the JSON log file. Empty means stdout for
	// FormatJSON; with FormatConsole a non-empty Path adds a
	// JSON copy of every entry.
	Path string

	// Level is the minimum level name, see ParseLevel. Empty
	// means info.
	Level string

	// Verbose enables debug entries.
	Verbose bool

	// Color controls console colorization.
	Color ColorMode

	// Redact lists secrets masked before output.
	Redact []string
}

// New builds the Logger described by s.
func New(s Settings) (Logger, error) {
	level := ParseLevel(s.Level)
	if s.Verbose {
		level = LevelDebug
	}
	verbose := level == LevelDebug

	var logger Logger
	switch s.Format {
	case "", FormatNone:
		return NullLogger{}, nil
	case FormatConsole:
		mode := s.Color
		if mode == "" {
			mode = ColorAuto
		}
		cl := NewConsoleLogger(verbose, mode)
		cl.level = level
		logger = cl
		if s.Path != "" {
			jl, err := NewJSONLogger(s.Path, level, verbose)
			if err != nil {
				return nil, err
			}
			logger = NewMultiLogger(cl, jl)
		}
	case FormatJSON:
		jl, err := NewJSONLogger(s.Path, level, verbose)
		if err != nil {
			return nil, err
		}
		logger = jl
	default:
		return nil, fmt.Errorf("unknown log format: %s", s.Format)
	}

	if len(s.Redact) > 0 {
		logger = NewRedactingLogger(logger, s.Redact...)
	}
	return logger, nil
}
