package cnf

import "fmt"

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// FileError means the input could not be opened or read.
	FileError ErrorKind = iota + 1
	// NotCNF means the problem line names a format other than "cnf".
	NotCNF
	// BadProblemLine means a problem line had extra tokens or a token
	// could not be parsed as a number. Bad clause literals are also
	// reported with this kind.
	BadProblemLine
	// BadClauseLine is reserved for malformed clause lines. The parser
	// does not currently produce it.
	BadClauseLine
)

func (k ErrorKind) String() string {
	switch k {
	case FileError:
		return "file error"
	case NotCNF:
		return "not cnf"
	case BadProblemLine:
		return "bad problem line"
	case BadClauseLine:
		return "bad clause line"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// An Error is returned by the parsing functions.
type Error struct {
	Kind ErrorKind
	// Text is the offending input: the format name for NotCNF, the bad
	// token or header for BadProblemLine. It is empty for FileError.
	Text string
	// Line is the 1-based number of the input line that caused the error,
	// or 0 if the error is not tied to a line (such as failing to open a
	// file).
	Line int
	// Err is the underlying I/O error for FileError.
	Err error
}

func (e *Error) Error() string {
	var prefix string
	if e.Line > 0 {
		prefix = fmt.Sprintf("line %d: ", e.Line)
	}
	switch e.Kind {
	case FileError:
		if e.Err == nil {
			return prefix + e.Kind.String()
		}
		return prefix + e.Err.Error()
	case NotCNF:
		return fmt.Sprintf("%sonly cnf supported; got %q", prefix, e.Text)
	default:
		return fmt.Sprintf("%s%s %q", prefix, e.Kind, e.Text)
	}
}

func (e *Error) Unwrap() error { return e.Err }
