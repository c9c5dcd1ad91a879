package cnf

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxLineSize bounds a single input line. Large industrial instances can
// have clauses far longer than bufio's default 64KB token limit.
const maxLineSize = 64 << 20

// A LineSource yields input lines in order. *bufio.Scanner implements it.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// ParseFile opens the named file and parses it as DIMACS CNF.
// Errors opening or reading the file are reported as FileError.
func ParseFile(path string) (*CNF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: FileError, Err: errors.WithStack(err)}
	}
	defer f.Close()
	cnf, err := Parse(f)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Kind == FileError {
			e.Err = errors.Wrapf(e.Err, "reading %s", path)
		}
		return nil, err
	}
	return cnf, nil
}

// Parse parses DIMACS CNF text read from r.
func Parse(r io.Reader) (*CNF, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return ParseLines(s)
}

// ParseLines parses DIMACS CNF from a sequence of lines.
//
// For each line, surrounding whitespace is trimmed and the line is
// classified by its prefix:
//
//   - "c " starts a comment; the rest of the line is recorded.
//   - "p " starts the problem line, which must read "p cnf <vars> <clauses>".
//     A later problem line replaces an earlier one.
//   - '-' or a digit 1-9 starts a clause.
//   - Anything else (including blank lines and lines starting with 0) is
//     ignored.
//
// Parsing stops at the first error, which is always an *Error.
func ParseLines(src LineSource) (*CNF, error) {
	cnf := new(CNF)
	lineNum := 0
	for src.Scan() {
		lineNum++
		l, err := parseLine(src.Text(), cnf.Variables)
		if err != nil {
			err.Line = lineNum
			return nil, err
		}
		switch l.kind {
		case commentLine:
			cnf.Comments = append(cnf.Comments, l.comment)
		case problemLine:
			cnf.Format = l.format
			cnf.Variables = l.vars
			cnf.ClauseCount = l.clauses
		case clauseLine:
			cnf.Clauses = append(cnf.Clauses, l.clause)
		}
	}
	if err := src.Err(); err != nil {
		return nil, &Error{
			Kind: FileError,
			Line: lineNum + 1,
			Err:  errors.Wrap(err, "reading input"),
		}
	}
	return cnf, nil
}

type lineKind int

const (
	ignoreLine lineKind = iota
	commentLine
	problemLine
	clauseLine
)

// line is the result of classifying a single input line. Which fields are
// set depends on kind.
type line struct {
	kind    lineKind
	comment string

	format  string
	vars    int
	clauses int

	clause []int
}

func parseLine(text string, vars int) (line, *Error) {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "c "):
		return line{kind: commentLine, comment: text[len("c "):]}, nil
	case strings.HasPrefix(text, "p "):
		format, nv, nc, err := parseProblem(text[len("p "):])
		if err != nil {
			return line{}, err
		}
		return line{kind: problemLine, format: format, vars: nv, clauses: nc}, nil
	case startsClause(text):
		clause, err := parseClause(text, vars)
		if err != nil {
			return line{}, err
		}
		return line{kind: clauseLine, clause: clause}, nil
	}
	return line{kind: ignoreLine}, nil
}

// startsClause reports whether text begins with '-' or a non-zero digit.
func startsClause(text string) bool {
	if text == "" {
		return false
	}
	b := text[0]
	return b == '-' || ('1' <= b && b <= '9')
}

// headerState tracks which token of the problem line comes next.
type headerState int

const (
	wantFormat headerState = iota
	wantVars
	wantClauses
	headerDone
)

// parseProblem parses the part of a problem line following "p ".
// Missing trailing tokens leave the corresponding counts at zero.
func parseProblem(header string) (format string, vars, clauses int, err *Error) {
	state := wantFormat
	for _, tok := range fields(header) {
		switch state {
		case wantFormat:
			if tok != "cnf" {
				return "", 0, 0, &Error{Kind: NotCNF, Text: tok}
			}
			format = tok
			state = wantVars
		case wantVars:
			if vars, err = parseCount(tok); err != nil {
				return "", 0, 0, err
			}
			state = wantClauses
		case wantClauses:
			if clauses, err = parseCount(tok); err != nil {
				return "", 0, 0, err
			}
			state = headerDone
		case headerDone:
			return "", 0, 0, &Error{Kind: BadProblemLine, Text: header}
		}
	}
	return format, vars, clauses, nil
}

// parseClause parses a whole clause line. Zero tokens are terminators and
// are dropped wherever they appear.
func parseClause(text string, vars int) ([]int, *Error) {
	toks := fields(text)
	n := len(toks)
	if vars > 0 && vars < n {
		n = vars
	}
	clause := make([]int, 0, n)
	for _, tok := range toks {
		if tok == "0" {
			continue
		}
		lit, err := parseLiteral(tok)
		if err != nil {
			return nil, err
		}
		if lit == 0 {
			// Spellings such as "-0" or "00". A line of only these
			// yields an empty clause.
			continue
		}
		clause = append(clause, lit)
	}
	return clause, nil
}

// parseCount parses a non-negative decimal count. A single leading '+' is
// allowed.
func parseCount(tok string) (int, *Error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, strconv.IntSize-1)
	if err != nil {
		return 0, &Error{Kind: BadProblemLine, Text: tok}
	}
	return int(n), nil
}

func parseLiteral(tok string) (int, *Error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &Error{Kind: BadProblemLine, Text: tok}
	}
	return n, nil
}

// fields splits s around runs of space, tab, newline, form feed and
// carriage return. Vertical tab is not a separator.
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return true
		}
		return false
	})
}
