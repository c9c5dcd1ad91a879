// Package cnf parses boolean formulas written in the DIMACS CNF format.
//
// A DIMACS CNF file consists of comment lines (starting with "c "), a problem
// line declaring the format and sizes ("p cnf <vars> <clauses>"), and one
// clause per line given as space-separated non-zero integers, optionally
// terminated by 0:
//
//	c (x1 ∨ ¬x2) ∧ (¬x1 ∨ x2)
//	p cnf 2 2
//	1 -2 0
//	-1 2 0
//
// The parser is deliberately permissive. It does not check that the number
// of clauses matches the problem line, that literals are within the declared
// variable range, or that the problem line comes before the clauses. Lines it
// does not recognize are skipped.
package cnf

// CNF is a parsed DIMACS CNF problem.
type CNF struct {
	// Comments holds the text of each comment line, in input order, with
	// the leading "c " removed.
	Comments []string
	// Format is the format named by the problem line. After a successful
	// parse it is either "cnf" or, if there was no problem line, empty.
	Format string
	// Variables and ClauseCount are the sizes declared by the problem line.
	// They are not checked against Clauses.
	Variables   int
	ClauseCount int
	// Clauses lists the clauses in input order. Each literal is a non-zero
	// integer whose sign gives its polarity; the terminating 0 is dropped.
	Clauses [][]int
}
