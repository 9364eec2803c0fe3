// Package cliparse parses fuzzydb's REPL command grammar:
//
//	EXIT
//	HELP
//	LOAD <filename>
//	SELECT [ * | f1, f2, ... ] WHERE field ~type value (AND field ~type value)*
//
// Parse tokenizes one input line and produces a small AST (Command) the
// caller switches on by Kind.
//
// # Basic usage
//
//	cmd, err := cliparse.Parse("SELECT name WHERE name ~levenshtein(1) john AND city ~equality boston")
//	if err != nil {
//	    // malformed input
//	}
//
//	switch cmd.Kind {
//	case cliparse.Query:
//	    // cmd.Query.Filters, cmd.Query.Projection
//	case cliparse.Load:
//	    // cmd.Filename
//	}
package cliparse
