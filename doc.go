// Package automata implements deterministic finite automata and right-linear
// regular grammars over named states and symbols. It provides a line-oriented
// description parser, word recognition with execution traces, structural
// validation, and the standard equivalence constructions between the two
// representations (DFA to grammar and grammar to DFA).
package automata

import "log/slog"

// Logger receives non-fatal anomalies such as transition overwrites. Replace
// it to route anomalies elsewhere; processing never aborts on an anomaly.
var Logger = slog.Default()
