// Package gantt classifies the lines of a Mermaid Gantt chart source and
// measures the columns used to align task lines.
//
// A source line is one of:
//
//	gantt                                   title line
//	dateFormat YYYY-MM-DD                   configuration keyword
//	%% a note                               comment
//	%%{init: {"theme": "forest"}}%%         directive
//	%% section Later                        commented-out section
//	section Design                          section header
//	Write plan :done, s1, 2024-01-01, 3d    task
//	%% Old task :crit, 2d                   commented-out task
//
// Anything else is passed through unchanged. Task metadata after the colon is
// split into status tags (done, active, crit, milestone) and up to three
// user-defined items, read positionally as [end], [start, end] or
// [id, start, end]. Dates, durations and "after <id>" references are opaque.
//
// # Column Widths
//
// ComputeWidths folds every task line of a document into a Widths value
// before anything is rendered, so a task near the top of the file can be
// padded for a longer title further down.
package gantt
