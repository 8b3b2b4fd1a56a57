package graph

import "fmt"

// GrammarLoadFailed means a language's grammar binary could not be found or
// is incompatible with the installed Tree-sitter binding. Fatal for that
// language only; other languages continue (spec.md §7).
type GrammarLoadFailed struct {
	Lang  string
	Cause error
}

func (e *GrammarLoadFailed) Error() string {
	return fmt.Sprintf("grammar load failed for %q: %v", e.Lang, e.Cause)
}

func (e *GrammarLoadFailed) Unwrap() error { return e.Cause }

// ParseFailed means Tree-sitter could not produce a syntax tree for a file.
// The file still contributes its file node; analysis of other files
// continues, so this is logged at warn, never raised to the caller.
type ParseFailed struct {
	File  string
	Cause error
}

func (e *ParseFailed) Error() string {
	return fmt.Sprintf("parse failed for %q: %v", e.File, e.Cause)
}

func (e *ParseFailed) Unwrap() error { return e.Cause }

// WorkerCrashed is ParseFailed's worker-pool counterpart: the unit of work
// never completed. Equivalent recovery policy (warn + drop the file).
type WorkerCrashed struct {
	File  string
	Cause error
}

func (e *WorkerCrashed) Error() string {
	return fmt.Sprintf("worker crashed analyzing %q: %v", e.File, e.Cause)
}

func (e *WorkerCrashed) Unwrap() error { return e.Cause }

// InvalidConfig is fatal and must be surfaced before any work begins.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("invalid config field %q: %s", e.Field, e.Reason)
}

// VcsUnavailable downgrades the change-frequency ranker to all-zero ranks;
// logged at warn, never raised.
type VcsUnavailable struct {
	Cause error
}

func (e *VcsUnavailable) Error() string {
	return fmt.Sprintf("vcs unavailable: %v", e.Cause)
}

func (e *VcsUnavailable) Unwrap() error { return e.Cause }

// IoError is fatal when it affects reading the input; a renderer write
// failure is fatal to the top-level driver but never to the engine itself.
type IoError struct {
	Path  string
	Cause error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io error on %q: %v", e.Path, e.Cause)
}

func (e *IoError) Unwrap() error { return e.Cause }
