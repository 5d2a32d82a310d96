// Package err provides a standardized error handling system for the project.
//
// # Design Principles
//
// 1. Consistency: all packages use the same base error structure
// 2. Context: errors carry package, operation, and code information
// 3. Wrapping: full support for Go 1.13+ error wrapping with errors.Is/As
// 4. Categorization: machine-readable error codes enable programmatic handling
//
// # Usage Patterns
//
// Packages that need extra fields wrap the base Error and expose it
// through Unwrap, so code-based matching still works:
//
//	type AmbiguousError struct {
//	    Candidates []string
//	    base       *err.Error
//	}
//
//	func (e *AmbiguousError) Error() string { return e.base.Error() }
//	func (e *AmbiguousError) Unwrap() error { return e.base }
//
// Error checking follows standard Go patterns:
//
//	if err.IsCode(e, err.CodeNotFound) {
//	    // handle not found
//	}
//
//	var amb *revision.AmbiguousError
//	if errors.As(e, &amb) {
//	    // access amb.Candidates
//	}
//
// # Error Codes
//
// The code space is small and closed: NOT_FOUND, AMBIGUOUS,
// INVALID_FORMAT, INVALID_INPUT, IO. Every error raised by the store,
// codec, and resolvers maps to one of these.
package err
