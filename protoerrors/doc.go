// Package protoerrors provides structured error types for prototools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML parsing failures while loading prototype files
//   - ReferenceError: parent-chain failures, including inheritance cycles
//   - NotFoundError: a requested prototype id is absent from the store
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := s.Sanitize("MobHuman")
//	if err != nil {
//	    if errors.Is(err, protoerrors.ErrInheritanceCycle) {
//	        // the parent chain loops back on itself
//	    }
//	}
package protoerrors
