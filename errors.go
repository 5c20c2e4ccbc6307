package inversion

import (
	"fmt"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

const (
	// CodeUnknownClass indicates a class identifier cannot be introspected
	CodeUnknownClass = "UNKNOWN_CLASS"

	// CodeConstructionFailed indicates construction was attempted but failed
	CodeConstructionFailed = "CONSTRUCTION_FAILED"

	// CodeDuplicateClass indicates a class is already published in a catalog
	CodeDuplicateClass = "DUPLICATE_CLASS"

	// CodeCircularDependency indicates a dependency cycle was found while planning
	CodeCircularDependency = "CIRCULAR_DEPENDENCY"

	// CodeInvalidConstructor indicates a constructor cannot be analyzed
	CodeInvalidConstructor = "INVALID_CONSTRUCTOR"

	// CodeInvalidBinding indicates an interface binding cannot be made
	CodeInvalidBinding = "INVALID_BINDING"

	// CodeTypeMismatch indicates a resolved instance is not of the requested type
	CodeTypeMismatch = "TYPE_MISMATCH"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

// ErrUnknownClassSentinel is a sentinel error for unknown classes (for error checking).
var ErrUnknownClassSentinel = errs.NewError(CodeUnknownClass, "unknown class", nil)

// ErrConstructionSentinel is a sentinel error for construction failures (for error checking).
var ErrConstructionSentinel = errs.NewError(CodeConstructionFailed, "construction failed", nil)

// ErrCircularDependencySentinel is a sentinel error for circular dependency (for error checking).
var ErrCircularDependencySentinel = errs.NewError(CodeCircularDependency, "circular dependency", nil)

// ErrTypeMismatchSentinel is a sentinel error for type mismatch (for error checking).
var ErrTypeMismatchSentinel = errs.NewError(CodeTypeMismatch, "type mismatch", nil)

// ErrInvalidBindingSentinel is a sentinel error for invalid bindings (for error checking).
var ErrInvalidBindingSentinel = errs.NewError(CodeInvalidBinding, "invalid binding", nil)

// ErrInvalidConstructorSentinel is a sentinel error for invalid constructors (for error checking).
var ErrInvalidConstructorSentinel = errs.NewError(CodeInvalidConstructor, "invalid constructor", nil)

// =============================================================================
// ERROR CONSTRUCTORS
// =============================================================================

// ErrUnknownClass creates an error for a class that cannot be introspected or instantiated.
func ErrUnknownClass(class string, cause error) *errs.Error {
	return errs.NewError(
		CodeUnknownClass,
		fmt.Sprintf("class '%s' is unknown or not constructible", class),
		cause,
	).WithContext("class", class).(*errs.Error)
}

// ErrConstruction creates an error for a failed construction of class.
func ErrConstruction(class, reason string, cause error) *errs.Error {
	return errs.NewError(
		CodeConstructionFailed,
		fmt.Sprintf("cannot construct '%s': %s", class, reason),
		cause,
	).WithContext("class", class).(*errs.Error)
}

// ErrMissingArgument creates a construction error for a constructor slot that
// was neither supplied nor auto-wired.
func ErrMissingArgument(class string, position int) *errs.Error {
	return errs.NewError(
		CodeConstructionFailed,
		fmt.Sprintf("cannot construct '%s': missing argument at position %d", class, position),
		nil,
	).WithContext("class", class).
		WithContext("position", position).(*errs.Error)
}

// ErrArgumentType creates a construction error for an argument that is not
// assignable to its constructor parameter.
func ErrArgumentType(class string, position int, want string, got any) *errs.Error {
	return errs.NewError(
		CodeConstructionFailed,
		fmt.Sprintf("cannot construct '%s': argument %d is %T, want %s", class, position, got, want),
		nil,
	).WithContext("class", class).
		WithContext("position", position).(*errs.Error)
}

// ErrDuplicateClass creates an error for a class published twice.
func ErrDuplicateClass(class string) *errs.Error {
	return errs.NewError(
		CodeDuplicateClass,
		fmt.Sprintf("class '%s' already provided", class),
		nil,
	).WithContext("class", class).(*errs.Error)
}

// ErrCircularDependency creates an error for a dependency cycle found by Plan.
func ErrCircularDependency(path []string) *errs.Error {
	return errs.NewError(
		CodeCircularDependency,
		fmt.Sprintf("circular dependency detected: %v", path),
		nil,
	).WithContext("path", path).(*errs.Error)
}

// ErrInvalidConstructor creates an error for a constructor that cannot be analyzed.
func ErrInvalidConstructor(reason string) *errs.Error {
	return errs.NewError(
		CodeInvalidConstructor,
		"invalid constructor: "+reason,
		nil,
	).WithContext("reason", reason).(*errs.Error)
}

// ErrTypeMismatch creates an error for an instance that is not of the requested Go type.
func ErrTypeMismatch(class string, actual any) *errs.Error {
	return errs.NewError(
		CodeTypeMismatch,
		fmt.Sprintf("class '%s' type mismatch: got %T", class, actual),
		nil,
	).WithContext("class", class).
		WithContext("actual_type", fmt.Sprintf("%T", actual)).(*errs.Error)
}

// ErrInvalidBinding creates an error for an interface binding that cannot be made.
func ErrInvalidBinding(iface, reason string) *errs.Error {
	return errs.NewError(
		CodeInvalidBinding,
		fmt.Sprintf("cannot bind '%s': %s", iface, reason),
		nil,
	).WithContext("class", iface).
		WithContext("reason", reason).(*errs.Error)
}
