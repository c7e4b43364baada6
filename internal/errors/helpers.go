package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetStep extracts the parsing step from an error, or "" when it has none
func GetStep(err error) Step {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Step
	}
	return ""
}

// GetInput extracts the offending text from a parse error
func GetInput(err error) string {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Input
	}
	return ""
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsParse checks if an error is a grammar violation
func IsParse(err error) bool {
	return GetCode(err) == CodeParse
}

// IsOutOfBounds checks if an error is a cardinality violation
func IsOutOfBounds(err error) bool {
	return GetCode(err) == CodeOutOfBounds
}

// IsIO checks if an error is a read error
func IsIO(err error) bool {
	return GetCode(err) == CodeIO
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// GetLines extracts the offending group from an out-of-bounds error
func GetLines(err error) []string {
	var e *Error
	if As(err, &e) {
		return e.Lines
	}
	return nil
}

// IsNotExpectedKind checks if an error means the document was not of the
// kind being parsed: its name line is not a heading, or it has no groups
// at all.
func IsNotExpectedKind(err error) bool {
	if !GetCode(err).Structural() {
		return false
	}
	step := GetStep(err)
	if step.NotExpectedKind() {
		return true
	}
	return IsOutOfBounds(err) &&
		(step == StepCreatureGroups || step == StepSpellGroups) &&
		len(GetLines(err)) == 0
}
