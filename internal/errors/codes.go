package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK Code = "OK"

	// CodeOutOfBounds is a cardinality violation: a group or token list did
	// not have the fixed shape its field parser requires.
	CodeOutOfBounds Code = "OUT_OF_BOUNDS"
	// CodeParse is a grammar violation: the text was present but did not
	// match its sub-grammar or lexicon.
	CodeParse Code = "PARSE"
	// CodeIO is a read or write failure at the document boundary: a loader
	// reading input or the batch command writing records.
	CodeIO Code = "IO"
	// CodeFormat is a serialization failure surfaced by an exporter.
	CodeFormat Code = "FORMAT"

	CodeCanceled        Code = "CANCELED"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
	CodeUnavailable     Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Structural reports whether the code describes a problem with the document
// text itself rather than with the surrounding plumbing.
func (c Code) Structural() bool {
	return c == CodeOutOfBounds || c == CodeParse
}
