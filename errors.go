package anydict

import "fmt"

// Decode error codes.  Absence of a key is never an error; these cover the
// only true failure, a bad JSON input.
const (
	// ErrRootType: the top-level JSON value is not an object.
	ErrRootType = "ERR_ROOT_TYPE"
	// ErrSyntax: malformed JSON, or trailing content after the object.
	ErrSyntax = "ERR_SYNTAX"
	// ErrMemberValue: a member's value was rejected by the value decoder.
	ErrMemberValue = "ERR_MEMBER_VALUE"
)

// DecodeError is the error type returned by DecodeJSON.  Callers branch on
// Code; Cause carries the underlying parse or value-decoder error.
type DecodeError struct {
	Code  string
	Msg   string
	Cause error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Msg != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Cause)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	default:
		return e.Code
	}
}

func (e *DecodeError) Unwrap() error { return e.Cause }

func decodeErr(code, msg string, cause error) *DecodeError {
	return &DecodeError{Code: code, Msg: msg, Cause: cause}
}
