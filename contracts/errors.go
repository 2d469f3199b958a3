package contracts

import "fmt"

// ErrorKind discriminates the failure modes of parsing, formatting, and
// file-based entry construction. Callers dispatch on kind via errors.As.
type ErrorKind int

const (
	MalformedHash ErrorKind = iota
	InvalidName
	InvalidVersion
	InvalidLength
	InvalidPackageType
	InvalidPercentage
	InvalidEntryFormat
	IoFailure
)

func (this ErrorKind) String() string {
	switch this {
	case MalformedHash:
		return "malformed hash"
	case InvalidName:
		return "invalid name"
	case InvalidVersion:
		return "invalid version"
	case InvalidLength:
		return "invalid length"
	case InvalidPackageType:
		return "invalid package type"
	case InvalidPercentage:
		return "invalid percentage"
	case InvalidEntryFormat:
		return "invalid entry format"
	case IoFailure:
		return "io failure"
	default:
		return "unknown"
	}
}

// Error carries the kind alongside a descriptive message and, for IoFailure,
// the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewIoError(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: IoFailure, Message: fmt.Sprintf(format, args...), cause: cause}
}

func (this *Error) Error() string {
	if this.cause == nil {
		return fmt.Sprintf("%s: %s", this.Kind, this.Message)
	}
	return fmt.Sprintf("%s: %s: %s", this.Kind, this.Message, this.cause)
}

func (this *Error) Unwrap() error {
	return this.cause
}
