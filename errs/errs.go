// Package errs defines the sentinel errors returned by the codec, grouped
// into the error kinds a caller can classify with KindOf.
//
// Call sites wrap a sentinel with additional context using fmt.Errorf and
// the %w verb; callers unwrap with errors.Is against the sentinels declared
// here.
package errs

import "errors"

// Kind classifies a codec error into one of the taxonomy entries.
type Kind uint8

const (
	KindUnknownTemplate Kind = iota + 1
	KindTemplateInvariantViolated
	KindFieldRequiredButAbsent
	KindValueOutOfRange
	KindUsageError
)

func (k Kind) String() string {
	switch k {
	case KindUnknownTemplate:
		return "UnknownTemplate"
	case KindTemplateInvariantViolated:
		return "TemplateInvariantViolated"
	case KindFieldRequiredButAbsent:
		return "FieldRequiredButAbsent"
	case KindValueOutOfRange:
		return "ValueOutOfRange"
	case KindUsageError:
		return "UsageError"
	default:
		return "Unknown"
	}
}

// CodecError is a sentinel error carrying a stable short code and kind.
type CodecError struct {
	Code    string
	Kind    Kind
	Message string
}

func (e *CodecError) Error() string {
	return "[" + e.Code + "] " + e.Message
}

var (
	// ErrUnknownTemplate is returned when a template id has no entry in the registry.
	ErrUnknownTemplate = &CodecError{Code: "ERR D9", Kind: KindUnknownTemplate, Message: "unknown template id"}

	// ErrPmapOverflow is returned when a segment appends more PMAP bits than its template declares capacity for.
	ErrPmapOverflow = &CodecError{Code: "ERR D8", Kind: KindTemplateInvariantViolated, Message: "presence map capacity exceeded"}

	// ErrConstantMismatch is returned when a constant-operator field observes a value other than its declared constant.
	ErrConstantMismatch = &CodecError{Code: "ERR D7", Kind: KindTemplateInvariantViolated, Message: "value does not match constant operator's declared value"}

	// ErrFieldRequiredButAbsent is returned when a mandatory field has no value and its operator cannot represent null.
	ErrFieldRequiredButAbsent = &CodecError{Code: "ERR D5", Kind: KindFieldRequiredButAbsent, Message: "mandatory field is absent"}

	// ErrValueOutOfRange is returned when a value does not fit the field's declared primitive type.
	ErrValueOutOfRange = &CodecError{Code: "ERR D6", Kind: KindValueOutOfRange, Message: "value out of range for primitive type"}

	// ErrInvalidBufferHandle is returned when a DataDestination method is given a handle it did not issue.
	ErrInvalidBufferHandle = &CodecError{Code: "ERR D1", Kind: KindUsageError, Message: "invalid buffer handle"}

	// ErrNoCurrentBuffer is returned when a write is attempted before any buffer has been started.
	ErrNoCurrentBuffer = &CodecError{Code: "ERR D2", Kind: KindUsageError, Message: "no current buffer selected"}

	// ErrMessageAlreadyStarted is returned when start_message is called while a message is already open.
	ErrMessageAlreadyStarted = &CodecError{Code: "ERR D3", Kind: KindUsageError, Message: "a message is already open on this destination"}

	// ErrNoMessageStarted is returned when end_message is called without a matching start_message.
	ErrNoMessageStarted = &CodecError{Code: "ERR D4", Kind: KindUsageError, Message: "no message is open on this destination"}

	// ErrDictionaryKeyCollision is returned when two distinct field identities hash to the same dictionary key.
	ErrDictionaryKeyCollision = &CodecError{Code: "ERR D0", Kind: KindUsageError, Message: "dictionary key hash collision between distinct field identities"}

	// ErrDuplicateTemplateID is returned when a registry is given two templates sharing an id. Not part of the
	// original FAST D-code catalogue; an extension for the JSON/programmatic registry loader.
	ErrDuplicateTemplateID = &CodecError{Code: "ERR R1", Kind: KindUsageError, Message: "duplicate template id"}
)

// KindOf reports the taxonomy Kind of err, or 0 if err does not wrap a
// *CodecError.
func KindOf(err error) Kind {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Kind
	}

	return 0
}
