package fastcodec

import "github.com/samholt/fastenc/stopbit"

// Accessor is the read interface a caller implements to expose one message's
// (or one group's, or one sequence entry's) fields to the Encoder. It never
// appears on the wire itself; it is the Encoder's only way to ask "what is
// the value of this field right now".
type Accessor interface {
	// PickTemplate advances to the next message and returns its template id.
	// ok is false once there are no further messages.
	PickTemplate() (templateID uint32, ok bool)

	// IsPresent reports whether identity has a value on this accessor,
	// without fetching it.
	IsPresent(identity FieldIdentity) bool

	GetUnsignedInteger(identity FieldIdentity) (present bool, value uint64, err error)
	GetSignedInteger(identity FieldIdentity) (present bool, value int64, err error)
	GetDecimal(identity FieldIdentity) (present bool, value stopbit.Decimal, err error)
	GetString(identity FieldIdentity) (present bool, value string, err error)
	GetByteVector(identity FieldIdentity) (present bool, value []byte, err error)

	// GetGroup returns a nested Accessor scoped to the named group, or
	// ok=false if the group is absent.
	GetGroup(identity FieldIdentity) (group Accessor, ok bool)

	// GetSequenceLength reports how many entries the named sequence has, or
	// ok=false if the sequence is absent.
	GetSequenceLength(identity FieldIdentity) (length int, ok bool)

	// GetSequenceEntry returns a nested Accessor for entry index of the
	// named sequence.
	GetSequenceEntry(identity FieldIdentity, index int) (entry Accessor, ok bool)

	EndGroup(identity FieldIdentity)
	EndSequenceEntry(identity FieldIdentity, index int)
	EndSequence(identity FieldIdentity)
}
