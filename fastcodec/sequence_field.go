package fastcodec

import (
	"fmt"

	"github.com/samholt/fastenc/errs"
	"github.com/samholt/fastenc/internal/pool"
	"github.com/samholt/fastenc/stopbit"
)

// SequenceField is a FieldInstruction for a sequence: a length field
// (encoded with the none operator) followed by that many entries, each
// encoded the same way as a group.
type SequenceField struct {
	identity  FieldIdentity
	entryBody *SegmentBody
	mandatory bool
}

// NewSequenceField creates a SequenceField whose per-entry body is entryBody.
func NewSequenceField(identity FieldIdentity, entryBody *SegmentBody, mandatory bool) *SequenceField {
	return &SequenceField{identity: identity, entryBody: entryBody, mandatory: mandatory}
}

func (f *SequenceField) Identity() FieldIdentity { return f.identity }

func (f *SequenceField) Encode(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, accessor Accessor) error {
	length, ok := accessor.GetSequenceLength(f.identity)
	if !ok {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, 0, false) })
	}

	if f.mandatory {
		if err := ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeUint(b, uint64(length)) }); err != nil {
			return err
		}
	} else if err := ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, uint64(length), true) }); err != nil {
		return err
	}

	for i := 0; i < length; i++ {
		entry, ok := accessor.GetSequenceEntry(f.identity, i)
		if !ok {
			return fmt.Errorf("%w: sequence %q entry %d missing", errs.ErrFieldRequiredButAbsent, f.identity.Name, i)
		}
		if err := encodeGroup(dest, f.entryBody, ctx, entry); err != nil {
			return err
		}
		accessor.EndSequenceEntry(f.identity, i)
	}
	accessor.EndSequence(f.identity)

	return nil
}
