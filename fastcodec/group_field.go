package fastcodec

import (
	"fmt"

	"github.com/samholt/fastenc/errs"
)

// GroupField is a FieldInstruction for a nested group. Presence of the
// group itself is resolved through the accessor without consuming a
// PresenceMap bit of its own; only the group's own body PMAP (if its
// template declares one) does, per encode_group.
type GroupField struct {
	identity  FieldIdentity
	body      *SegmentBody
	mandatory bool
}

// NewGroupField creates a GroupField whose nested body is body.
func NewGroupField(identity FieldIdentity, body *SegmentBody, mandatory bool) *GroupField {
	return &GroupField{identity: identity, body: body, mandatory: mandatory}
}

func (f *GroupField) Identity() FieldIdentity { return f.identity }

func (f *GroupField) Encode(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, accessor Accessor) error {
	group, ok := accessor.GetGroup(f.identity)
	if !ok {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return nil
	}
	defer accessor.EndGroup(f.identity)

	return encodeGroup(dest, f.body, ctx, group)
}
