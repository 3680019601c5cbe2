package fastcodec

import (
	"errors"
	"fmt"
	"math"

	"github.com/samholt/fastenc/errs"
	"github.com/samholt/fastenc/format"
	"github.com/samholt/fastenc/internal/pool"
	"github.com/samholt/fastenc/stopbit"
)

var errUnsupportedOperator = errors.New("operator not supported for this field type")

// UintField is a FieldInstruction for the u32/u64 primitive types, covering
// the none, constant, default, copy, increment and delta operators.
type UintField struct {
	identity   FieldIdentity
	operator   format.Operator
	primitive  format.PrimitiveType
	mandatory  bool
	hasInitial bool
	initial    uint64
}

// NewUintField creates a UintField. primitive must be format.TypeUint32 or
// format.TypeUint64 and bounds every present value accordingly; a u32 field
// whose accessor yields a value above math.MaxUint32 fails encoding with
// errs.ErrValueOutOfRange rather than being silently widened. hasInitial
// distinguishes "no declared initial value" from an explicit initial of 0,
// which matters for the default and constant operators.
func NewUintField(identity FieldIdentity, operator format.Operator, primitive format.PrimitiveType, mandatory, hasInitial bool, initial uint64) *UintField {
	return &UintField{
		identity:   identity,
		operator:   operator,
		primitive:  primitive,
		mandatory:  mandatory,
		hasInitial: hasInitial,
		initial:    initial,
	}
}

func (f *UintField) Identity() FieldIdentity { return f.identity }

func (f *UintField) Encode(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, accessor Accessor) error {
	present, value, err := accessor.GetUnsignedInteger(f.identity)
	if err != nil {
		return err
	}
	if present && f.primitive == format.TypeUint32 && value > math.MaxUint32 {
		return fmt.Errorf("%w: field %q value %d exceeds uint32 range", errs.ErrValueOutOfRange, f.identity.Name, value)
	}

	switch f.operator {
	case format.OperatorConstant:
		return f.encodeConstant(present, value)
	case format.OperatorNone:
		return f.encodeNone(dest, ctx, present, value)
	case format.OperatorDefault:
		return f.encodeDefault(dest, pmap, ctx, present, value)
	case format.OperatorCopy:
		return f.encodeCopy(dest, pmap, ctx, present, value)
	case format.OperatorIncrement:
		return f.encodeIncrement(dest, pmap, ctx, present, value)
	case format.OperatorDelta:
		return f.encodeDelta(dest, ctx, present, value)
	default:
		return fmt.Errorf("%w: %s on field %q", errUnsupportedOperator, f.operator, f.identity.Name)
	}
}

func (f *UintField) encodeConstant(present bool, value uint64) error {
	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return nil
	}
	if value != f.initial {
		return fmt.Errorf("%w: field %q value %d != constant %d", errs.ErrConstantMismatch, f.identity.Name, value, f.initial)
	}

	return nil
}

func (f *UintField) encodeNone(dest *DataDestination, ctx *EncoderContext, present bool, value uint64) error {
	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, 0, false) })
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeUint(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, value, true) })
}

func (f *UintField) encodeDefault(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value uint64) error {
	// Absence under the default operator, mandatory or not, means "use the
	// template default" and needs no wire bytes — it is not an absence
	// error, unlike every other operator here.
	if !present {
		return pmap.SetNext(false)
	}
	if f.hasInitial && value == f.initial {
		return pmap.SetNext(false)
	}
	if err := pmap.SetNext(true); err != nil {
		return err
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeUint(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, value, true) })
}

func (f *UintField) encodeCopy(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value uint64) error {
	e, err := ctx.entry(f.identity)
	if err != nil {
		return err
	}

	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}
		if e.state == dictEmpty {
			return pmap.SetNext(false)
		}
		e.state = dictEmpty
		if err := pmap.SetNext(true); err != nil {
			return err
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, 0, false) })
	}

	if e.state == dictAssigned && e.u == value {
		return pmap.SetNext(false)
	}
	e.state = dictAssigned
	e.u = value
	if err := pmap.SetNext(true); err != nil {
		return err
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeUint(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, value, true) })
}

func (f *UintField) encodeIncrement(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value uint64) error {
	e, err := ctx.entry(f.identity)
	if err != nil {
		return err
	}

	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}
		if e.state == dictEmpty {
			return pmap.SetNext(false)
		}
		e.state = dictEmpty
		if err := pmap.SetNext(true); err != nil {
			return err
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, 0, false) })
	}

	if e.state == dictAssigned && value == e.u+1 {
		e.u = value

		return pmap.SetNext(false)
	}
	e.state = dictAssigned
	e.u = value
	if err := pmap.SetNext(true); err != nil {
		return err
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeUint(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableUint(b, value, true) })
}

func (f *UintField) encodeDelta(dest *DataDestination, ctx *EncoderContext, present bool, value uint64) error {
	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, 0, false) })
	}

	e, err := ctx.entry(f.identity)
	if err != nil {
		return err
	}

	var base uint64
	if e.state == dictAssigned {
		base = e.u
	}
	delta := int64(value) - int64(base)
	e.state = dictAssigned
	e.u = value

	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeInt(b, delta) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, delta, true) })
}
