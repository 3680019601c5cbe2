package fastcodec

import (
	"fmt"
	"math"

	"github.com/samholt/fastenc/errs"
	"github.com/samholt/fastenc/format"
	"github.com/samholt/fastenc/internal/pool"
	"github.com/samholt/fastenc/stopbit"
)

// IntField is a FieldInstruction for the i32/i64 primitive types, the
// signed analogue of UintField.
type IntField struct {
	identity   FieldIdentity
	operator   format.Operator
	primitive  format.PrimitiveType
	mandatory  bool
	hasInitial bool
	initial    int64
}

// NewIntField creates an IntField. primitive must be format.TypeInt32 or
// format.TypeInt64 and bounds every present value accordingly; an i32 field
// whose accessor yields a value outside [math.MinInt32, math.MaxInt32] fails
// encoding with errs.ErrValueOutOfRange rather than being silently widened.
func NewIntField(identity FieldIdentity, operator format.Operator, primitive format.PrimitiveType, mandatory, hasInitial bool, initial int64) *IntField {
	return &IntField{
		identity:   identity,
		operator:   operator,
		primitive:  primitive,
		mandatory:  mandatory,
		hasInitial: hasInitial,
		initial:    initial,
	}
}

func (f *IntField) Identity() FieldIdentity { return f.identity }

func (f *IntField) Encode(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, accessor Accessor) error {
	present, value, err := accessor.GetSignedInteger(f.identity)
	if err != nil {
		return err
	}
	if present && f.primitive == format.TypeInt32 && (value > math.MaxInt32 || value < math.MinInt32) {
		return fmt.Errorf("%w: field %q value %d exceeds int32 range", errs.ErrValueOutOfRange, f.identity.Name, value)
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

func (f *IntField) encodeConstant(present bool, value int64) error {
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

func (f *IntField) encodeNone(dest *DataDestination, ctx *EncoderContext, present bool, value int64) error {
	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, 0, false) })
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeInt(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, value, true) })
}

func (f *IntField) encodeDefault(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value int64) error {
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
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeInt(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, value, true) })
}

func (f *IntField) encodeCopy(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value int64) error {
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

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, 0, false) })
	}

	if e.state == dictAssigned && e.i == value {
		return pmap.SetNext(false)
	}
	e.state = dictAssigned
	e.i = value
	if err := pmap.SetNext(true); err != nil {
		return err
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeInt(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, value, true) })
}

func (f *IntField) encodeIncrement(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value int64) error {
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

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, 0, false) })
	}

	if e.state == dictAssigned && value == e.i+1 {
		e.i = value

		return pmap.SetNext(false)
	}
	e.state = dictAssigned
	e.i = value
	if err := pmap.SetNext(true); err != nil {
		return err
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeInt(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, value, true) })
}

func (f *IntField) encodeDelta(dest *DataDestination, ctx *EncoderContext, present bool, value int64) error {
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

	var base int64
	if e.state == dictAssigned {
		base = e.i
	}
	delta := value - base
	e.state = dictAssigned
	e.i = value

	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeInt(b, delta) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableInt(b, delta, true) })
}
