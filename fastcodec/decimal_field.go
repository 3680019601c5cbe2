package fastcodec

import (
	"fmt"

	"github.com/samholt/fastenc/errs"
	"github.com/samholt/fastenc/format"
	"github.com/samholt/fastenc/internal/pool"
	"github.com/samholt/fastenc/stopbit"
)

// DecimalField is a FieldInstruction for the decimal primitive type. It
// supports none, constant, default, copy and delta; increment and tail do
// not apply to decimals.
type DecimalField struct {
	identity   FieldIdentity
	operator   format.Operator
	mandatory  bool
	hasInitial bool
	initial    stopbit.Decimal
}

// NewDecimalField creates a DecimalField.
func NewDecimalField(identity FieldIdentity, operator format.Operator, mandatory, hasInitial bool, initial stopbit.Decimal) *DecimalField {
	return &DecimalField{
		identity:   identity,
		operator:   operator,
		mandatory:  mandatory,
		hasInitial: hasInitial,
		initial:    initial,
	}
}

func (f *DecimalField) Identity() FieldIdentity { return f.identity }

func (f *DecimalField) Encode(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, accessor Accessor) error {
	present, value, err := accessor.GetDecimal(f.identity)
	if err != nil {
		return err
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
	case format.OperatorDelta:
		return f.encodeDelta(dest, ctx, present, value)
	default:
		return fmt.Errorf("%w: %s on field %q", errUnsupportedOperator, f.operator, f.identity.Name)
	}
}

func (f *DecimalField) encodeConstant(present bool, value stopbit.Decimal) error {
	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return nil
	}
	if value != f.initial {
		return fmt.Errorf("%w: field %q value %+v != constant %+v", errs.ErrConstantMismatch, f.identity.Name, value, f.initial)
	}

	return nil
}

func (f *DecimalField) encodeNone(dest *DataDestination, ctx *EncoderContext, present bool, value stopbit.Decimal) error {
	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableDecimal(b, value, false) })
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeDecimal(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableDecimal(b, value, true) })
}

func (f *DecimalField) encodeDefault(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value stopbit.Decimal) error {
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
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeDecimal(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableDecimal(b, value, true) })
}

func (f *DecimalField) encodeCopy(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value stopbit.Decimal) error {
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

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableDecimal(b, stopbit.Decimal{}, false) })
	}

	if e.state == dictAssigned && e.dec == value {
		return pmap.SetNext(false)
	}
	e.state = dictAssigned
	e.dec = value
	if err := pmap.SetNext(true); err != nil {
		return err
	}
	if f.mandatory {
		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeDecimal(b, value) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeNullableDecimal(b, value, true) })
}

func (f *DecimalField) encodeDelta(dest *DataDestination, ctx *EncoderContext, present bool, value stopbit.Decimal) error {
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

	var base stopbit.Decimal
	if e.state == dictAssigned {
		base = e.dec
	}
	delta := stopbit.Decimal{
		Exponent: value.Exponent - base.Exponent,
		Mantissa: value.Mantissa - base.Mantissa,
	}
	e.state = dictAssigned
	e.dec = value

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeDecimal(b, delta) })
}
