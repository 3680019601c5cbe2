package fastcodec

import (
	"bytes"
	"fmt"

	"github.com/samholt/fastenc/errs"
	"github.com/samholt/fastenc/format"
	"github.com/samholt/fastenc/internal/pool"
	"github.com/samholt/fastenc/stopbit"
)

// stringKind distinguishes the three text/binary wire representations that
// share presence/dictionary semantics: ascii and unicode differ only in
// their stop-bit framing (terminator byte vs length prefix); byteVector is
// the same length-prefixed framing as unicode but untyped.
type stringKind uint8

const (
	kindASCII stringKind = iota
	kindUnicode
	kindByteVec
)

// StringField is a FieldInstruction for the ascii, unicode and byte-vector
// primitive types. It supports none, constant, default, copy and tail.
//
// Tail is implemented conservatively: a changed value always re-transmits
// the whole value rather than the differing suffix only. This keeps the
// wire bytes self-describing without a decoder-side dictionary walk, at
// the cost of the tail operator's usual compression benefit.
type StringField struct {
	identity   FieldIdentity
	operator   format.Operator
	kind       stringKind
	mandatory  bool
	hasInitial bool
	initial    []byte
}

// NewStringField creates a StringField for ascii or unicode text.
func NewStringField(identity FieldIdentity, operator format.Operator, unicode, mandatory, hasInitial bool, initial string) *StringField {
	kind := kindASCII
	if unicode {
		kind = kindUnicode
	}

	return &StringField{
		identity:   identity,
		operator:   operator,
		kind:       kind,
		mandatory:  mandatory,
		hasInitial: hasInitial,
		initial:    []byte(initial),
	}
}

// NewByteVectorField creates a StringField for the byte-vector primitive
// type.
func NewByteVectorField(identity FieldIdentity, operator format.Operator, mandatory, hasInitial bool, initial []byte) *StringField {
	return &StringField{
		identity:   identity,
		operator:   operator,
		kind:       kindByteVec,
		mandatory:  mandatory,
		hasInitial: hasInitial,
		initial:    initial,
	}
}

func (f *StringField) Identity() FieldIdentity { return f.identity }

func (f *StringField) fetch(accessor Accessor) (present bool, value []byte, err error) {
	if f.kind == kindByteVec {
		present, b, err := accessor.GetByteVector(f.identity)

		return present, b, err
	}
	present, s, err := accessor.GetString(f.identity)

	return present, []byte(s), err
}

func (f *StringField) writeValue(buf *pool.ByteBuffer, value []byte) {
	switch f.kind {
	case kindASCII:
		stopbit.EncodeASCII(buf, string(value))
	case kindUnicode:
		stopbit.EncodeUnicode(buf, string(value))
	case kindByteVec:
		stopbit.EncodeByteVector(buf, value)
	}
}

func (f *StringField) Encode(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, accessor Accessor) error {
	present, value, err := f.fetch(accessor)
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
	case format.OperatorCopy, format.OperatorTail:
		return f.encodeCopyOrTail(dest, pmap, ctx, present, value)
	default:
		return fmt.Errorf("%w: %s on field %q", errUnsupportedOperator, f.operator, f.identity.Name)
	}
}

func (f *StringField) encodeConstant(present bool, value []byte) error {
	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}

		return nil
	}
	if !bytes.Equal(value, f.initial) {
		return fmt.Errorf("%w: field %q value %q != constant %q", errs.ErrConstantMismatch, f.identity.Name, value, f.initial)
	}

	return nil
}

func (f *StringField) encodeNone(dest *DataDestination, ctx *EncoderContext, present bool, value []byte) error {
	if !present {
		if f.mandatory {
			return fmt.Errorf("%w: field %q", errs.ErrFieldRequiredButAbsent, f.identity.Name)
		}
		if f.kind == kindASCII {
			// An absent ASCII value has no distinct wire form: it encodes
			// as 0x80, the same byte a present-but-empty string produces.
			return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeASCII(b, "") })
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeUint(b, 0) })
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { f.writeValue(b, value) })
}

func (f *StringField) encodeDefault(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value []byte) error {
	if !present {
		return pmap.SetNext(false)
	}
	if f.hasInitial && bytes.Equal(value, f.initial) {
		return pmap.SetNext(false)
	}
	if err := pmap.SetNext(true); err != nil {
		return err
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { f.writeValue(b, value) })
}

func (f *StringField) encodeCopyOrTail(dest *DataDestination, pmap *PresenceMap, ctx *EncoderContext, present bool, value []byte) error {
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
		e.b = nil
		if err := pmap.SetNext(true); err != nil {
			return err
		}
		if f.kind == kindASCII {
			// Same 0x80 ambiguity as encodeNone above: cleared-to-absent
			// and cleared-to-empty are indistinguishable on the wire.
			return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeASCII(b, "") })
		}

		return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeUint(b, 0) })
	}

	if e.state == dictAssigned && bytes.Equal(e.b, value) {
		return pmap.SetNext(false)
	}
	e.state = dictAssigned
	e.b = append(e.b[:0], value...)
	if err := pmap.SetNext(true); err != nil {
		return err
	}

	return ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { f.writeValue(b, value) })
}
