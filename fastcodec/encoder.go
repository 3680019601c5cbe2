package fastcodec

import (
	"fmt"

	"github.com/samholt/fastenc/errs"
	"github.com/samholt/fastenc/internal/options"
	"github.com/samholt/fastenc/internal/pool"
	"github.com/samholt/fastenc/stopbit"
)

// Encoder drives the message → segment → group/sequence traversal over an
// Accessor, writing FAST wire bytes to a DataDestination. An Encoder owns
// one EncoderContext and is not safe for concurrent use; separate Encoder
// instances (each with its own context) may run in parallel against a
// shared, read-only TemplateRegistry.
type Encoder struct {
	ctx *EncoderContext
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*Encoder]

// NewEncoder creates an Encoder bound to registry.
func NewEncoder(registry *TemplateRegistry, opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{ctx: NewEncoderContext(registry)}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// WithDictionaryCapacityHint pre-sizes the dictionary map to reduce rehashing
// when the caller knows roughly how many distinct fields will be tracked.
func WithDictionaryCapacityHint(n int) EncoderOption {
	return options.NoError[*Encoder](func(e *Encoder) {
		e.ctx.dict = make(map[uint64]*dictEntry, n)
	})
}

// WithScratchBufferSize replaces the default-sized scratch buffer used by
// primitive encoders with one pre-allocated to n bytes.
func WithScratchBufferSize(n int) EncoderOption {
	return options.NoError[*Encoder](func(e *Encoder) {
		e.ctx.scratch = pool.NewByteBuffer(n)
	})
}

// Context returns the Encoder's EncoderContext, mainly so a caller can
// Reset it between sessions.
func (e *Encoder) Context() *EncoderContext {
	return e.ctx
}

// EncodeMessages repeatedly calls accessor.PickTemplate, encoding one
// message per template id it yields, until PickTemplate reports no further
// message. onMessage, if non-nil, is invoked with each message's bytes as
// soon as it is encoded; a non-nil error from onMessage aborts the loop.
func (e *Encoder) EncodeMessages(dest *DataDestination, accessor Accessor, onMessage func([]byte) error) error {
	for {
		templateID, ok := accessor.PickTemplate()
		if !ok {
			return nil
		}

		msg, err := e.EncodeMessage(dest, templateID, accessor)
		if err != nil {
			return err
		}

		if onMessage != nil {
			if err := onMessage(msg); err != nil {
				return err
			}
		}
	}
}

// EncodeMessage encodes exactly one message for templateID and returns its
// complete wire bytes.
func (e *Encoder) EncodeMessage(dest *DataDestination, templateID uint32, accessor Accessor) ([]byte, error) {
	if err := dest.StartMessage(templateID); err != nil {
		return nil, err
	}
	if err := e.encodeSegment(dest, templateID, accessor); err != nil {
		return nil, err
	}

	return dest.EndMessage()
}

// encodeSegment is the message-level segment encode: resolve the template,
// apply its reset flag, reserve a PMAP buffer ahead of the body buffer,
// encode the template-id copy bit and the body, then back-patch the PMAP.
func (e *Encoder) encodeSegment(dest *DataDestination, templateID uint32, accessor Accessor) error {
	tmpl, ok := e.ctx.registry.Lookup(templateID)
	if !ok {
		return fmt.Errorf("%w: id %d", errs.ErrUnknownTemplate, templateID)
	}
	if tmpl.Reset {
		e.ctx.Reset(true)
	}

	pmap := NewPresenceMap(tmpl.Body.PmapBitCount)

	header := dest.StartBuffer()
	dest.StartBuffer() // body buffer, now current

	if e.ctx.hasLastTemplate && e.ctx.lastTemplateID == templateID {
		if err := pmap.SetNext(false); err != nil {
			return err
		}
	} else {
		if err := pmap.SetNext(true); err != nil {
			return err
		}
		if err := e.ctx.encodeBytes(dest, func(b *pool.ByteBuffer) { stopbit.EncodeUint(b, uint64(templateID)) }); err != nil {
			return err
		}
		e.ctx.lastTemplateID = templateID
		e.ctx.hasLastTemplate = true
	}

	if err := encodeSegmentBody(dest, pmap, tmpl.Body, e.ctx, accessor); err != nil {
		return err
	}

	saved := dest.Current()
	if err := dest.SelectBuffer(header); err != nil {
		return err
	}
	dest.StartField(pmapMessageIdentity)
	if err := dest.Write(pmap.Bytes()); err != nil {
		return err
	}
	dest.EndField(pmapMessageIdentity)

	return dest.SelectBuffer(saved)
}

// encodeSegmentBody walks a segment's instructions in order, surrounding
// each with start_field/end_field observer markers.
func encodeSegmentBody(dest *DataDestination, pmap *PresenceMap, body *SegmentBody, ctx *EncoderContext, accessor Accessor) error {
	for _, instr := range body.Instructions {
		identity := instr.Identity()
		dest.StartField(identity)
		err := instr.Encode(dest, pmap, ctx, accessor)
		dest.EndField(identity)
		if err != nil {
			return err
		}
	}

	return nil
}

// encodeGroup encodes a nested segment (a group body, or one sequence
// entry's body). When the body declares no PMAP bits, it is written
// directly into the currently selected buffer with no PMAP buffer
// reserved. Otherwise the currently selected buffer becomes the group's
// PMAP buffer, a new buffer is started for the body, and the PMAP is
// back-patched into the reserved buffer once the body is known.
func encodeGroup(dest *DataDestination, body *SegmentBody, ctx *EncoderContext, accessor Accessor) error {
	if body.PmapBitCount == 0 {
		return encodeSegmentBody(dest, NewPresenceMap(0), body, ctx, accessor)
	}

	pmapBuf := dest.Current()
	dest.StartBuffer() // body buffer, now current

	pmap := NewPresenceMap(body.PmapBitCount)
	if err := encodeSegmentBody(dest, pmap, body, ctx, accessor); err != nil {
		return err
	}

	saved := dest.Current()
	if err := dest.SelectBuffer(pmapBuf); err != nil {
		return err
	}
	dest.StartField(pmapGroupIdentity)
	if err := dest.Write(pmap.Bytes()); err != nil {
		return err
	}
	dest.EndField(pmapGroupIdentity)

	return dest.SelectBuffer(saved)
}
