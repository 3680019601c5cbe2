package fastcodec

import (
	"github.com/samholt/fastenc/errs"
	"github.com/samholt/fastenc/internal/pool"
)

// BufferHandle is an opaque reference to one of the ordered buffers held by
// a DataDestination. It is only meaningful to the destination that issued
// it; handles are never shared across destinations.
type BufferHandle int

const invalidHandle BufferHandle = -1

// Observer receives structural notifications during encoding. All methods
// are optional hooks for debugging/tracing; none affect the emitted bytes.
type Observer interface {
	StartMessage(templateID uint32)
	StartField(identity FieldIdentity)
	EndField(identity FieldIdentity)
}

// DataDestination is an append-only byte stream assembled from an ordered
// list of buffers. Buffers are emitted, on EndMessage, in the order
// they were created by StartBuffer, never in the order they were selected
// for writing. This is what lets the encoder reserve a presence-map buffer
// before it knows the map's contents, write the segment body into a later
// buffer, and then back-patch the map in place without copying body bytes.
type DataDestination struct {
	buffers   []*pool.ByteBuffer
	current   BufferHandle
	inMessage bool
	observer  Observer
}

// NewDataDestination creates an empty destination with no buffers.
func NewDataDestination() *DataDestination {
	return &DataDestination{current: invalidHandle}
}

// SetObserver installs an Observer for StartMessage/StartField/EndField
// notifications. Pass nil to remove it.
func (d *DataDestination) SetObserver(obs Observer) {
	d.observer = obs
}

// StartBuffer appends a new empty buffer and makes it current, returning its
// handle.
func (d *DataDestination) StartBuffer() BufferHandle {
	d.buffers = append(d.buffers, pool.GetSegmentBuffer())
	h := BufferHandle(len(d.buffers) - 1)
	d.current = h

	return h
}

// Current returns the handle of the buffer currently receiving writes.
func (d *DataDestination) Current() BufferHandle {
	return d.current
}

// SelectBuffer makes h the current buffer. Subsequent Write calls append to
// it. It does not change buffer creation order, so it does not change the
// order buffers appear in the final concatenated output.
func (d *DataDestination) SelectBuffer(h BufferHandle) error {
	if h < 0 || int(h) >= len(d.buffers) {
		return errs.ErrInvalidBufferHandle
	}
	d.current = h

	return nil
}

// Write appends bytes to the current buffer.
func (d *DataDestination) Write(b []byte) error {
	if d.current == invalidHandle {
		return errs.ErrNoCurrentBuffer
	}
	d.buffers[d.current].MustWrite(b)

	return nil
}

// WriteByte appends a single byte to the current buffer.
func (d *DataDestination) WriteByte(b byte) error {
	return d.Write([]byte{b})
}

// StartField notifies the observer, if any, that encoding of identity is
// beginning. It writes no bytes.
func (d *DataDestination) StartField(identity FieldIdentity) {
	if d.observer != nil {
		d.observer.StartField(identity)
	}
}

// EndField notifies the observer, if any, that encoding of identity has
// finished. It writes no bytes.
func (d *DataDestination) EndField(identity FieldIdentity) {
	if d.observer != nil {
		d.observer.EndField(identity)
	}
}

// StartMessage marks the beginning of a message boundary and notifies the
// observer, if any, of templateID. It does not itself emit bytes.
func (d *DataDestination) StartMessage(templateID uint32) error {
	if d.inMessage {
		return errs.ErrMessageAlreadyStarted
	}
	d.inMessage = true
	if d.observer != nil {
		d.observer.StartMessage(templateID)
	}

	return nil
}

// EndMessage closes the message boundary and returns the concatenation of
// every buffer created since the previous EndMessage (or since construction),
// in creation order. All buffers are returned to the pool and the destination is left
// ready to encode the next message.
func (d *DataDestination) EndMessage() ([]byte, error) {
	if !d.inMessage {
		return nil, errs.ErrNoMessageStarted
	}

	total := 0
	for _, buf := range d.buffers {
		total += buf.Len()
	}

	out := make([]byte, 0, total)
	for _, buf := range d.buffers {
		out = append(out, buf.Bytes()...)
		pool.PutSegmentBuffer(buf)
	}

	d.buffers = d.buffers[:0]
	d.current = invalidHandle
	d.inMessage = false

	return out, nil
}
