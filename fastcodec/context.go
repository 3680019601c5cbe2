package fastcodec

import (
	"github.com/samholt/fastenc/internal/collision"
	"github.com/samholt/fastenc/internal/hash"
	"github.com/samholt/fastenc/internal/pool"
	"github.com/samholt/fastenc/stopbit"
)

// dictState distinguishes a dictionary entry that has never been touched
// from one explicitly assigned a value or explicitly set null (FAST's
// "empty" state), since copy/increment/delta/tail all behave differently
// depending on which of the three applies.
type dictState uint8

const (
	dictUndefined dictState = iota
	dictAssigned
	dictEmpty
)

type dictEntry struct {
	state dictState
	u     uint64
	i     int64
	s     string
	b     []byte
	dec   stopbit.Decimal
}

// EncoderContext is the mutable, single-threaded state a Encoder carries
// across an entire session: the dictionaries that back copy/increment/
// delta/tail operators, the last emitted template id, and a scratch buffer
// primitive encoders write into before the bytes are copied to the current
// DataDestination buffer.
type EncoderContext struct {
	registry        *TemplateRegistry
	lastTemplateID  uint32
	hasLastTemplate bool

	dict map[uint64]*dictEntry
	keys *collision.Tracker

	scratch *pool.ByteBuffer
}

// NewEncoderContext creates a context bound to registry.
func NewEncoderContext(registry *TemplateRegistry) *EncoderContext {
	return &EncoderContext{
		registry: registry,
		dict:     make(map[uint64]*dictEntry),
		keys:     collision.NewTracker(),
		scratch:  pool.NewByteBuffer(pool.SegmentBufferDefaultSize),
	}
}

// Reset clears every dictionary entry. When clearTemplateID is true it also
// forgets the last emitted template id, forcing the next encode_segment to
// emit it again.
func (c *EncoderContext) Reset(clearTemplateID bool) {
	for k := range c.dict {
		delete(c.dict, k)
	}
	c.keys.Reset()
	if clearTemplateID {
		c.hasLastTemplate = false
		c.lastTemplateID = 0
	}
}

// entry returns the dictionary entry for identity, creating it as
// dictUndefined on first access. It returns errs.ErrDictionaryKeyCollision
// if identity's hash collides with a different identity's.
func (c *EncoderContext) entry(identity FieldIdentity) (*dictEntry, error) {
	key := identity.Key()
	h := hash.ID(key)
	if err := c.keys.Track(key, h); err != nil {
		return nil, err
	}

	e, ok := c.dict[h]
	if !ok {
		e = &dictEntry{}
		c.dict[h] = e
	}

	return e, nil
}

// encodeBytes resets the scratch buffer, lets fn append a primitive's wire
// bytes to it, then copies the result into dest's current buffer.
func (c *EncoderContext) encodeBytes(dest *DataDestination, fn func(buf *pool.ByteBuffer)) error {
	c.scratch.Reset()
	fn(c.scratch)

	return dest.Write(c.scratch.Bytes())
}
