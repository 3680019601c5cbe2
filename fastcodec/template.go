package fastcodec

import (
	"fmt"

	"github.com/samholt/fastenc/errs"
)

// SegmentBody is the ordered list of field instructions that make up a
// segment: a message's top-level body, a group's body, or a sequence
// entry's body. PmapBitCount bounds how many bits the segment's PresenceMap
// may hold; it is the declared upper bound from the template, not a
// measured count.
type SegmentBody struct {
	PmapBitCount int
	Instructions []FieldInstruction
}

// Template is an immutable, registry-owned description of one message type.
type Template struct {
	ID        uint32
	Name      string
	Namespace string
	// Reset, when true, makes encode_segment discard all dictionary state
	// (and the remembered last template id) before encoding.
	Reset bool
	Body  *SegmentBody
}

// TemplateRegistry is an immutable, concurrency-safe lookup from template id
// to Template. Once built it is never mutated, so it may be shared freely
// across Encoder instances.
type TemplateRegistry struct {
	templates map[uint32]*Template
}

// NewTemplateRegistry creates an empty, mutable builder. Call Add for every
// template, then treat the result as read-only.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[uint32]*Template)}
}

// Add registers t. It returns errs.ErrDuplicateTemplateID if a template with
// the same id is already registered.
func (r *TemplateRegistry) Add(t *Template) error {
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("%w: %d", errs.ErrDuplicateTemplateID, t.ID)
	}
	r.templates[t.ID] = t

	return nil
}

// Lookup returns the template registered under id, or ok=false if none is.
func (r *TemplateRegistry) Lookup(id uint32) (tmpl *Template, ok bool) {
	tmpl, ok = r.templates[id]

	return tmpl, ok
}

// Len reports how many templates are registered.
func (r *TemplateRegistry) Len() int {
	return len(r.templates)
}
