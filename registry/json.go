// Package registry builds a fastcodec.TemplateRegistry from a minimal JSON
// template description. It is a stand-in for a full FAST-XML template
// parser, which remains an external collaborator outside this module.
package registry

import (
	"encoding/json"
	"fmt"

	"github.com/samholt/fastenc/errs"
	"github.com/samholt/fastenc/fastcodec"
	"github.com/samholt/fastenc/format"
	"github.com/samholt/fastenc/stopbit"
)

type jsonInstruction struct {
	Name         string            `json:"name"`
	Namespace    string            `json:"namespace"`
	Scope        string            `json:"scope"`
	Operator     string            `json:"operator"`
	Type         string            `json:"type"`
	Mandatory    bool              `json:"mandatory"`
	HasInitial   bool              `json:"has_initial"`
	InitialUint  uint64            `json:"initial_uint"`
	InitialInt   int64             `json:"initial_int"`
	InitialStr   string            `json:"initial_string"`
	InitialDec   *jsonDecimal      `json:"initial_decimal"`
	Unicode      bool              `json:"unicode"`
	PmapBits     int               `json:"pmap_bit_count"`
	Instructions []jsonInstruction `json:"instructions"`
}

type jsonDecimal struct {
	Exponent int64 `json:"exponent"`
	Mantissa int64 `json:"mantissa"`
}

type jsonTemplate struct {
	ID           uint32            `json:"id"`
	Name         string            `json:"name"`
	Namespace    string            `json:"namespace"`
	Reset        bool              `json:"reset"`
	PmapBits     int               `json:"pmap_bit_count"`
	Instructions []jsonInstruction `json:"instructions"`
}

var operatorByName = map[string]format.Operator{
	"none":      format.OperatorNone,
	"constant":  format.OperatorConstant,
	"default":   format.OperatorDefault,
	"copy":      format.OperatorCopy,
	"increment": format.OperatorIncrement,
	"delta":     format.OperatorDelta,
	"tail":      format.OperatorTail,
}

var scopeByName = map[string]format.DictionaryScope{
	"global":   format.ScopeGlobal,
	"template": format.ScopeTemplate,
	"type":     format.ScopeType,
}

// LoadJSON parses data as a JSON array of template descriptions and
// constructs a fastcodec.TemplateRegistry.
func LoadJSON(data []byte) (*fastcodec.TemplateRegistry, error) {
	var templates []jsonTemplate
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("registry: decode template json: %w", err)
	}

	reg := fastcodec.NewTemplateRegistry()
	for _, jt := range templates {
		body, err := buildBody(jt.Instructions, jt.PmapBits)
		if err != nil {
			return nil, fmt.Errorf("registry: template %d (%s): %w", jt.ID, jt.Name, err)
		}

		tmpl := &fastcodec.Template{
			ID:        jt.ID,
			Name:      jt.Name,
			Namespace: jt.Namespace,
			Reset:     jt.Reset,
			Body:      body,
		}
		if err := reg.Add(tmpl); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func buildBody(instructions []jsonInstruction, pmapBits int) (*fastcodec.SegmentBody, error) {
	fields := make([]fastcodec.FieldInstruction, 0, len(instructions))
	for _, ji := range instructions {
		f, err := buildInstruction(ji)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return &fastcodec.SegmentBody{PmapBitCount: pmapBits, Instructions: fields}, nil
}

func buildInstruction(ji jsonInstruction) (fastcodec.FieldInstruction, error) {
	scope := format.ScopeTemplate
	if s, ok := scopeByName[ji.Scope]; ok {
		scope = s
	}
	identity := fastcodec.FieldIdentity{Name: ji.Name, Namespace: ji.Namespace, Scope: scope}

	op, ok := operatorByName[ji.Operator]
	if !ok {
		return nil, fmt.Errorf("unknown operator %q for field %q", ji.Operator, ji.Name)
	}

	switch ji.Type {
	case "uint32":
		return fastcodec.NewUintField(identity, op, format.TypeUint32, ji.Mandatory, ji.HasInitial, ji.InitialUint), nil
	case "uint64":
		return fastcodec.NewUintField(identity, op, format.TypeUint64, ji.Mandatory, ji.HasInitial, ji.InitialUint), nil
	case "int32":
		return fastcodec.NewIntField(identity, op, format.TypeInt32, ji.Mandatory, ji.HasInitial, ji.InitialInt), nil
	case "int64":
		return fastcodec.NewIntField(identity, op, format.TypeInt64, ji.Mandatory, ji.HasInitial, ji.InitialInt), nil
	case "decimal":
		var d stopbit.Decimal
		if ji.InitialDec != nil {
			d = stopbit.Decimal{Exponent: ji.InitialDec.Exponent, Mantissa: ji.InitialDec.Mantissa}
		}

		return fastcodec.NewDecimalField(identity, op, ji.Mandatory, ji.HasInitial, d), nil
	case "ascii", "unicode":
		return fastcodec.NewStringField(identity, op, ji.Type == "unicode", ji.Mandatory, ji.HasInitial, ji.InitialStr), nil
	case "byteVector":
		return fastcodec.NewByteVectorField(identity, op, ji.Mandatory, ji.HasInitial, []byte(ji.InitialStr)), nil
	case "group":
		body, err := buildBody(ji.Instructions, ji.PmapBits)
		if err != nil {
			return nil, err
		}

		return fastcodec.NewGroupField(identity, body, ji.Mandatory), nil
	case "sequence":
		body, err := buildBody(ji.Instructions, ji.PmapBits)
		if err != nil {
			return nil, err
		}

		return fastcodec.NewSequenceField(identity, body, ji.Mandatory), nil
	default:
		return nil, fmt.Errorf("%w: unknown primitive type %q for field %q", errs.ErrValueOutOfRange, ji.Type, ji.Name)
	}
}
