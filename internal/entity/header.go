// Package entity implements the ~60 per-prototype-class entity variant
// decoders (spec.md §4.D), dispatched through a static table keyed by the
// prototype class read from the prototype index, plus the common
// header/trailer envelope every variant shares.
package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// category groups variants by the version-gated pre-body byte behavior they
// accept (spec.md §4.D "V_1_1_51_4 and V_1_1_62_5").
type category int

const (
	catGeneric category = iota
	catTurret
	catLandMine
	catRadar
	catRailVehicle
	catContainer
)

// Context bundles the per-decode dependencies every variant body reader
// needs: the active prototype index (global, or a blueprint's local
// override) and the version context gating optional fields.
type Context struct {
	Idx     *prototype.Index
	Version *version.Context
}

// VariantFunc decodes one entity variant's bespoke body, returning the
// fields it contributes to the entity's output map. It must consume exactly
// the bytes its variant defines (spec.md §4.D).
type VariantFunc func(r *stream.Reader, c *Context) (map[string]interface{}, error)

type variantEntry struct {
	fn       VariantFunc
	category category
}

// Decoder reads a full entity list for one blueprint.
type Decoder struct {
	Ctx *Context
}

// NewDecoder returns an entity Decoder bound to idx and vctx.
func NewDecoder(idx *prototype.Index, vctx *version.Context) *Decoder {
	return &Decoder{Ctx: &Context{Idx: idx, Version: vctx}}
}

// ReadList reads entities until the list's zero-prototype-id terminator,
// returning each entity's output map (entity_number not yet assigned — the
// caller numbers entities 1-based as they're appended) alongside its raw
// wire entity-id for link resolution (spec.md §3 "Raw entity id", §9
// "Entity-ID resolution cycle").
func (d *Decoder) ReadList(r *stream.Reader) (entities []map[string]interface{}, rawIDs []uint32, err error) {
	prev := Position{}
	for {
		protoOffset := r.Tell()
		protoID, err := r.U16()
		if err != nil {
			return nil, nil, err
		}
		if protoID == 0 {
			return entities, rawIDs, nil
		}

		out, rawID, pos, err := d.readOne(r, protoOffset, protoID, prev)
		if err != nil {
			return nil, nil, err
		}
		prev = pos
		entities = append(entities, out)
		rawIDs = append(rawIDs, rawID)
	}
}

func (d *Decoder) readOne(r *stream.Reader, protoOffset int64, protoID uint16, prev Position) (map[string]interface{}, uint32, Position, error) {
	entry, ok := d.Ctx.Idx.Lookup(prototype.Entity, uint32(protoID))
	if !ok {
		return nil, 0, Position{}, &stream.ParseError{Offset: protoOffset, Message: "entity prototype id not found in prototype index"}
	}

	pos, err := readPosition(r, prev)
	if err != nil {
		return nil, 0, Position{}, err
	}

	if err := r.Expect(0x20); err != nil {
		return nil, 0, Position{}, err
	}

	flagOffset := r.Tell()
	idFlags, err := r.U8()
	if err != nil {
		return nil, 0, Position{}, err
	}
	if idFlags&0x10 == 0 {
		return nil, 0, Position{}, &stream.ParseError{Offset: flagOffset, Message: "entity-id flag byte missing required bit 0x10"}
	}
	if err := r.Expect(0x01); err != nil {
		return nil, 0, Position{}, err
	}
	rawID, err := r.U32()
	if err != nil {
		return nil, 0, Position{}, err
	}

	variant, ok := dispatchTable[entry.Class]
	if !ok {
		return nil, 0, Position{}, &stream.ParseError{Offset: protoOffset, Message: "unsupported entity prototype class: " + entry.Class}
	}

	cur := d.Ctx.Version.Current()
	if cur.AtLeast(version.V_1_1_51_4) {
		flagByte, err := r.U8()
		if err != nil {
			return nil, 0, Position{}, err
		}
		if err := checkPreBodyFlag(r, flagByte, variant.category); err != nil {
			return nil, 0, Position{}, err
		}
	}
	if variant.category == catContainer && cur.AtLeast(version.V_1_1_62_5) {
		if err := r.Expect(0x00); err != nil {
			return nil, 0, Position{}, err
		}
	}

	body, err := variant.fn(r, d.Ctx)
	if err != nil {
		return nil, 0, Position{}, err
	}

	items, err := fields.ReadItemMap(r, d.Ctx.Idx)
	if err != nil {
		return nil, 0, Position{}, err
	}

	hasTags, err := r.Bool()
	if err != nil {
		return nil, 0, Position{}, err
	}
	var tags interface{}
	if hasTags {
		tags, err = fields.ReadPropertyTree(r)
		if err != nil {
			return nil, 0, Position{}, err
		}
	}

	out := map[string]interface{}{
		"name":     entry.Name,
		"position": pos.toMap(),
		"_class":   entry.Class,
	}
	for k, v := range body {
		out[k] = v
	}
	if items != nil {
		out["items"] = items
	}
	if tags != nil {
		out["tags"] = tags
	}
	// entity_id is transient wire state, consumed by the link resolver and
	// dropped from the final output (spec.md §4.G).
	out["entity_id"] = rawID

	return out, rawID, pos, nil
}

func checkPreBodyFlag(r *stream.Reader, flagByte byte, cat category) error {
	allowed := []byte{0x00}
	switch cat {
	case catTurret, catLandMine, catRadar:
		allowed = append(allowed, 0x01)
	case catRailVehicle:
		allowed = []byte{0x00, 0x01}
	}
	for _, v := range allowed {
		if flagByte == v {
			return nil
		}
	}
	return &stream.ParseError{Offset: r.Tell() - 1, Message: "unexpected pre-body flag byte"}
}
