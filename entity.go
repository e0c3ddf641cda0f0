package sab

import (
	"fmt"

	"github.com/appsworld/go-sab/types"
)

// buildEntity shapes one raw record into an unresolved entity. A record
// carries its composed type name, the attribute pointer index, the
// numeric entity id for format versions that have one, then the payload.
// The version branch is the single place format drift between ACIS
// revisions is absorbed.
func buildEntity(record types.Record, version int) (*types.Entity, error) {
	if len(record) == 0 {
		return nil, fmt.Errorf("%w: empty record", ErrTag)
	}
	if s, ok := record[0].Value.(string); ok && types.IsDataEndMarker(s) {
		return &types.Entity{Name: s, AttrPtr: -1, ID: -1}, nil
	}
	if record[0].Tag != types.TagEntityType {
		return nil, fmt.Errorf("%w: record starts with %s, want an entity type", ErrTag, record[0])
	}
	name := record[0].Value.(string)
	if len(record) < 2 {
		return nil, fmt.Errorf("%w: entity '%s' has no attribute pointer", ErrTag, name)
	}
	if record[1].Tag != types.TagPointer {
		return nil, fmt.Errorf("%w: entity '%s' attribute slot holds %s, want a pointer", ErrTag, name, record[1])
	}
	attr := record[1].Value.(int)

	id := -1
	data := record[2:]
	if version >= types.EntityIDVersion {
		if len(record) < 3 || record[2].Tag != types.TagInt {
			return nil, fmt.Errorf("%w: entity '%s' has no id field (version %d)", ErrTag, name, version)
		}
		id = record[2].Value.(int)
		data = record[3:]
	}
	return &types.Entity{Name: name, AttrPtr: attr, ID: id, Data: data}, nil
}

// resolvePointers links every raw pointer index to its entity, in one
// pass over the complete list. Entities may reference forward in the
// list, so every entity must exist before the first link is made. Index
// -1 resolves to the shared types.NullPtr. Pointer tokens transition in
// place from int to *types.Entity; resolvePointers runs exactly once per
// Parse call and the result is immutable afterwards.
func resolvePointers(entities []*types.Entity) error {
	ptr := func(idx int) (*types.Entity, error) {
		if idx == -1 {
			return types.NullPtr, nil
		}
		if idx < 0 || idx >= len(entities) {
			return nil, fmt.Errorf("%w: index %d, entity list size %d", ErrDanglingPointer, idx, len(entities))
		}
		return entities[idx], nil
	}
	for _, e := range entities {
		attr, err := ptr(e.AttrPtr)
		if err != nil {
			return fmt.Errorf("entity '%s' attribute: %w", e.Name, err)
		}
		e.Attributes = attr
		e.AttrPtr = -1
		for i, tok := range e.Data {
			if tok.Tag != types.TagPointer {
				continue
			}
			idx, ok := tok.Value.(int)
			if !ok {
				return fmt.Errorf("%w: entity '%s' pointer token %s is not a raw index", ErrTag, e.Name, tok)
			}
			target, err := ptr(idx)
			if err != nil {
				return fmt.Errorf("entity '%s' data: %w", e.Name, err)
			}
			e.Data[i] = types.Token{Tag: tok.Tag, Value: target}
		}
	}
	return nil
}
