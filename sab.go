// Package sab decodes the ACIS SAB binary format, the length-framed
// tagged-value encoding of solid-modeling geometry embedded in DXF files
// (DXF R2013 and later store 3DSOLID, SURFACE and REGION geometry this
// way). The decode direction only: bytes in, a fully linked entity graph
// out. The text twin of the format (SAT) and SAB encoding are out of
// scope, as is any geometric interpretation of the entities.
package sab

import (
	"bytes"
	"errors"

	"github.com/appsworld/go-sab/types"
)

// A File is the decoded, fully linked content of one SAB data blob. Once
// returned by Parse it is immutable and safe to share; parallelism in a
// multi-blob pipeline belongs across Parse calls, never inside one.
type File struct {
	Header *types.Header

	// Entities is the owning list of all decoded entities, terminal
	// end-of-data sentinel included. An entity's position in this list is
	// its address for back-reference purposes.
	Entities []*types.Entity

	// Bodies are the entities named "body", the roots of the graph.
	Bodies []*types.Entity
}

// Parse decodes a complete SAB data blob into the resolved entity graph.
// The whole blob must be resident in the buffer. After Parse every
// pointer token and every attribute slot of the returned entities holds
// either another entity of the same File or the shared types.NullPtr,
// never a raw index.
//
// A file whose very last bytes are missing mid-field still decodes up to
// the last complete record; ending mid-record at a token boundary is a
// truncation error unless the record is a reserved end-of-data marker.
func Parse(data []byte) (*File, error) {
	d := NewDecoder(data)
	hdr, err := d.ReadHeader()
	if err != nil {
		return nil, err
	}

	var entities []*types.Entity
	for d.HasData() {
		record, err := d.ReadRecord()
		if err != nil {
			if errors.Is(err, errOutOfData) {
				break // ragged tail of a truncated file
			}
			return nil, err
		}
		entity, err := buildEntity(record, hdr.Version)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
		if types.IsDataEndMarker(entity.Name) {
			break
		}
	}
	if err := resolvePointers(entities); err != nil {
		return nil, err
	}

	f := &File{Header: hdr, Entities: entities}
	for _, e := range entities {
		if e.Name == "body" {
			f.Bodies = append(f.Bodies, e)
		}
	}
	return f, nil
}

// ParseChunks concatenates chunks and parses the result, for callers
// that receive the blob as the multiple binary-data group codes of a DXF
// entity.
func ParseChunks(chunks [][]byte) (*File, error) {
	return Parse(bytes.Join(chunks, nil))
}
