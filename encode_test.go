package sab

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/appsworld/go-sab/types"
)

// sabWriter builds SAB byte streams for tests, well-formed or not.
type sabWriter struct {
	bytes.Buffer
}

func (w *sabWriter) tag(t types.Tag) {
	w.WriteByte(byte(t))
}

func (w *sabWriter) int32(v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.Write(b[:])
}

func (w *sabWriter) double(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	w.Write(b[:])
}

// str writes a tagged short string: tag, length byte, bytes.
func (w *sabWriter) str(s string) {
	w.tag(types.TagString)
	w.WriteByte(byte(len(s)))
	w.WriteString(s)
}

// literalStr writes a tagged long string: tag, int32 length, bytes.
func (w *sabWriter) literalStr(s string) {
	w.tag(types.TagLiteralString)
	w.int32(int32(len(s)))
	w.WriteString(s)
}

func (w *sabWriter) taggedInt(v int32) {
	w.tag(types.TagInt)
	w.int32(v)
}

func (w *sabWriter) taggedDouble(v float64) {
	w.tag(types.TagDouble)
	w.double(v)
}

func (w *sabWriter) ptr(idx int32) {
	w.tag(types.TagPointer)
	w.int32(idx)
}

func (w *sabWriter) enum(v int32) {
	w.tag(types.TagEnum)
	w.int32(v)
}

func (w *sabWriter) vec3(t types.Tag, v types.Vec3) {
	w.tag(t)
	for _, f := range v {
		w.double(f)
	}
}

// ident writes an entity type name: every fragment but the last with the
// fragment tag, the last with the terminal tag.
func (w *sabWriter) ident(fragments ...string) {
	for i, s := range fragments {
		if i == len(fragments)-1 {
			w.tag(types.TagEntityType)
		} else {
			w.tag(types.TagEntityTypeEx)
		}
		w.WriteByte(byte(len(s)))
		w.WriteString(s)
	}
}

func (w *sabWriter) end() {
	w.tag(types.TagRecordEnd)
}

const testDate = "Sat Jan  1 10:00:00 2022"

// header writes a complete ACIS flavor preamble.
func (w *sabWriter) header(version int32) {
	w.WriteString(types.SignatureACIS)
	w.int32(version) // version
	w.int32(2)       // n_records
	w.int32(2)       // n_entities
	w.int32(12)      // flags
	w.str("go-sab ACIS Builder")
	w.str("ACIS 32.0 NT")
	w.str(testDate)
	w.taggedDouble(1)     // units_in_mm
	w.taggedDouble(1e-06) // res_tol
	w.taggedDouble(1e-10) // nor_tol
}

// endMarker writes the terminal end-of-data record, terminated = false
// leaves off the end-of-record tag to emulate files that stop right at
// the marker.
func (w *sabWriter) endMarker(terminated bool) {
	w.ident("End-of-ACIS-data")
	if terminated {
		w.end()
	}
}
