package sab

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/appsworld/go-sab/types"
)

// A Decoder reads SAB values from an in-memory buffer. It is a forward
// only cursor: every read advances the offset, nothing ever seeks back.
// A Decoder is single-use and not safe for concurrent use.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder returns a Decoder over data. The buffer must hold the whole
// SAB blob; the decoder never reads from a file handle.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// HasData reports whether unread bytes remain.
func (d *Decoder) HasData() bool {
	return d.pos < len(d.data)
}

// Offset returns the current read offset, for diagnostics.
func (d *Decoder) Offset() int {
	return d.pos
}

// forward returns the pre-advance offset and moves the cursor count bytes.
func (d *Decoder) forward(count int) (int, error) {
	if count < 0 || d.pos+count > len(d.data) {
		return 0, fmt.Errorf("%w: %d bytes at offset %d, buffer size %d", errOutOfData, count, d.pos, len(d.data))
	}
	pos := d.pos
	d.pos += count
	return pos, nil
}

func (d *Decoder) readByte() (byte, error) {
	pos, err := d.forward(1)
	if err != nil {
		return 0, err
	}
	return d.data[pos], nil
}

func (d *Decoder) readInt() (int, error) {
	pos, err := d.forward(4)
	if err != nil {
		return 0, err
	}
	return int(int32(binary.LittleEndian.Uint32(d.data[pos:]))), nil
}

func (d *Decoder) readDouble() (float64, error) {
	pos, err := d.forward(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(d.data[pos:])), nil
}

func (d *Decoder) readVec3() (types.Vec3, error) {
	pos, err := d.forward(3 * 8)
	if err != nil {
		return types.Vec3{}, err
	}
	var v types.Vec3
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(d.data[pos+i*8:]))
	}
	return v, nil
}

func (d *Decoder) readString(length int) (string, error) {
	pos, err := d.forward(length)
	if err != nil {
		return "", err
	}
	return string(d.data[pos : pos+length]), nil
}

// readStr8 reads a short string: one length byte, then that many bytes.
func (d *Decoder) readStr8() (string, error) {
	n, err := d.readByte()
	if err != nil {
		return "", err
	}
	return d.readString(int(n))
}

// expectTag reads one tag byte and requires it to be want. A wrong tag
// byte at a fixed grammar position is a framing error, not optional.
func (d *Decoder) expectTag(want types.Tag) error {
	b, err := d.readByte()
	if err != nil {
		return err
	}
	if types.Tag(b) != want {
		return fmt.Errorf("%w: want %s (0x%02x), got 0x%02x at offset %d", ErrTag, want, uint8(want), b, d.pos-1)
	}
	return nil
}

func (d *Decoder) readTaggedStr() (string, error) {
	if err := d.expectTag(types.TagString); err != nil {
		return "", err
	}
	return d.readStr8()
}

func (d *Decoder) readTaggedDouble() (float64, error) {
	if err := d.expectTag(types.TagDouble); err != nil {
		return 0, err
	}
	return d.readDouble()
}

// truncated converts a cursor overrun into ErrTruncated. Everything else
// passes through unchanged.
func (d *Decoder) truncated(err error) error {
	if errors.Is(err, errOutOfData) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}

// ReadHeader consumes the fixed SAB preamble. The signature selects the
// initial offset; the two tolerance values trailing the units field are
// read to keep the cursor aligned and dropped.
func (d *Decoder) ReadHeader() (*types.Header, error) {
	switch {
	case bytes.HasPrefix(d.data, []byte(types.SignatureACIS)):
		d.pos = len(types.SignatureACIS)
	case bytes.HasPrefix(d.data, []byte(types.SignatureASM)):
		d.pos = len(types.SignatureASM)
	default:
		return nil, ErrNotSAB
	}

	var hdr types.Header
	var err error
	if hdr.Version, err = d.readInt(); err != nil {
		return nil, d.truncated(err)
	}
	if hdr.NumRecords, err = d.readInt(); err != nil {
		return nil, d.truncated(err)
	}
	if hdr.NumEntities, err = d.readInt(); err != nil {
		return nil, d.truncated(err)
	}
	if hdr.Flags, err = d.readInt(); err != nil {
		return nil, d.truncated(err)
	}
	if hdr.ProductID, err = d.readTaggedStr(); err != nil {
		return nil, d.truncated(err)
	}
	if hdr.AcisVersion, err = d.readTaggedStr(); err != nil {
		return nil, d.truncated(err)
	}
	date, err := d.readTaggedStr()
	if err != nil {
		return nil, d.truncated(err)
	}
	if hdr.CreationDate, err = time.Parse(types.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid creation date %q: %v", date, err)
	}
	if hdr.UnitsInMM, err = d.readTaggedDouble(); err != nil {
		return nil, d.truncated(err)
	}
	// res_tol and nor_tol, not retained
	if _, err = d.readTaggedDouble(); err != nil {
		return nil, d.truncated(err)
	}
	if _, err = d.readTaggedDouble(); err != nil {
		return nil, d.truncated(err)
	}
	return &hdr, nil
}

// ReadRecord decodes the next entity record. A record normally ends at an
// explicit end-of-record tag; the final record of a stream may instead
// end at the end of the buffer, which is legitimate only if its first
// token is one of the reserved end-of-data markers.
func (d *Decoder) ReadRecord() (types.Record, error) {
	var record types.Record
	var name []string
	level := 0
	for {
		if !d.HasData() {
			if len(record) > 0 {
				if s, ok := record[0].Value.(string); ok && types.IsDataEndMarker(s) {
					return record, nil
				}
			}
			return nil, fmt.Errorf("%w at offset %d", ErrTruncated, d.pos)
		}
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		tag := types.Tag(b)
		switch tag {
		case types.TagInt, types.TagPointer, types.TagEnum:
			v, err := d.readInt()
			if err != nil {
				return nil, err
			}
			record = append(record, types.Token{Tag: tag, Value: v})
		case types.TagDouble, types.TagUnknown:
			v, err := d.readDouble()
			if err != nil {
				return nil, err
			}
			record = append(record, types.Token{Tag: tag, Value: v})
		case types.TagString:
			s, err := d.readStr8()
			if err != nil {
				return nil, err
			}
			record = append(record, types.Token{Tag: tag, Value: s})
		case types.TagLiteralString:
			n, err := d.readInt()
			if err != nil {
				return nil, err
			}
			s, err := d.readString(n)
			if err != nil {
				return nil, err
			}
			record = append(record, types.Token{Tag: tag, Value: s})
		case types.TagBoolTrue:
			record = append(record, types.Token{Tag: tag, Value: true})
		case types.TagBoolFalse:
			record = append(record, types.Token{Tag: tag, Value: false})
		case types.TagEntityTypeEx:
			s, err := d.readStr8()
			if err != nil {
				return nil, err
			}
			name = append(name, s)
		case types.TagEntityType:
			s, err := d.readStr8()
			if err != nil {
				return nil, err
			}
			name = append(name, s)
			record = append(record, types.Token{Tag: tag, Value: strings.Join(name, "-")})
			name = name[:0]
		case types.TagLocationVec, types.TagDirectionVec:
			v, err := d.readVec3()
			if err != nil {
				return nil, err
			}
			record = append(record, types.Token{Tag: tag, Value: v})
		case types.TagSubtypeStart:
			level++
			record = append(record, types.Token{Tag: tag, Value: level})
		case types.TagSubtypeEnd:
			record = append(record, types.Token{Tag: tag, Value: level})
			level--
		case types.TagRecordEnd:
			return record, nil
		default:
			first := "?"
			if len(record) > 0 {
				first = fmt.Sprint(record[0].Value)
			}
			return nil, fmt.Errorf("%w: 0x%02x (%d) in entity '%s'", ErrUnknownTag, b, b, first)
		}
	}
}
