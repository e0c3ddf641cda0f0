package sab

import (
	"fmt"
	"math"

	"github.com/appsworld/go-sab/types"
)

// A DataLoader is a forward cursor over one resolved entity's payload.
// Each accessor asserts the kind of the next token, consumes it on a
// match and fails with ErrTypeMismatch otherwise; values are never
// coerced. The loader looks at most one token ahead and never rewinds.
type DataLoader struct {
	data    types.Record
	version int
	index   int
}

// NewDataLoader returns a loader over an entity payload. version is the
// header format version that governs the record layout.
func NewDataLoader(data types.Record, version int) *DataLoader {
	return &DataLoader{data: data, version: version}
}

// Version returns the format version the loader was created with.
func (l *DataLoader) Version() int { return l.version }

// HasData reports whether unread tokens remain.
func (l *DataLoader) HasData() bool { return l.index < len(l.data) }

func (l *DataLoader) next(want types.Tag, alt ...types.Tag) (types.Token, error) {
	if l.index >= len(l.data) {
		return types.Token{}, fmt.Errorf("%w: want %s, payload exhausted", ErrTypeMismatch, want)
	}
	tok := l.data[l.index]
	if tok.Tag == want {
		l.index++
		return tok, nil
	}
	for _, t := range alt {
		if tok.Tag == t {
			l.index++
			return tok, nil
		}
	}
	return types.Token{}, fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, want, tok)
}

// ReadInt consumes the next token as an integer.
func (l *DataLoader) ReadInt() (int, error) {
	tok, err := l.next(types.TagInt)
	if err != nil {
		return 0, err
	}
	return tok.Value.(int), nil
}

// ReadDouble consumes the next token as a double.
func (l *DataLoader) ReadDouble() (float64, error) {
	tok, err := l.next(types.TagDouble)
	if err != nil {
		return 0, err
	}
	return tok.Value.(float64), nil
}

// ReadInterval consumes a finite-or-infinite interval bound: a true flag
// is followed by the finite value, a false flag means unbounded and
// consumes nothing further.
func (l *DataLoader) ReadInterval() (float64, error) {
	finite, err := l.ReadBool()
	if err != nil {
		return 0, err
	}
	if finite {
		return l.ReadDouble()
	}
	return math.Inf(1), nil
}

// ReadVec3 consumes the next token as a location or direction vector.
func (l *DataLoader) ReadVec3() (types.Vec3, error) {
	tok, err := l.next(types.TagLocationVec, types.TagDirectionVec)
	if err != nil {
		return types.Vec3{}, err
	}
	return tok.Value.(types.Vec3), nil
}

// ReadBool consumes the next token as a boolean flag.
func (l *DataLoader) ReadBool() (bool, error) {
	tok, err := l.next(types.TagBoolTrue, types.TagBoolFalse)
	if err != nil {
		return false, err
	}
	return tok.Value.(bool), nil
}

// ReadStr consumes the next token as a string, short or literal form.
func (l *DataLoader) ReadStr() (string, error) {
	tok, err := l.next(types.TagString, types.TagLiteralString)
	if err != nil {
		return "", err
	}
	return tok.Value.(string), nil
}

// ReadPtr consumes the next token as a resolved entity reference.
func (l *DataLoader) ReadPtr() (*types.Entity, error) {
	tok, err := l.next(types.TagPointer)
	if err != nil {
		return nil, err
	}
	e, ok := tok.Value.(*types.Entity)
	if !ok {
		return nil, fmt.Errorf("%w: pointer token %s is unresolved", ErrTypeMismatch, tok)
	}
	return e, nil
}
