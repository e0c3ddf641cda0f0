package types

import "fmt"

// A Vec3 is a 3D location or direction decoded from a vector value.
type Vec3 [3]float64

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// A Token is one tagged value of a SAB record. The dynamic type of Value
// is fixed by Tag:
//
//	TagInt, TagEnum                int
//	TagDouble, TagUnknown          float64
//	TagString, TagLiteralString    string
//	TagEntityType                  string (composed entity type name)
//	TagBoolTrue, TagBoolFalse      bool
//	TagLocationVec, TagDirectionVec Vec3
//	TagSubtypeStart, TagSubtypeEnd int (nesting depth)
//	TagPointer                     int before pointer resolution, *Entity after
type Token struct {
	Tag   Tag
	Value any
}

func (t Token) String() string {
	return fmt.Sprintf("(0x%02x, %v)", uint8(t.Tag), t.Value)
}

// A Record is the ordered token sequence of one entity record. The
// entity type name is composed from the name fragment values while
// reading and stored as a single TagEntityType token.
type Record []Token
