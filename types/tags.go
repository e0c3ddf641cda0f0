package types

// A Tag identifies the encoding of one SAB value. Every value in the
// record stream is introduced by its tag byte, and the tag fixes the byte
// layout that follows it.
type Tag uint8

const (
	TagInt           Tag = 0x04 // little-endian int32
	TagDouble        Tag = 0x06 // little-endian float64
	TagString        Tag = 0x07 // length byte + UTF-8 bytes
	TagBoolTrue      Tag = 0x0a
	TagBoolFalse     Tag = 0x0b
	TagPointer       Tag = 0x0c // int32 entity index, -1 is the null pointer
	TagEntityTypeEx  Tag = 0x0d // entity type name fragment
	TagEntityType    Tag = 0x0e // terminal entity type name fragment
	TagSubtypeStart  Tag = 0x0f
	TagSubtypeEnd    Tag = 0x10
	TagRecordEnd     Tag = 0x11
	TagLiteralString Tag = 0x12 // little-endian int32 length + UTF-8 bytes
	TagLocationVec   Tag = 0x13 // 3 x little-endian float64
	TagDirectionVec  Tag = 0x14 // 3 x little-endian float64
	TagEnum          Tag = 0x15 // little-endian int32 ordinal
	TagUnknown       Tag = 0x17 // float64 of unknown meaning, passed through
)

var tagStrings = []IntName{
	{uint32(TagInt), "int"},
	{uint32(TagDouble), "double"},
	{uint32(TagString), "str"},
	{uint32(TagBoolTrue), "bool_true"},
	{uint32(TagBoolFalse), "bool_false"},
	{uint32(TagPointer), "ptr"},
	{uint32(TagEntityTypeEx), "subident"},
	{uint32(TagEntityType), "ident"},
	{uint32(TagSubtypeStart), "subtype_start"},
	{uint32(TagSubtypeEnd), "subtype_end"},
	{uint32(TagRecordEnd), "record_end"},
	{uint32(TagLiteralString), "literal_str"},
	{uint32(TagLocationVec), "location_vec"},
	{uint32(TagDirectionVec), "direction_vec"},
	{uint32(TagEnum), "enum"},
	{uint32(TagUnknown), "unknown_0x17"},
}

func (t Tag) Int() uint32      { return uint32(t) }
func (t Tag) String() string   { return StringName(uint32(t), tagStrings, false) }
func (t Tag) GoString() string { return StringName(uint32(t), tagStrings, true) }
