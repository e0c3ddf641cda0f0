package types

import "fmt"

// An Entity is one node of the decoded geometry graph. Its address for
// back-reference purposes is its position in the decoded entity list;
// the list is the sole owner of all entities, entities hold non-owning
// references to each other.
type Entity struct {
	Name       string
	AttrPtr    int // raw attribute index, reset to -1 by pointer resolution
	ID         int // -1 for format versions below EntityIDVersion
	Data       Record
	Attributes *Entity // set by pointer resolution
}

// NullPtr is the shared null entity. Every pointer index -1 resolves to
// this single instance; it is never mutated.
var NullPtr = &Entity{Name: "null-ptr", AttrPtr: -1, ID: -1}

// IsNull reports whether e is the shared null entity.
func (e *Entity) IsNull() bool { return e == NullPtr }

func (e *Entity) String() string {
	return fmt.Sprintf("%s(%d)", e.Name, e.ID)
}
