package types

import (
	"fmt"
	"time"
)

// SAB file signatures. The ACIS form is embedded by DXF R2013 files, the
// ASM form by DXF R2018 and later.
const (
	SignatureACIS = "ACIS BinaryFile"
	SignatureASM  = "ASM BinaryFile4"
)

// DateLayout is the text layout of the creation date header field.
const DateLayout = "Mon Jan _2 15:04:05 2006"

// EntityIDVersion is the first format version whose entity records carry
// a numeric entity id between the attribute pointer and the payload.
const EntityIDVersion = 700

var dataEndMarkers = []string{
	"End-of-ACIS-data",
	"End-of-ASM-data",
}

// IsDataEndMarker reports whether name is one of the reserved entity type
// names that terminate the record stream.
func IsDataEndMarker(name string) bool {
	for _, m := range dataEndMarkers {
		if name == m {
			return true
		}
	}
	return false
}

// A Header represents the fixed preamble of a SAB data stream. It is
// produced once by the decoder and read-only thereafter. The two
// tolerance values that follow UnitsInMM in the stream are consumed to
// keep the cursor aligned but not retained.
type Header struct {
	Version      int
	NumRecords   int
	NumEntities  int
	Flags        int
	ProductID    string
	AcisVersion  string
	CreationDate time.Time
	UnitsInMM    float64
}

var acisVersionStrings = []IntName{
	{400, "ACIS 4.00 NT"},
	{700, "ACIS 32.0 NT"},
	{20800, "ASM 208.00 NT"},
}

// AcisVersionString returns the modeler product string for a SAB format
// version number.
func AcisVersionString(version int) string {
	for _, v := range acisVersionStrings {
		if int(v.I) == version {
			return v.S
		}
	}
	return fmt.Sprintf("ACIS %d.0 Unknown", version/100)
}

func (h Header) String() string {
	return fmt.Sprintf(
		"Version       = %d (%s)\n"+
			"Records       = %d\n"+
			"Entities      = %d\n"+
			"Flags         = %#x\n"+
			"ProductID     = %s\n"+
			"AcisVersion   = %s\n"+
			"CreationDate  = %s\n"+
			"UnitsInMM     = %g\n",
		h.Version, AcisVersionString(h.Version),
		h.NumRecords,
		h.NumEntities,
		h.Flags,
		h.ProductID,
		h.AcisVersion,
		h.CreationDate.Format(DateLayout),
		h.UnitsInMM,
	)
}
