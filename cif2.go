/*
DESCRIPTION
  cif2.go implements CIF2's field schema: a bank of 32-bit identifier
  fields (stream, platform, function/mode/event and priority
  identifiers). Controllee/controller id and uuid are NOT CIF2 fields —
  per the Command wrapper they live directly on Command, gated by CAM
  rather than by a CIF bit (see cam.go, command.go).

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

const (
	cif2BitBind                    = 31
	cif2BitCitedSID                = 30
	cif2BitSiblingSID              = 29
	cif2BitParentSID               = 28
	cif2BitChildSID                = 27
	cif2BitCitedMessageID          = 26
	cif2BitInformationSourceID     = 21
	cif2BitTrackID                 = 20
	cif2BitCountryCode             = 19
	cif2BitOperatorID              = 18
	cif2BitPlatformClass           = 17
	cif2BitPlatformInstance        = 16
	cif2BitPlatformDisplay         = 15
	cif2BitEmsDeviceClass          = 14
	cif2BitEmsDeviceType           = 13
	cif2BitEmsDeviceInstance       = 12
	cif2BitModulationClass         = 11
	cif2BitModulationType          = 10
	cif2BitFunctionID              = 9
	cif2BitModeID                  = 8
	cif2BitEventID                 = 7
	cif2BitFunctionPriorityID      = 6
	cif2BitCommunicationPriorityID = 5
	cif2BitRfFootprint             = 4
	cif2BitRfFootprintRange        = 3
)

// cif2ReservedBits names the bits reserved for the controllee/controller
// id and uuid slots, which this implementation carries directly on
// Command instead (spec.md §4.5/§4.6), plus the spec-reserved bits 2-0.
var cif2ReservedBits = map[int]bool{
	25: true, 24: true, 23: true, 22: true,
	2: true, 1: true, 0: true,
}

// Cif2Fields holds CIF2's identifier fields.
type Cif2Fields struct {
	Bind                    *CifField[uint32]
	CitedSID                *CifField[uint32]
	SiblingSID              *CifField[uint32]
	ParentSID               *CifField[uint32]
	ChildSID                *CifField[uint32]
	CitedMessageID          *CifField[uint32]
	InformationSourceID     *CifField[uint32]
	TrackID                 *CifField[uint32]
	CountryCode             *CifField[uint32]
	OperatorID              *CifField[uint32]
	PlatformClass           *CifField[uint32]
	PlatformInstance        *CifField[uint32]
	PlatformDisplay         *CifField[uint32]
	EmsDeviceClass          *CifField[uint32]
	EmsDeviceType           *CifField[uint32]
	EmsDeviceInstance       *CifField[uint32]
	ModulationClass         *CifField[uint32]
	ModulationType          *CifField[uint32]
	FunctionID              *CifField[uint32]
	ModeID                  *CifField[uint32]
	EventID                 *CifField[uint32]
	FunctionPriorityID      *CifField[uint32]
	CommunicationPriorityID *CifField[uint32]
	RfFootprint             *CifField[uint32]
	RfFootprintRange        *CifField[uint32]
}

// NewCif2Fields returns an empty (all-absent) Cif2Fields.
func NewCif2Fields() *Cif2Fields {
	return &Cif2Fields{
		Bind:                    newCifField(cif2BitBind, u32Codec()),
		CitedSID:                newCifField(cif2BitCitedSID, u32Codec()),
		SiblingSID:              newCifField(cif2BitSiblingSID, u32Codec()),
		ParentSID:               newCifField(cif2BitParentSID, u32Codec()),
		ChildSID:                newCifField(cif2BitChildSID, u32Codec()),
		CitedMessageID:          newCifField(cif2BitCitedMessageID, u32Codec()),
		InformationSourceID:     newCifField(cif2BitInformationSourceID, u32Codec()),
		TrackID:                 newCifField(cif2BitTrackID, u32Codec()),
		CountryCode:             newCifField(cif2BitCountryCode, u32Codec()),
		OperatorID:              newCifField(cif2BitOperatorID, u32Codec()),
		PlatformClass:           newCifField(cif2BitPlatformClass, u32Codec()),
		PlatformInstance:        newCifField(cif2BitPlatformInstance, u32Codec()),
		PlatformDisplay:         newCifField(cif2BitPlatformDisplay, u32Codec()),
		EmsDeviceClass:          newCifField(cif2BitEmsDeviceClass, u32Codec()),
		EmsDeviceType:           newCifField(cif2BitEmsDeviceType, u32Codec()),
		EmsDeviceInstance:       newCifField(cif2BitEmsDeviceInstance, u32Codec()),
		ModulationClass:         newCifField(cif2BitModulationClass, u32Codec()),
		ModulationType:          newCifField(cif2BitModulationType, u32Codec()),
		FunctionID:              newCifField(cif2BitFunctionID, u32Codec()),
		ModeID:                  newCifField(cif2BitModeID, u32Codec()),
		EventID:                 newCifField(cif2BitEventID, u32Codec()),
		FunctionPriorityID:      newCifField(cif2BitFunctionPriorityID, u32Codec()),
		CommunicationPriorityID: newCifField(cif2BitCommunicationPriorityID, u32Codec()),
		RfFootprint:             newCifField(cif2BitRfFootprint, u32Codec()),
		RfFootprintRange:        newCifField(cif2BitRfFootprintRange, u32Codec()),
	}
}

// Entries returns the schema in descending bit order for the container walk.
func (c *Cif2Fields) Entries() []cifEntry {
	return []cifEntry{
		c.Bind,
		c.CitedSID,
		c.SiblingSID,
		c.ParentSID,
		c.ChildSID,
		c.CitedMessageID,
		c.InformationSourceID,
		c.TrackID,
		c.CountryCode,
		c.OperatorID,
		c.PlatformClass,
		c.PlatformInstance,
		c.PlatformDisplay,
		c.EmsDeviceClass,
		c.EmsDeviceType,
		c.EmsDeviceInstance,
		c.ModulationClass,
		c.ModulationType,
		c.FunctionID,
		c.ModeID,
		c.EventID,
		c.FunctionPriorityID,
		c.CommunicationPriorityID,
		c.RfFootprint,
		c.RfFootprintRange,
	}
}

// Word computes CIF2's 32-bit indicator word.
func (c *Cif2Fields) Word() uint32 { return cifWord(c.Entries()) }
