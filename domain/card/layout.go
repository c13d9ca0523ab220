package card

// Bit layout of a Hand. Each suit owns a 16-bit lane; inside a lane bit 0 is
// the low-ace alias and bits 1..13 hold deuce through ace.
const (
	LaneWidth = 16

	ClubOffset    = 0
	DiamondOffset = ClubOffset + LaneWidth
	HeartOffset   = DiamondOffset + LaneWidth
	SpadeOffset   = HeartOffset + LaneWidth

	LowAceIndex = 0
	DeuceIndex  = 1
	FiveIndex   = DeuceIndex + 3
	AceIndex    = DeuceIndex + 12
)

const (
	// LaneMask selects one lane once it has been shifted down to bit 0.
	LaneMask = 1<<LaneWidth - 1

	// RankMask selects the thirteen real rank positions of a lane.
	RankMask = (1<<(AceIndex+1) - 1) &^ (1 << LowAceIndex)

	// AllSuits replicates a single in-lane bit into all four lanes.
	AllSuits Hand = 1<<ClubOffset | 1<<DiamondOffset | 1<<HeartOffset | 1<<SpadeOffset

	// Mask covers the 52 card positions.
	Mask Hand = RankMask * AllSuits

	// AceMask covers the four aces and LowAceMask their aliases.
	AceMask    Hand = 1 << AceIndex * AllSuits
	LowAceMask Hand = 1 << LowAceIndex * AllSuits
)
