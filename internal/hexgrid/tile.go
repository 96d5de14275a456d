package hexgrid

// Land is the building level of a habitable tile.
type Land int

const (
	Grassland Land = iota
	Village
	Town
	Fortress
)

func (l Land) String() string {
	switch l {
	case Grassland:
		return "grassland"
	case Village:
		return "village"
	case Town:
		return "town"
	case Fortress:
		return "fortress"
	default:
		return "unknown-land"
	}
}

// Upgrade returns the next Land level and whether an upgrade was
// possible (false on Fortress).
func (l Land) Upgrade() (Land, bool) {
	if l == Fortress {
		return l, false
	}
	return l + 1, true
}

// Degrade returns the previous Land level and whether a degrade was
// possible (false on Grassland).
func (l Land) Degrade() (Land, bool) {
	if l == Grassland {
		return l, false
	}
	return l - 1, true
}

// GrowthRate returns the per-tick population multiplier for l; only
// meaningful for non-Grassland land.
func (l Land) GrowthRate() float64 {
	switch l {
	case Village:
		return 1.10
	case Town:
		return 1.20
	case Fortress:
		return 1.30
	default:
		return 1.0
	}
}

// UpgradeCost is the gold price to build from l to l+1.
func (l Land) UpgradeCost() uint64 {
	switch l {
	case Grassland:
		return 160
	case Village:
		return 240
	case Town:
		return 320
	default:
		return 0
	}
}

// Kind discriminates the Tile variant.
type Kind int

const (
	Void Kind = iota
	Mountain
	Mine
	Habitable
)

// TileClass is the coarse wire-level tile kind (§6 of the spec).
type TileClass uint8

const (
	TileClassVoid      TileClass = 0
	TileClassMountain  TileClass = 1
	TileClassMine      TileClass = 2
	TileClassGrassland TileClass = 3
	TileClassVillage   TileClass = 4
	TileClassTown      TileClass = 5
	TileClassFortress  TileClass = 6
)

// Tile is a single grid cell. Kind discriminates which fields are
// meaningful: Owner is valid for Mine and Habitable, Land/Units only
// for Habitable.
type Tile struct {
	Kind  Kind
	Owner int
	Land  Land
	Units [MaxPlayers]int32
}

// VoidTile returns a Void tile.
func VoidTile() Tile { return Tile{Kind: Void} }

// MountainTile returns a Mountain tile.
func MountainTile() Tile { return Tile{Kind: Mountain} }

// MineTile returns a Mine tile owned by owner (Neutral for none).
func MineTile(owner int) Tile { return Tile{Kind: Mine, Owner: owner} }

// NewHabitable returns a fresh habitable tile with no population.
func NewHabitable(land Land) Tile {
	return Tile{Kind: Habitable, Land: land, Owner: Neutral}
}

// Class returns the tile's wire-level class.
func (t Tile) Class() TileClass {
	switch t.Kind {
	case Void:
		return TileClassVoid
	case Mountain:
		return TileClassMountain
	case Mine:
		return TileClassMine
	case Habitable:
		switch t.Land {
		case Village:
			return TileClassVillage
		case Town:
			return TileClassTown
		case Fortress:
			return TileClassFortress
		default:
			return TileClassGrassland
		}
	default:
		return TileClassVoid
	}
}

// TileFromClass builds a skeleton Tile (no population) from a wire
// class, used by the client when applying an S2C snapshot.
func TileFromClass(c TileClass) Tile {
	switch c {
	case TileClassVoid:
		return VoidTile()
	case TileClassMountain:
		return MountainTile()
	case TileClassMine:
		return MineTile(Neutral)
	case TileClassVillage:
		return NewHabitable(Village)
	case TileClassTown:
		return NewHabitable(Town)
	case TileClassFortress:
		return NewHabitable(Fortress)
	default:
		return NewHabitable(Grassland)
	}
}

// TotalPopulation returns the sum of units[1..] for a habitable tile.
func (t Tile) TotalPopulation() int32 {
	var total int32
	for p := 1; p < MaxPlayers; p++ {
		total += t.Units[p]
	}
	return total
}

// RefreshOwner recomputes Owner as the lowest-index argmax of
// Units[1..], or Neutral if all zero, and mirrors the total into
// Units[0]. Called after every mutation path that touches Units
// (combat, growth, migration, S2C apply).
func (t *Tile) RefreshOwner() {
	if t.Kind != Habitable {
		return
	}
	best := Neutral
	var bestUnits int32 = -1
	var total int32
	for p := 1; p < MaxPlayers; p++ {
		total += t.Units[p]
		if t.Units[p] > bestUnits {
			bestUnits = t.Units[p]
			best = p
		}
	}
	if bestUnits <= 0 {
		t.Owner = Neutral
	} else {
		t.Owner = best
	}
	t.Units[0] = total
}
