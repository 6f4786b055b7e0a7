package model

// Kind identifies a concrete unit type. Kind determines the immutable stat
// block looked up from the catalog; runtime attributes on Unit are mutable.
type Kind byte

const (
	KnightKind Kind = iota
	PikemanKind
	CrossbowmanKind
	MonkKind
	ElephantKind
	CastleKind
)

// String renders the kind's display name, used in event details, the
// scripted general's environment, and the plot command's table.
func (k Kind) String() string {
	switch k {
	case KnightKind:
		return "Knight"
	case PikemanKind:
		return "Pikeman"
	case CrossbowmanKind:
		return "Crossbowman"
	case MonkKind:
		return "Monk"
	case ElephantKind:
		return "Elephant"
	case CastleKind:
		return "Castle"
	default:
		return "Unknown"
	}
}

// Class tags a unit kind for damage-bonus purposes (e.g. Cavalry, Infantry).
type Class byte

const (
	Cavalry Class = iota
	Infantry
	Spear
	Archer
	Castles
)

func (c Class) String() string {
	switch c {
	case Cavalry:
		return "Cavalry"
	case Infantry:
		return "Infantry"
	case Spear:
		return "Spear"
	case Archer:
		return "Archer"
	case Castles:
		return "Castles"
	default:
		return "Unknown"
	}
}

// Stats is the immutable per-kind stat block, fixed in the catalog below.
type Stats struct {
	MaxHP        int
	Attack       int
	Armor        int
	Speed        float64
	Range        float64
	ConvertRange float64 // Monk-only; used in place of Range vs Elephant/Castle
	ReloadTime   int
	LineOfSight  float64
	Size         float64 // footprint diameter; collision radius is Size/2
	Classes      map[Class]bool
	Bonuses      map[Class]int // opponent class -> extra attack
}

// HasClass reports whether the stat block carries the given class tag.
func (s Stats) HasClass(c Class) bool {
	return s.Classes[c]
}

// catalog holds the authoritative per-kind stat table. Values come from the
// unit catalog table; Castle uses the current 4800 HP figure, not the
// legacy 300 constant.
var catalog = map[Kind]Stats{
	KnightKind: {
		MaxHP: 100, Attack: 10, Armor: 2, Speed: 2, Range: 1, ReloadTime: 2,
		LineOfSight: 4, Size: 1,
		Classes: map[Class]bool{Cavalry: true},
		Bonuses: map[Class]int{Infantry: 2},
	},
	PikemanKind: {
		MaxHP: 55, Attack: 4, Armor: 0, Speed: 1, Range: 1, ReloadTime: 3,
		LineOfSight: 6, Size: 1,
		Classes: map[Class]bool{Infantry: true, Spear: true},
		Bonuses: map[Class]int{Cavalry: 10},
	},
	CrossbowmanKind: {
		MaxHP: 35, Attack: 6, Armor: 0, Speed: 1, Range: 5, ReloadTime: 2,
		LineOfSight: 7, Size: 1,
		Classes: map[Class]bool{Archer: true},
		Bonuses: map[Class]int{Spear: 3},
	},
	MonkKind: {
		MaxHP: 30, Attack: 4, Armor: 0, Speed: 1, Range: 9, ConvertRange: 9, ReloadTime: 62,
		LineOfSight: 11, Size: 1,
		Classes: map[Class]bool{},
		Bonuses: map[Class]int{},
	},
	ElephantKind: {
		MaxHP: 300, Attack: 14, Armor: 2, Speed: 1, Range: 1, ReloadTime: 2,
		LineOfSight: 8, Size: 2,
		Classes: map[Class]bool{Cavalry: true},
		Bonuses: map[Class]int{Castles: 7},
	},
	CastleKind: {
		MaxHP: 4800, Attack: 55, Armor: 9, Speed: 0, Range: 8, ReloadTime: 2,
		LineOfSight: 11, Size: 5,
		Classes: map[Class]bool{Castles: true},
		Bonuses: map[Class]int{},
	},
}

// StatsFor returns the immutable stat block for a kind.
func StatsFor(k Kind) Stats {
	return catalog[k]
}

// KindFromLetter maps an army-file letter to a Kind. ok is false for an
// unrecognized letter, which the loader turns into an InvalidScenario error.
func KindFromLetter(letter byte) (Kind, bool) {
	switch letter {
	case 'K':
		return KnightKind, true
	case 'P':
		return PikemanKind, true
	case 'C':
		return CrossbowmanKind, true
	case 'M':
		return MonkKind, true
	case 'E':
		return ElephantKind, true
	case 'H':
		return CastleKind, true
	default:
		return 0, false
	}
}

// KindFromName maps a lowercase kind name (as typed on the plot CLI's TYPES
// argument) to a Kind. ok is false for an unrecognized name.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "knight":
		return KnightKind, true
	case "pikeman":
		return PikemanKind, true
	case "crossbowman":
		return CrossbowmanKind, true
	case "monk":
		return MonkKind, true
	case "elephant":
		return ElephantKind, true
	case "castle":
		return CastleKind, true
	default:
		return 0, false
	}
}
