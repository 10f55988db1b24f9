package object

import "fmt"

// ObjectType is the closed set of simulation object categories.
type ObjectType int

const (
	TypeNone ObjectType = iota

	// Bots
	TypeBotWheeled
	TypeBotTracked
	TypeBotLegged
	TypeBotFlying

	// Buildings
	TypeBase
	TypePowerStation

	// Resources
	TypeTitanium
	TypeUranium

	// Ruins — wrecked bot variants. TypeRuinBotWheeled is the family
	// representative under normalization.
	TypeRuinBotWheeled
	TypeRuinBotTracked1
	TypeRuinBotTracked2
	TypeRuinBotRoller1
	TypeRuinBotRoller2

	// Scrap — waste variants. TypeScrap1 is the representative.
	TypeScrap1
	TypeScrap2
	TypeScrap3
	TypeScrap4
	TypeScrap5

	// Barriers. TypeBarrier1 is the representative.
	TypeBarrier1
	TypeBarrier2
	TypeBarrier3

	// System objects — never returned by wildcard radar queries.
	TypeMascot
	TypeController
)

var typeNames = map[ObjectType]string{
	TypeNone:            "None",
	TypeBotWheeled:      "BotWheeled",
	TypeBotTracked:      "BotTracked",
	TypeBotLegged:       "BotLegged",
	TypeBotFlying:       "BotFlying",
	TypeBase:            "Base",
	TypePowerStation:    "PowerStation",
	TypeTitanium:        "Titanium",
	TypeUranium:         "Uranium",
	TypeRuinBotWheeled:  "RuinBotWheeled",
	TypeRuinBotTracked1: "RuinBotTracked1",
	TypeRuinBotTracked2: "RuinBotTracked2",
	TypeRuinBotRoller1:  "RuinBotRoller1",
	TypeRuinBotRoller2:  "RuinBotRoller2",
	TypeScrap1:          "Scrap1",
	TypeScrap2:          "Scrap2",
	TypeScrap3:          "Scrap3",
	TypeScrap4:          "Scrap4",
	TypeScrap5:          "Scrap5",
	TypeBarrier1:        "Barrier1",
	TypeBarrier2:        "Barrier2",
	TypeBarrier3:        "Barrier3",
	TypeMascot:          "Mascot",
	TypeController:      "Controller",
}

func (t ObjectType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ObjectType(%d)", int(t))
}

// ParseObjectType resolves a type by its name (used by the YAML data tables).
func ParseObjectType(name string) (ObjectType, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return TypeNone, false
}

// Normalize collapses each ruin/scrap/barrier family to one representative
// type, so script-facing queries for "any ruin" match every sub-variant.
// Types outside those families map to themselves.
func Normalize(t ObjectType) ObjectType {
	switch t {
	case TypeRuinBotWheeled, TypeRuinBotTracked1, TypeRuinBotTracked2,
		TypeRuinBotRoller1, TypeRuinBotRoller2:
		return TypeRuinBotWheeled
	case TypeScrap1, TypeScrap2, TypeScrap3, TypeScrap4, TypeScrap5:
		return TypeScrap1
	case TypeBarrier1, TypeBarrier2, TypeBarrier3:
		return TypeBarrier1
	}
	return t
}

// IsSystemType reports whether t is one of the system categories that must
// be requested explicitly — they never satisfy a wildcard radar query.
func IsSystemType(t ObjectType) bool {
	return t == TypeMascot || t == TypeController
}
