package terminal

import (
	"github.com/pixil98/go-libram/internal/game"
)

const Item = game.Item("Source terminal")

// Buffs can be acquired with Enhance.
//
//   - Items: +30% Item Drop
//   - Meat: +60% Meat Drop
//   - Init: +50% Initiative
//   - Critical: +10% chance of Critical Hit and Spell Critical Hit
//   - Damage: +5 Prismatic Damage
//   - Substats: +3 Stats Per Fight
var Buffs = struct {
	Items, Meat, Init, Critical, Damage, Substats game.Effect
}{
	Items:    "items.enh",
	Meat:     "meat.enh",
	Init:     "init.enh",
	Critical: "critical.enh",
	Damage:   "damage.enh",
	Substats: "substats.enh",
}

// RolloverBuffs can be acquired with Enquiry and take effect at rollover.
var RolloverBuffs = struct {
	Familiar game.Effect // +5 Familiar Weight
	Monsters game.Effect // +25 ML
	Protect  game.Effect // +5 Prismatic Resistance
	Stats    game.Effect // +100% all stats
}{
	Familiar: "familiar.enq",
	Monsters: "monsters.enq",
	Protect:  "protect.enq",
	Stats:    "stats.enq",
}

// Skills can be learned with Educate. Two are known at a time.
var Skills = struct {
	Extract, Digitize, Compress, Duplicate, Portscan, Turbo game.Skill
}{
	Extract:   "Extract",
	Digitize:  "Digitize",
	Compress:  "Compress",
	Duplicate: "Duplicate",
	Portscan:  "Portscan",
	Turbo:     "Turbo",
}

// Items maps what Extrude can make to the file that makes it.
var Items = map[game.Item]string{
	"browser cookie":            "food.ext",
	"hacked gibson":             "booze.ext",
	"Source shades":             "goggles.ext",
	"Source terminal GRAM chip": "gram.ext",
	"Source terminal PRAM chip": "pram.ext",
	"Source terminal SPAM chip": "spam.ext",
	"Source terminal CRAM chip": "cram.ext",
	"Source terminal DRAM chip": "dram.ext",
	"Source terminal TRAM chip": "tram.ext",
	"software bug":              "familiar.ext",
}

// Chip is an upgrade installed in the terminal.
type Chip string

const (
	ChipIngram  Chip = "INGRAM"
	ChipDiagram Chip = "DIAGRAM"
	ChipAshram  Chip = "ASHRAM"
	ChipScram   Chip = "SCRAM"
	ChipTrigram Chip = "TRIGRAM"
	ChipCram    Chip = "CRAM"
	ChipDram    Chip = "DRAM"
	ChipTram    Chip = "TRAM"
)

var (
	buffList = []game.Effect{
		Buffs.Items, Buffs.Meat, Buffs.Init, Buffs.Critical, Buffs.Damage, Buffs.Substats,
	}
	rolloverBuffList = []game.Effect{
		RolloverBuffs.Familiar, RolloverBuffs.Monsters, RolloverBuffs.Protect, RolloverBuffs.Stats,
	}
	skillList = []game.Skill{
		Skills.Extract, Skills.Digitize, Skills.Compress, Skills.Duplicate, Skills.Portscan, Skills.Turbo,
	}
)

// Validate checks that every catalog entry exists in dict.
func Validate(dict *game.Dictionary) error {
	entities := []game.Entity{Item}
	for _, b := range buffList {
		entities = append(entities, b)
	}
	for _, b := range rolloverBuffList {
		entities = append(entities, b)
	}
	for _, s := range skillList {
		entities = append(entities, s)
	}
	for i := range Items {
		entities = append(entities, i)
	}
	return dict.Require(entities...)
}
