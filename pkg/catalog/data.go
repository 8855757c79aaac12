package catalog

import "sync"

var builtin = []Entry{
	{Name: "Shadowfang", Record: Record{Rarity: Epic, Description: "A blade that whispers the secrets of the night.", Power: 87}},
	{Name: "Stormbringer", Record: Record{Rarity: Legendary, Description: "A hammer crackling with the energy of a thousand storms.", Power: 95}},
	{Name: "Eldertome", Record: Record{Rarity: Rare, Description: "A dusty tome filled with forgotten spells.", Power: 72}},
	{Name: "Phantom Cloak", Record: Record{Rarity: Uncommon, Description: "A cloak that flickers between the material and ethereal planes.", Power: 58}},
	{Name: "Inferno Dagger", Record: Record{Rarity: Rare, Description: "A dagger that burns with an undying flame.", Power: 80}},
	{Name: "Gauntlet of Titans", Record: Record{Rarity: Legendary, Description: "A massive gauntlet that grants superhuman strength.", Power: 99}},
	{Name: "Venomfang", Record: Record{Rarity: Epic, Description: "A bow that poisons its targets with deadly precision.", Power: 85}},
	{Name: "Void Amulet", Record: Record{Rarity: Common, Description: "A mysterious amulet that absorbs weak spells.", Power: 40}},
	{Name: "Echoing Horn", Record: Record{Rarity: Uncommon, Description: "A horn that, when blown, repeats its sound three times.", Power: 55}},
	{Name: "Crystal Aegis", Record: Record{Rarity: Rare, Description: "A shield made of enchanted crystal, reflecting magic attacks.", Power: 78}},
}

var defaultCatalog = sync.OnceValue(func() *Catalog { return MustNew(builtin...) })

// Default returns the built-in catalog. It is built once per process.
func Default() *Catalog { return defaultCatalog() }
