package catalogue

// DistrictName is one of the 47 district identifiers (17 normal + 30 unique).
type DistrictName int

const (
	Temple DistrictName = iota
	Church
	Monastery
	Cathedral

	Watchtower
	Prison
	Baracks
	Fortress

	Manor
	Castle
	Palace

	Tavern
	Market
	TradingPost
	Docks
	Harbor
	TownHall

	Smithy
	Laboratory
	SchoolOfMagic
	Keep
	DragonGate
	HauntedQuarter
	GreatWall
	Observatory
	Library
	Quarry
	Armory
	Factory
	Park
	Museum
	PoorHouse
	MapRoom
	WishingWell
	ImperialTreasury
	Framework
	Statue
	GoldMine
	IvoryTower
	Necropolis
	ThievesDen
	Theater
	Stables
	Basilica
	SecretVault
	Capitol
	Monument
)

const DistrictCount = 47
const normalDistrictCount = 17

// SecretVaultCost is a sentinel: the Secret Vault can never be built because
// no reachable gold total meets it. It only ever leaves a player's hand via
// end-of-game scoring.
const SecretVaultCost = 1_000_000

// DistrictData is the immutable definition of a district.
type DistrictData struct {
	Name         DistrictName
	DisplayName  string
	Cost         int
	Suit         Suit
	Edition      Edition
	Multiplicity int // copies in the base deck; unique districts are always 1
	Description  string
	Action       ActionTag
	HasAction    bool
}

var districts = [DistrictCount]DistrictData{
	{Name: Temple, DisplayName: "Temple", Cost: 1, Suit: Religious, Edition: Base, Multiplicity: 3},
	{Name: Church, DisplayName: "Church", Cost: 2, Suit: Religious, Edition: Base, Multiplicity: 3},
	{Name: Monastery, DisplayName: "Monastery", Cost: 3, Suit: Religious, Edition: Base, Multiplicity: 3},
	{Name: Cathedral, DisplayName: "Cathedral", Cost: 5, Suit: Religious, Edition: Base, Multiplicity: 2},

	{Name: Watchtower, DisplayName: "Watchtower", Cost: 1, Suit: Military, Edition: Base, Multiplicity: 3},
	{Name: Prison, DisplayName: "Prison", Cost: 2, Suit: Military, Edition: Base, Multiplicity: 3},
	{Name: Baracks, DisplayName: "Baracks", Cost: 3, Suit: Military, Edition: Base, Multiplicity: 3},
	{Name: Fortress, DisplayName: "Fortress", Cost: 5, Suit: Military, Edition: Base, Multiplicity: 2},

	{Name: Manor, DisplayName: "Manor", Cost: 3, Suit: Noble, Edition: Base, Multiplicity: 5},
	{Name: Castle, DisplayName: "Castle", Cost: 4, Suit: Noble, Edition: Base, Multiplicity: 4},
	{Name: Palace, DisplayName: "Palace", Cost: 5, Suit: Noble, Edition: Base, Multiplicity: 3},

	{Name: Tavern, DisplayName: "Tavern", Cost: 1, Suit: Trade, Edition: Base, Multiplicity: 5},
	{Name: Market, DisplayName: "Market", Cost: 2, Suit: Trade, Edition: Base, Multiplicity: 4},
	{Name: TradingPost, DisplayName: "Trading Post", Cost: 2, Suit: Trade, Edition: Base, Multiplicity: 3},
	{Name: Docks, DisplayName: "Docks", Cost: 3, Suit: Trade, Edition: Base, Multiplicity: 3},
	{Name: Harbor, DisplayName: "Harbor", Cost: 4, Suit: Trade, Edition: Base, Multiplicity: 3},
	{Name: TownHall, DisplayName: "Town Hall", Cost: 5, Suit: Trade, Edition: Base, Multiplicity: 2},

	{
		Name: Smithy, DisplayName: "Smithy", Cost: 5, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "Once per turn, pay 2 gold to gain 3 cards.", Action: ActSmithy, HasAction: true,
	},
	{
		Name: Laboratory, DisplayName: "Laboratory", Cost: 5, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "Once per turn, discard 1 card from your hand to gain 2 gold.", Action: ActLaboratory, HasAction: true,
	},
	{
		Name: SchoolOfMagic, DisplayName: "School of Magic", Cost: 6, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "For abilities that gain resources for your districts, the School of Magic counts as the district type of your choice.",
	},
	{
		Name: Keep, DisplayName: "Keep", Cost: 3, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "The rank 8 character cannot use its ability on the Keep.",
	},
	{
		Name: DragonGate, DisplayName: "Dragon Gate", Cost: 6, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "At the end of the game score 2 extra points.",
	},
	{
		Name: HauntedQuarter, DisplayName: "Haunted Quarter", Cost: 2, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "At the end of the game, the Haunted Quarter counts as any 1 district type of your choice.",
	},
	{
		Name: GreatWall, DisplayName: "Great Wall", Cost: 6, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "The rank 8 character must pay 1 more gold to use its ability on any district in your city.",
	},
	{
		Name: Observatory, DisplayName: "Observatory", Cost: 4, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "If you choose to draw cards when gathering resources, draw 3 cards instead of 2.",
	},
	{
		Name: Library, DisplayName: "Library", Cost: 6, Suit: Unique, Edition: Base, Multiplicity: 1,
		Description: "If you choose to draw cards when gathering resources, keep all drawn cards.",
	},
	{
		Name: Quarry, DisplayName: "Quarry", Cost: 5, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "You can build districts that are identical to districts in your city.",
	},
	{
		Name: Armory, DisplayName: "Armory", Cost: 3, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "During your turn, destroy the Armory to destroy 1 district of your choice.", Action: ActArmory, HasAction: true,
	},
	{
		Name: Factory, DisplayName: "Factory", Cost: 5, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "You pay 1 fewer gold to build any other UNIQUE district.",
	},
	{
		Name: Park, DisplayName: "Park", Cost: 6, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "If there are no cards in your hand at the end of your turn, gain 2 cards.",
	},
	{
		Name: Museum, DisplayName: "Museum", Cost: 4, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "Once per turn, assign 1 card from your hand facedown under the Museum. At the end of the game, score 1 extra point for each card under the Museum.", Action: ActMuseum, HasAction: true,
	},
	{
		Name: PoorHouse, DisplayName: "Poor House", Cost: 4, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "If you have no gold in your stash at the end of your turn, gain 1 gold.",
	},
	{
		Name: MapRoom, DisplayName: "Map Room", Cost: 5, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "At the end of the game, score 1 extra point for each card in your hand.",
	},
	{
		Name: WishingWell, DisplayName: "Wishing Well", Cost: 5, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "At the end of the game, score 1 extra point for each UNIQUE district in your city (including Wishing Well).",
	},
	{
		Name: ImperialTreasury, DisplayName: "Imperial Treasury", Cost: 5, Suit: Unique, Edition: DarkCity, Multiplicity: 1,
		Description: "At the end of the game, score 1 extra point for each gold in your stash.",
	},
	{
		Name: Framework, DisplayName: "Framework", Cost: 3, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "You can build a district by destroying the Framework instead of paying that district's cost.",
	},
	{
		Name: Statue, DisplayName: "Statue", Cost: 3, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "If you have the crown at the end of the game, score 5 extra points.",
	},
	{
		Name: GoldMine, DisplayName: "Gold Mine", Cost: 6, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "If you choose to gain gold when gathering resources, gain 1 extra gold.",
	},
	{
		Name: IvoryTower, DisplayName: "Ivory Tower", Cost: 5, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "If the Ivory Tower is the only UNIQUE district in your city at the end of the game, score 5 extra points.",
	},
	{
		Name: Necropolis, DisplayName: "Necropolis", Cost: 5, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "You can build the Necropolis by destroying 1 district in your city instead of paying the Necropolis' cost.",
	},
	{
		Name: ThievesDen, DisplayName: "Thieves' Den", Cost: 6, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "Pay some or all of the Thieves' Den cost with cards from your hand instead of gold at a rate of 1 card to 1 gold.",
	},
	{
		Name: Theater, DisplayName: "Theater", Cost: 6, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "At the end of each selection phase, you may exchange your chosen character card with an opponent's character card.",
	},
	{
		Name: Stables, DisplayName: "Stables", Cost: 2, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "Building the Stables does not count toward your building limit for the turn.",
	},
	{
		Name: Basilica, DisplayName: "Basilica", Cost: 4, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "At the end of the game, score 1 extra point for each district in your city with an odd-numbered cost.",
	},
	{
		Name: SecretVault, DisplayName: "Secret Vault", Cost: SecretVaultCost, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "The Secret Vault cannot be built. At the end of the game, reveal the Secret Vault from your hand to score 3 extra points.",
	},
	{
		Name: Capitol, DisplayName: "Capitol", Cost: 5, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "If you have at least 3 districts of the same type at the end of the game, score 3 extra points.",
	},
	{
		Name: Monument, DisplayName: "Monument", Cost: 4, Suit: Unique, Edition: Citadels2016, Multiplicity: 1,
		Description: "You cannot build the Monument if you have 5 or more districts in your city. Treat the Monument as being 2 districts toward your completed city.",
	},
}

// Data returns the static definition of a district.
func (d DistrictName) Data() *DistrictData {
	return &districts[d]
}

func (d DistrictName) String() string {
	return districts[d].DisplayName
}

// Action returns the ActionTag this district's passive/active ability
// grants, if any (Smithy, Laboratory, Armory, Museum).
func (d DistrictName) Action() (ActionTag, bool) {
	data := districts[d]
	return data.Action, data.HasAction
}

// Multiplicity returns how many copies of a district live in the base deck.
// Unique districts always have exactly one copy.
func (d DistrictName) Multiplicity() int {
	return districts[d].Multiplicity
}

// IsUnique reports whether this is one of the 30 unique districts (suit
// Unique, at most one copy in the deck).
func (d DistrictName) IsUnique() bool {
	return int(d) >= normalDistrictCount
}

// AllDistricts returns every district name in catalogue order.
func AllDistricts() []DistrictName {
	out := make([]DistrictName, DistrictCount)
	for i := range out {
		out[i] = DistrictName(i)
	}
	return out
}

// AllUniqueDistricts returns the 30 unique district names.
func AllUniqueDistricts() []DistrictName {
	out := make([]DistrictName, 0, DistrictCount-normalDistrictCount)
	for i := normalDistrictCount; i < DistrictCount; i++ {
		out = append(out, DistrictName(i))
	}
	return out
}

// AllNormalDistricts returns the 17 normal (non-unique) district names.
func AllNormalDistricts() []DistrictName {
	out := make([]DistrictName, normalDistrictCount)
	for i := 0; i < normalDistrictCount; i++ {
		out[i] = DistrictName(i)
	}
	return out
}
