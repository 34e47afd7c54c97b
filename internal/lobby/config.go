package lobby

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
	"github.com/kevlar-tabletop/citadels/internal/prng"
)

// ConfigOption controls whether a unique district is offered in a game's
// shared district pool.
type ConfigOption int

const (
	// Sometimes lets the district compete for a pool slot with the rest of
	// the "sometimes" set, shuffled.
	Sometimes ConfigOption = iota
	// Always guarantees the district a pool slot.
	Always
	// Never excludes the district entirely.
	Never
)

func (o ConfigOption) String() string {
	switch o {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "sometimes"
	}
}

// GameConfig holds a lobby's enabled roles and per-district pool settings.
// The zero value is not useable directly; construct one with DefaultConfig.
type GameConfig struct {
	Roles     map[catalogue.RoleName]bool
	Districts map[catalogue.DistrictName]ConfigOption
}

// DefaultConfig enables every role and leaves every unique district at its
// default ("sometimes compete for a pool slot") setting.
func DefaultConfig() GameConfig {
	roles := make(map[catalogue.RoleName]bool, catalogue.RoleCount)
	for _, r := range catalogue.AllRoles() {
		roles[r] = true
	}
	return GameConfig{Roles: roles, Districts: make(map[catalogue.DistrictName]ConfigOption)}
}

// BaseSetConfig restricts the config to the eight Base-edition roles of
// ranks 1-8 plus the Artist at rank 9, one role per rank.
func BaseSetConfig() GameConfig {
	base := []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
		catalogue.Artist,
	}
	roles := make(map[catalogue.RoleName]bool, len(base))
	for _, r := range base {
		roles[r] = true
	}
	return GameConfig{Roles: roles, Districts: make(map[catalogue.DistrictName]ConfigOption)}
}

// RoleEnabled reports whether a role is in the lobby's current selection.
func (c *GameConfig) RoleEnabled(r catalogue.RoleName) bool {
	return c.Roles[r]
}

// District returns the pool setting for a unique district, defaulting to
// Sometimes when unset.
func (c *GameConfig) District(d catalogue.DistrictName) ConfigOption {
	if opt, ok := c.Districts[d]; ok {
		return opt
	}
	return Sometimes
}

// RankWithoutRoleError is returned by SetRoles when a proposed selection
// would leave a rank with no role a host could ever be dealt.
type RankWithoutRoleError struct {
	Ranks []catalogue.Rank
}

func (e *RankWithoutRoleError) Error() string {
	return fmt.Sprintf("ranks with no enabled role: %v", e.Ranks)
}

// SetRoles replaces the lobby's enabled role set, after checking that
// every rank keeps at least one enabled role - an empty rank would make
// drafting impossible to complete.
func (c *GameConfig) SetRoles(roles map[catalogue.RoleName]bool) error {
	byRank := make(map[catalogue.Rank]bool)
	for _, r := range catalogue.AllRoles() {
		if roles[r] {
			byRank[r.Rank()] = true
		}
	}
	var emptyRanks []catalogue.Rank
	for rank := catalogue.RankOne; rank <= catalogue.RankNine; rank++ {
		if !byRank[rank] {
			emptyRanks = append(emptyRanks, rank)
		}
	}
	if len(emptyRanks) > 0 {
		return &RankWithoutRoleError{Ranks: emptyRanks}
	}
	c.Roles = roles
	return nil
}

// NoEnabledRoleError is returned by SelectRoles when every enabled role at
// a rank is barred by the table's player count.
type NoEnabledRoleError struct {
	Rank catalogue.Rank
}

func (e *NoEnabledRoleError) Error() string {
	return fmt.Sprintf("no enabled role available at rank %v for this player count", e.Rank)
}

// SelectRoles picks one enabled role per rank for a game of the given
// player count, skipping roles whose MinPlayerCount excludes the table.
// Rank nine is dropped entirely for 2-player games, since none of its
// roles function without a third seat.
func (c *GameConfig) SelectRoles(rng *prng.Source, numPlayers int) ([]catalogue.RoleName, error) {
	topRank := catalogue.RankNine
	if numPlayers == 2 {
		topRank = catalogue.RankEight
	}

	grouped := make(map[catalogue.Rank][]catalogue.RoleName)
	for _, r := range catalogue.AllRoles() {
		if r.Rank() > topRank {
			continue
		}
		if !c.RoleEnabled(r) {
			continue
		}
		if numPlayers < r.MinPlayerCount() {
			continue
		}
		grouped[r.Rank()] = append(grouped[r.Rank()], r)
	}

	out := make([]catalogue.RoleName, 0, int(topRank))
	for rank := catalogue.RankOne; rank <= topRank; rank++ {
		choices := grouped[rank]
		if len(choices) == 0 {
			return nil, &NoEnabledRoleError{Rank: rank}
		}
		out = append(out, choices[rng.IntN(len(choices))])
	}
	return out, nil
}

// SelectUniqueDistricts builds the 14-district unique pool offered this
// game: every "always" district first, then enough shuffled "sometimes"
// districts to fill out the remaining slots.
func (c *GameConfig) SelectUniqueDistricts(rng *prng.Source) []catalogue.DistrictName {
	const poolSize = 14
	var always, sometimes []catalogue.DistrictName
	for _, d := range catalogue.AllUniqueDistricts() {
		switch c.District(d) {
		case Always:
			always = append(always, d)
		case Sometimes:
			sometimes = append(sometimes, d)
		}
	}

	if len(always) < poolSize {
		rng.Shuffle(len(sometimes), func(i, j int) { sometimes[i], sometimes[j] = sometimes[j], sometimes[i] })
	}

	out := append([]catalogue.DistrictName(nil), always...)
	for _, d := range sometimes {
		if len(out) >= poolSize {
			break
		}
		out = append(out, d)
	}
	if len(out) > poolSize {
		out = out[:poolSize]
	}
	return out
}

// fileConfig is the YAML-serializable projection of a GameConfig; the live
// struct keys its maps by catalogue enum values, which do not round-trip
// through YAML's string-keyed maps, so loading/saving goes through names.
type fileConfig struct {
	Roles     []string          `yaml:"roles"`
	Districts map[string]string `yaml:"districts"`
}

// LoadConfigFile reads a lobby configuration from a YAML file, letting a
// host check in a preferred house-rules file instead of re-configuring a
// lobby every session.
func LoadConfigFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return GameConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	roles := make(map[catalogue.RoleName]bool, len(fc.Roles))
	for _, name := range fc.Roles {
		r, ok := roleByName(name)
		if !ok {
			return GameConfig{}, fmt.Errorf("unknown role %q in %s", name, path)
		}
		roles[r] = true
	}
	districts := make(map[catalogue.DistrictName]ConfigOption, len(fc.Districts))
	for name, opt := range fc.Districts {
		d, ok := districtByName(name)
		if !ok {
			return GameConfig{}, fmt.Errorf("unknown district %q in %s", name, path)
		}
		districts[d] = parseConfigOption(opt)
	}
	return GameConfig{Roles: roles, Districts: districts}, nil
}

func parseConfigOption(s string) ConfigOption {
	switch s {
	case "always":
		return Always
	case "never":
		return Never
	default:
		return Sometimes
	}
}

func roleByName(name string) (catalogue.RoleName, bool) {
	for _, r := range catalogue.AllRoles() {
		if r.DisplayName() == name {
			return r, true
		}
	}
	return 0, false
}

func districtByName(name string) (catalogue.DistrictName, bool) {
	for _, d := range catalogue.AllDistricts() {
		if d.Data().DisplayName == name {
			return d, true
		}
	}
	return 0, false
}
