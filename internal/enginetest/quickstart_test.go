package enginetest

import (
	"testing"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
	"github.com/kevlar-tabletop/citadels/internal/engine"
)

func TestQuickStartReachesCallPhase(t *testing.T) {
	roles := []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
	}
	g := QuickStart(t, 4, roles, catalogue.AllDistricts(), 7)

	if g.ActiveTurn.Phase != engine.PhaseCall {
		t.Fatalf("phase = %v, want PhaseCall", g.ActiveTurn.Phase)
	}
	for _, p := range g.Players {
		if len(p.Roles) == 0 {
			t.Fatalf("player %s drafted no role", p.Name)
		}
	}
}
