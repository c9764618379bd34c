package puzzle

import "testing"

func TestComboTrackerNumbersAcrossWaves(t *testing.T) {
	tr := NewComboTracker()

	tr.Append(ComboRecord{Seq: 1}, ComboRecord{Seq: 2})
	tr.Append(ComboRecord{Seq: 1})

	combos := tr.Combos()
	if len(combos) != 3 {
		t.Fatalf("expected 3 combos, got %d", len(combos))
	}
	for i, c := range combos {
		if c.Seq != i+1 {
			t.Errorf("combo %d has seq %d", i, c.Seq)
		}
	}
}

func TestAttackResolverTwoWaves(t *testing.T) {
	g := mustParse(t, `
LTHD
WWWL
FFFT
`)
	tr := NewComboTracker()
	tr.Append(detectAndErase(t, g)...)

	if tr.Len() != 2 {
		t.Fatalf("expected 2 combos before attack, got %d", tr.Len())
	}

	atk := NewAttackResolver(nil).Resolve(tr)

	if atk.Combos != 2 || atk.Damage != 2*DefaultAttackPerCombo {
		t.Errorf("attack = %+v, want 2 combos for %d damage", atk, 2*DefaultAttackPerCombo)
	}
	if tr.Len() != 0 {
		t.Errorf("tracker should be empty after attack, has %d", tr.Len())
	}
}

func TestAttackPolicies(t *testing.T) {
	combos := make([]ComboRecord, 4)

	tests := []struct {
		name   string
		policy AttackPolicy
		want   int
	}{
		{"linear", LinearAttack{PerCombo: 10}, 40},
		{"zero increment", LinearAttack{}, 0},
		{"custom", AttackFunc(func(c []ComboRecord) int { return len(c) * len(c) }), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewComboTracker()
			tr.Append(combos...)
			if got := NewAttackResolver(tt.policy).Resolve(tr).Damage; got != tt.want {
				t.Errorf("damage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLinearAttackMonotonic(t *testing.T) {
	policy := LinearAttack{PerCombo: DefaultAttackPerCombo}
	prev := -1
	for n := range 10 {
		d := policy.Damage(make([]ComboRecord, n))
		if d < prev {
			t.Fatalf("damage decreased from %d to %d at %d combos", prev, d, n)
		}
		prev = d
	}
}
