package puzzle

// DefaultAttackPerCombo is the damage added per combo by LinearAttack.
const DefaultAttackPerCombo = 19

// ComboTracker accumulates the combos of the current episode.
type ComboTracker struct {
	combos []ComboRecord
}

// NewComboTracker creates an empty tracker.
func NewComboTracker() *ComboTracker {
	return &ComboTracker{}
}

// Append adds erase records in order, numbering them within the episode.
func (t *ComboTracker) Append(records ...ComboRecord) {
	for _, r := range records {
		r.Seq = len(t.combos) + 1
		t.combos = append(t.combos, r)
	}
}

// Len returns the number of combos so far.
func (t *ComboTracker) Len() int {
	return len(t.combos)
}

// Combos returns a copy of the recorded combos.
func (t *ComboTracker) Combos() []ComboRecord {
	out := make([]ComboRecord, len(t.combos))
	copy(out, t.combos)
	return out
}

// Reset empties the tracker.
func (t *ComboTracker) Reset() {
	t.combos = t.combos[:0]
}

// AttackPolicy turns an episode's combos into a damage value.
// Implementations must be monotonic in the number of combos.
type AttackPolicy interface {
	Damage(combos []ComboRecord) int
}

// AttackFunc adapts a plain function to AttackPolicy.
type AttackFunc func(combos []ComboRecord) int

// Damage calls f.
func (f AttackFunc) Damage(combos []ComboRecord) int {
	return f(combos)
}

// LinearAttack adds a fixed amount per combo.
type LinearAttack struct {
	PerCombo int
}

// Damage returns PerCombo × len(combos).
func (a LinearAttack) Damage(combos []ComboRecord) int {
	return a.PerCombo * len(combos)
}

// Attack is the outcome of one ATTACK phase.
type Attack struct {
	Damage int
	Combos int
}

// AttackResolver converts accumulated combos into an Attack.
type AttackResolver struct {
	policy AttackPolicy
}

// NewAttackResolver creates a resolver. A nil policy selects LinearAttack
// with DefaultAttackPerCombo.
func NewAttackResolver(policy AttackPolicy) *AttackResolver {
	if policy == nil {
		policy = LinearAttack{PerCombo: DefaultAttackPerCombo}
	}
	return &AttackResolver{policy: policy}
}

// Resolve computes the attack for the tracked combos and empties the tracker.
func (r *AttackResolver) Resolve(t *ComboTracker) Attack {
	a := Attack{
		Damage: r.policy.Damage(t.combos),
		Combos: t.Len(),
	}
	t.Reset()
	return a
}
