package game

// Topology is the seating relationship that decides how an amount is split
// between the attack and the defence.
type Topology struct {
	Players int
	Taker   int
	Called  OptIndex
}

func (t Topology) Validate() error {
	if !ValidPlayerCount(t.Players) {
		return invalidHand("players", "player count %d not in [%d,%d]", t.Players, MinPlayers, MaxPlayers)
	}
	if t.Taker < 0 || t.Taker >= t.Players {
		return invalidHand("taker", "index %d out of range", t.Taker)
	}
	called, ok := t.Called.Get()
	switch {
	case t.Players == 5 && !ok:
		return invalidHand("called", "required with 5 players")
	case t.Players < 5 && ok:
		return invalidHand("called", "only allowed with 5 players")
	case ok && (called < 0 || called >= t.Players):
		return invalidHand("called", "index %d out of range", called)
	}
	return nil
}

// Solo reports a five-player hand where the taker called their own king.
func (t Topology) Solo() bool {
	return t.Players == 5 && t.Called.Is(t.Taker)
}

// Attacker reports whether seat i plays on the taker's side.
func (t Topology) Attacker(i int) bool {
	return i == t.Taker || (t.Players == 5 && t.Called.Is(i))
}

// ApplyPoints credits amount to the attack and debits it from the defence.
// The sum of scores is unchanged.
func ApplyPoints(scores []int, t Topology, amount int) error {
	if err := checkScores(scores, t); err != nil {
		return err
	}
	applyPoints(scores, t, amount)
	return nil
}

// UndoPoints reverses ApplyPoints with the same amount.
func UndoPoints(scores []int, t Topology, amount int) error {
	return ApplyPoints(scores, t, -amount)
}

func checkScores(scores []int, t Topology) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if len(scores) != t.Players {
		return invalidHand("scores", "length %d, want %d", len(scores), t.Players)
	}
	return nil
}

// applyPoints assumes a validated topology.
func applyPoints(scores []int, t Topology, amount int) {
	called, hasCalled := t.Called.Get()
	switch {
	case t.Solo():
		scores[t.Taker] += 4 * amount
	case t.Players == 5 && hasCalled:
		scores[t.Taker] += 2 * amount
		scores[called] += amount
	case t.Players == 4:
		scores[t.Taker] += 3 * amount
	default:
		scores[t.Taker] += 2 * amount
	}
	for i := range scores {
		if !t.Attacker(i) {
			scores[i] -= amount
		}
	}
}
