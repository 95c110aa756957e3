package component

// RoundState — фаза раунда. В каждый момент активна ровно одна.
type RoundState int

const (
	PrologueState RoundState = iota
	PrepareState
	ReadyState
	FightState
	VictoryState
	DefeatState
)

func (s RoundState) String() string {
	switch s {
	case PrologueState:
		return "prologue"
	case PrepareState:
		return "prepare"
	case ReadyState:
		return "ready"
	case FightState:
		return "fight"
	case VictoryState:
		return "victory"
	case DefeatState:
		return "defeat"
	}
	return "unknown"
}

// IsResult — раунд закончен (victory/defeat), симуляция стоит
func (s RoundState) IsResult() bool {
	return s == VictoryState || s == DefeatState
}
