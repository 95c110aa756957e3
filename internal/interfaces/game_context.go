// internal/interfaces/game_context.go
package interfaces

import "mongol-march/internal/component"

// RoundContext — то, что боевой системе нужно знать о раунде
type RoundContext interface {
	Round() component.RoundState
	EndRound(result component.RoundState)
}
