package component

// Scoreboard — счёт текущей сессии
type Scoreboard struct {
	Score     int
	Conquered int // разрушенные замки
	Wave      int // номер волны, который видит игрок
}

func NewScoreboard() Scoreboard {
	return Scoreboard{Wave: 1}
}

func (s *Scoreboard) Add(points int) {
	s.Score += points
}
