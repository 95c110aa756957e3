// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран приложения: меню, партия, пауза, итог раунда.
// Update вызывается раз в тик ebiten, партия считает время тиками.
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Пауза и итог оборачивают экран партии
// и возвращают его же, поэтому партия не пересоздаётся.
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState выходит из текущего экрана и входит в новый. Повторная установка того же экрана ничего не делает.
func (sm *StateMachine) SetState(newState State) {
	if newState == sm.current {
		return
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
