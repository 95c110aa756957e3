// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 880
	ScreenHeight = 600

	BoardRows     = 5
	BoardCols     = 20
	CellSize      = 40.0
	BoardOffsetX  = 36
	BoardOffsetY  = ScreenHeight/2 + 64
	DisplayCell   = 16.0 // клетка мини-досок текущего/следующего блока
	DisplayOffset = 8

	PlayfieldWidth = float64(ScreenWidth) // союзники исчезают у правого края, враги у левого
	GroundY        = ScreenHeight/2 - 6
	CastleWidth    = 88

	TimelineStep = 0.3 // пикселей за тик

	TicksPerSecond = 60
	TickDuration   = time.Second / TicksPerSecond

	PrologueDuration  = 8 * time.Second
	SpawnStagger      = 500 * time.Millisecond // задержка спавна на каждую строку
	AttackDelay       = 50 * time.Millisecond
	CastleAttackDelay = 61 * time.Millisecond
	JumpTicks         = 6 // ~100ms
	JumpHeight        = 2

	CatalogBuffer      = 4  // лишние блоки сверх freeCells/4
	ExtraSoldierColumn = 10 // колонка, на которой выходят дополнительные враги
	ScoreRateBase      = 60
	GiftOffers         = 2

	PreviewOpacity = 0.6
	ClickCooldown  = 150 * time.Millisecond
)

var (
	BackgroundColor  = color.RGBA{210, 201, 165, 255}
	CellLightColor   = color.RGBA{171, 155, 142, 128}
	CellDarkColor    = color.RGBA{132, 120, 117, 128}
	LockedColor      = color.RGBA{121, 68, 74, 255}
	ScannedColor     = "#847875"
	TimelineColor    = color.RGBA{0, 0, 0, 255}
	TextDarkColor    = color.RGBA{87, 72, 82, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	AllyHealthColor  = color.RGBA{174, 93, 64, 255}
	EnemyHealthColor = color.RGBA{146, 116, 65, 255}
	HealthBgColor    = color.RGBA{77, 61, 68, 255}
	ButtonColor      = color.RGBA{75, 114, 110, 255}
	ButtonDisabled   = color.RGBA{132, 120, 117, 255}
	OverlayColor     = color.RGBA{210, 201, 165, 200}
)
