// internal/system/catalog.go
package system

import (
	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/utils"
)

// Catalog — очередь блоков текущего раунда. Первый элемент — блок, который ставит игрок.
type Catalog struct {
	templates []defs.BlockDefinition
	blocks    []defs.BlockDefinition
	rng       *utils.PRNGService
}

func NewCatalog(templates []defs.BlockDefinition, rng *utils.PRNGService) *Catalog {
	return &Catalog{templates: templates, rng: rng}
}

// SizeFor — сколько блоков выдать при freeCells свободных клетках
func SizeFor(freeCells int) int {
	if freeCells < 0 {
		freeCells = 0
	}
	return freeCells/4 + config.CatalogBuffer
}

// Regenerate набирает новый каталог под число свободных клеток
func (c *Catalog) Regenerate(freeCells int) {
	c.blocks = utils.PickN(c.rng, c.templates, SizeFor(freeCells))
}

// Current — блок для установки, nil если каталог пуст
func (c *Catalog) Current() *defs.BlockDefinition {
	if len(c.blocks) == 0 {
		return nil
	}
	return &c.blocks[0]
}

// Next — следующий блок (для мини-доски), nil если его нет
func (c *Catalog) Next() *defs.BlockDefinition {
	if len(c.blocks) < 2 {
		return nil
	}
	return &c.blocks[1]
}

func (c *Catalog) Len() int { return len(c.blocks) }

// RotateCurrent поворачивает текущий блок. Шаблоны не меняются.
func (c *Catalog) RotateCurrent() bool {
	if len(c.blocks) == 0 {
		return false
	}
	c.blocks[0] = c.blocks[0].Rotated()
	return true
}

// Shift убирает текущий блок. empty == true, если каталог опустел.
func (c *Catalog) Shift() (empty bool) {
	if len(c.blocks) > 0 {
		c.blocks = c.blocks[1:]
	}
	return len(c.blocks) == 0
}
