// internal/defs/loader.go
package defs

import (
	"embed"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

//go:embed data/*.json
var embedded embed.FS

var (
	ErrUnknownProfile = eris.New("unknown unit profile")
	ErrInvalidDefs    = eris.New("invalid definitions")
)

const (
	blocksFile = "blocks.json"
	unitsFile  = "units.json"
	giftsFile  = "gifts.json"
	wavesFile  = "waves.json"
)

// Library holds every static definition the game needs. It is built once per process
// and passed explicitly to the session.
type Library struct {
	Blocks   []BlockDefinition
	Profiles map[ProfileKey]UnitProfile
	Gifts    GiftPools
	Wave     WaveDefinition
}

// Default loads the definitions compiled into the binary.
func Default() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, eris.Wrap(err, "failed to open embedded definitions")
	}
	return Load(sub)
}

// LoadDir loads definitions from a directory on disk.
func LoadDir(dir string) (*Library, error) {
	return Load(os.DirFS(dir))
}

// Load reads blocks, unit profiles, gifts and wave pool from fsys and validates them.
func Load(fsys fs.FS) (*Library, error) {
	var blocks []blockJSON
	if err := readJSON(fsys, blocksFile, &blocks); err != nil {
		return nil, err
	}
	var profiles []UnitProfile
	if err := readJSON(fsys, unitsFile, &profiles); err != nil {
		return nil, err
	}

	lib := &Library{
		Blocks:   make([]BlockDefinition, 0, len(blocks)),
		Profiles: make(map[ProfileKey]UnitProfile, len(profiles)),
	}
	for _, b := range blocks {
		lib.Blocks = append(lib.Blocks, b.toDefinition())
	}
	for _, p := range profiles {
		if p.Scale == 0 {
			p.Scale = 1
		}
		lib.Profiles[p.Key()] = p
	}
	if err := readJSON(fsys, giftsFile, &lib.Gifts); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, wavesFile, &lib.Wave); err != nil {
		return nil, err
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return eris.Wrapf(err, "failed to read %s", name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return eris.Wrapf(err, "failed to unmarshal %s", name)
	}
	return nil
}

// Profile returns the base stats for a camp/type pair.
// An unknown pair is a programming error in the data, not a runtime condition.
func (l *Library) Profile(camp Camp, t UnitType) (UnitProfile, error) {
	p, ok := l.Profiles[ProfileKey{Camp: camp, Type: t}]
	if !ok {
		return UnitProfile{}, eris.Wrapf(ErrUnknownProfile, "%s %s", camp, t)
	}
	return p, nil
}

// Validate checks that every unit the game can ask for has a profile
// and that every block is a square matrix with its anchor on a filled cell.
func (l *Library) Validate() error {
	if len(l.Blocks) == 0 {
		return eris.Wrap(ErrInvalidDefs, "no blocks")
	}
	for _, b := range l.Blocks {
		n := len(b.Shape)
		for _, row := range b.Shape {
			if len(row) != n {
				return eris.Wrapf(ErrInvalidDefs, "block %s is not square", b.ID)
			}
		}
		if !b.Anchor.In(n, n) || !b.Shape[b.Anchor.Row][b.Anchor.Col] {
			return eris.Wrapf(ErrInvalidDefs, "block %s anchor %v is not a filled cell", b.ID, b.Anchor)
		}
		if _, err := l.Profile(CampAlly, b.UnitType); err != nil {
			return eris.Wrapf(ErrInvalidDefs, "block %s: %v", b.ID, err)
		}
	}
	for _, t := range l.Wave.Pool {
		if _, err := l.Profile(CampEnemy, t); err != nil {
			return eris.Wrapf(ErrInvalidDefs, "wave: %v", err)
		}
	}
	required := []ProfileKey{
		{Camp: CampAlly, Type: UnitKhan},
		{Camp: CampEnemy, Type: UnitCastle},
	}
	for _, k := range required {
		if _, err := l.Profile(k.Camp, k.Type); err != nil {
			return eris.Wrap(ErrInvalidDefs, err.Error())
		}
	}
	for _, p := range l.Profiles {
		if p.AttackCooldown <= 0 {
			return eris.Wrapf(ErrInvalidDefs, "%s %s has no attack cooldown", p.Camp, p.Type)
		}
	}
	if len(l.Gifts.Positive) == 0 || len(l.Gifts.Negative) == 0 {
		return eris.Wrap(ErrInvalidDefs, "empty gift pool")
	}
	return nil
}

// BlockByID finds a template by id.
func (l *Library) BlockByID(id string) (BlockDefinition, bool) {
	for _, b := range l.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return BlockDefinition{}, false
}
