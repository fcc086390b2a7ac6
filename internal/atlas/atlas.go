// Package atlas maps sprite names to rectangles inside a texture atlas.
// It reads the TexturePacker JSON layout and hands out Sprites carrying
// the bounding-box dimensions the simulation collides with.
package atlas

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vovakirdan/flappy-crab/internal/core"
)

//go:embed defaults/texture_atlas.json
var defaultAtlasJSON []byte

// Sprite names used by the game.
const (
	Crab0      = "crab0.png"
	Crab1      = "crab1.png"
	PipeTop    = "pipe_top.png"
	PipeBottom = "pipe_bottom.png"
	FloorTile  = "floor_tile.png"
)

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type frameData struct {
	Filename string   `json:"filename"`
	Frame    jsonRect `json:"frame"`
}

type metaData struct {
	Image string `json:"image"`
	Size  struct {
		W int `json:"w"`
		H int `json:"h"`
	} `json:"size"`
}

// Atlas is a parsed texture atlas.
type Atlas struct {
	frames map[string]jsonRect
	image  string
	width  int
	height int
}

// Sprite is a named region of the atlas plus its drawing scale.
type Sprite struct {
	Name   string
	Frame  core.Rect // Pixel rectangle in the atlas
	UV     core.AABB // Frame as a fraction of the atlas size
	Width  float32
	Height float32
	Scale  core.Vec2
}

// Parse reads an atlas from JSON.
func Parse(r io.Reader) (*Atlas, error) {
	var doc struct {
		Frames []frameData `json:"frames"`
		Meta   metaData    `json:"meta"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("atlas: cannot decode: %w", err)
	}
	if doc.Meta.Size.W <= 0 || doc.Meta.Size.H <= 0 {
		return nil, fmt.Errorf("atlas: invalid atlas size %dx%d", doc.Meta.Size.W, doc.Meta.Size.H)
	}

	a := &Atlas{
		frames: make(map[string]jsonRect, len(doc.Frames)),
		image:  doc.Meta.Image,
		width:  doc.Meta.Size.W,
		height: doc.Meta.Size.H,
	}
	for _, f := range doc.Frames {
		if f.Filename == "" {
			return nil, fmt.Errorf("atlas: frame without filename")
		}
		if f.Frame.W <= 0 || f.Frame.H <= 0 {
			return nil, fmt.Errorf("atlas: frame %q has empty size", f.Filename)
		}
		if _, dup := a.frames[f.Filename]; dup {
			return nil, fmt.Errorf("atlas: duplicate frame %q", f.Filename)
		}
		a.frames[f.Filename] = f.Frame
	}
	return a, nil
}

// Load reads an atlas file. An empty path loads the embedded atlas.
func Load(path string) (*Atlas, error) {
	if path == "" {
		return Parse(bytes.NewReader(defaultAtlasJSON))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// MustLoad is Load for startup code: a missing or malformed atlas is fatal.
func MustLoad(path string) *Atlas {
	a, err := Load(path)
	if err != nil {
		panic(err)
	}
	return a
}

// Default returns the embedded atlas.
func Default() *Atlas {
	return MustLoad("")
}

// Image returns the texture file name recorded in the atlas metadata.
func (a *Atlas) Image() string {
	return a.image
}

// Names returns all sprite names, sorted.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.frames))
	for name := range a.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named sprite and whether it exists.
func (a *Atlas) Lookup(name string) (Sprite, bool) {
	fr, ok := a.frames[name]
	if !ok {
		return Sprite{}, false
	}
	w, h := float32(a.width), float32(a.height)
	return Sprite{
		Name:  name,
		Frame: core.NewRect(fr.X, fr.Y, fr.W, fr.H),
		UV: core.AABB{
			X: float32(fr.X) / w,
			Y: float32(fr.Y) / h,
			W: float32(fr.W) / w,
			H: float32(fr.H) / h,
		},
		Width:  float32(fr.W),
		Height: float32(fr.H),
		Scale:  core.V(1, 1),
	}, true
}

// CreateSprite returns the named sprite.
// Panics if the name is unknown: that is a construction bug, not a runtime condition.
func (a *Atlas) CreateSprite(name string) Sprite {
	s, ok := a.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("atlas: unknown sprite %q", name))
	}
	return s
}

// Flipped reports whether the sprite is drawn upside down.
func (s Sprite) Flipped() bool {
	return s.Scale.Y < 0
}

// Bounds returns the sprite's bounding box when drawn at pos.
// A vertically flipped sprite extends upward from pos.
func (s Sprite) Bounds(pos core.Vec2) core.AABB {
	b := core.AABB{X: pos.X, Y: pos.Y, W: s.Width, H: s.Height}
	if s.Flipped() {
		b.Y -= s.Height
	}
	return b
}
