// Package renderer draws the aquarium with raylib and turns window input into
// game commands.
package renderer

import (
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Assets lazily loads textures and fonts from one directory. A file that is
// missing or fails to load is reported once and then treated as absent, so
// callers fall back to plain shapes.
type Assets struct {
	dir      string
	textures map[string]rl.Texture2D
	fonts    map[string]rl.Font
	missing  map[string]bool
}

// NewAssets creates a loader rooted at dir. Must be called after the window exists.
func NewAssets(dir string) *Assets {
	return &Assets{
		dir:      dir,
		textures: make(map[string]rl.Texture2D),
		fonts:    make(map[string]rl.Font),
		missing:  make(map[string]bool),
	}
}

// path resolves name, logging and remembering it if the file does not exist.
func (a *Assets) path(name string) (string, bool) {
	if name == "" || a.missing[name] {
		return "", false
	}
	p := filepath.Join(a.dir, name)
	if _, err := os.Stat(p); err != nil {
		slog.Warn("asset missing", "path", p, "error", err)
		a.missing[name] = true
		return "", false
	}
	return p, true
}

// Texture returns the texture for name, loading it on first use.
func (a *Assets) Texture(name string) (rl.Texture2D, bool) {
	if tex, ok := a.textures[name]; ok {
		return tex, true
	}
	p, ok := a.path(name)
	if !ok {
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(p)
	if tex.ID == 0 {
		slog.Warn("texture failed to load", "path", p)
		a.missing[name] = true
		return rl.Texture2D{}, false
	}
	a.textures[name] = tex
	return tex, true
}

// Font returns the font for name, loading it on first use.
func (a *Assets) Font(name string) (rl.Font, bool) {
	if font, ok := a.fonts[name]; ok {
		return font, true
	}
	p, ok := a.path(name)
	if !ok {
		return rl.Font{}, false
	}
	font := rl.LoadFont(p)
	if font.Texture.ID == 0 {
		slog.Warn("font failed to load", "path", p)
		a.missing[name] = true
		return rl.Font{}, false
	}
	a.fonts[name] = font
	return font, true
}

// SetWindowIcon uses image name as the window icon, if it exists.
func (a *Assets) SetWindowIcon(name string) {
	p, ok := a.path(name)
	if !ok {
		return
	}
	img := rl.LoadImage(p)
	rl.SetWindowIcon(*img)
	rl.UnloadImage(img)
}

// Unload frees every loaded texture and font.
func (a *Assets) Unload() {
	for name, tex := range a.textures {
		rl.UnloadTexture(tex)
		delete(a.textures, name)
	}
	for name, font := range a.fonts {
		rl.UnloadFont(font)
		delete(a.fonts, name)
	}
}
