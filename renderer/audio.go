package renderer

import (
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Audio plays the game's sound requests through the raylib audio device.
// Short effects are loaded as sounds, loops as streamed music.
type Audio struct {
	dir    string
	ready  bool
	sounds map[string]rl.Sound
	music  map[string]rl.Music
}

// NewAudio opens the audio device. If no device is available every request
// is dropped.
func NewAudio(dir string) *Audio {
	rl.InitAudioDevice()
	a := &Audio{
		dir:    dir,
		ready:  rl.IsAudioDeviceReady(),
		sounds: make(map[string]rl.Sound),
		music:  make(map[string]rl.Music),
	}
	if !a.ready {
		slog.Warn("audio device unavailable, running silent")
	}
	return a
}

func (a *Audio) file(name string) (string, bool) {
	if !a.ready || name == "" {
		return "", false
	}
	p := filepath.Join(a.dir, name)
	if _, err := os.Stat(p); err != nil {
		slog.Warn("sound missing", "path", p, "error", err)
		return "", false
	}
	return p, true
}

// Play fires a one-shot effect.
func (a *Audio) Play(name string) {
	snd, ok := a.sounds[name]
	if !ok {
		p, found := a.file(name)
		if !found {
			return
		}
		snd = rl.LoadSound(p)
		a.sounds[name] = snd
	}
	if snd.FrameCount > 0 {
		rl.PlaySound(snd)
	}
}

// Loop starts name as endlessly repeating background audio. Looping a name
// that is already playing does nothing.
func (a *Audio) Loop(name string) {
	if _, ok := a.music[name]; ok {
		return
	}
	p, ok := a.file(name)
	if !ok {
		return
	}
	m := rl.LoadMusicStream(p)
	if m.FrameCount == 0 {
		slog.Warn("music failed to load", "path", p)
		return
	}
	m.Looping = true
	rl.PlayMusicStream(m)
	a.music[name] = m
}

// Update refills the music stream buffers. Call once per frame.
func (a *Audio) Update() {
	for _, m := range a.music {
		rl.UpdateMusicStream(m)
	}
}

// Unload stops playback and closes the device.
func (a *Audio) Unload() {
	for _, m := range a.music {
		rl.StopMusicStream(m)
		rl.UnloadMusicStream(m)
	}
	for _, s := range a.sounds {
		if s.FrameCount > 0 {
			rl.UnloadSound(s)
		}
	}
	a.music = map[string]rl.Music{}
	a.sounds = map[string]rl.Sound{}
	if a.ready {
		rl.CloseAudioDevice()
	}
}
