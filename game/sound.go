package game

// Sound is the fire-and-forget audio sink. Names are file names from the audio config.
type Sound interface {
	Play(name string)
	Loop(name string)
}

// NopSound discards every request.
type NopSound struct{}

func (NopSound) Play(string) {}
func (NopSound) Loop(string) {}
