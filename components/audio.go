package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

// Queue schedules a sound for the audio system.
func (a *AudioData) Queue(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}
