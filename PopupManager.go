package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jonboulle/clockwork"

	w "quiz-client/window"
)

const maxPopups = 4

type PopupManager struct {
	clock        clockwork.Clock
	activePopups []w.PopupComponent
}

func NewPopupManager(clock clockwork.Clock) PopupManager {
	return PopupManager{
		clock:        clock,
		activePopups: make([]w.PopupComponent, 0),
	}
}

// AddPopup queues a popup, dropping the oldest one once maxPopups are shown.
func (pm *PopupManager) AddPopup(text string, duration time.Duration) {
	newPopup := w.NewTimedPopup(text, duration, pm.clock)
	pm.activePopups = append(pm.activePopups, newPopup)
	if len(pm.activePopups) > maxPopups {
		pm.activePopups = pm.activePopups[len(pm.activePopups)-maxPopups:]
	}
}

func (pm *PopupManager) Update() {
	alivePopups := pm.activePopups[:0]

	for _, popup := range pm.activePopups {
		if popup.Update() {
			alivePopups = append(alivePopups, popup)
		}
	}

	pm.activePopups = alivePopups
}

func (pm *PopupManager) Len() int {
	return len(pm.activePopups)
}

// Calculate stacks the popups downwards from the top of the screen.
func (pm *PopupManager) Calculate(screenBounds rl.Rectangle) {
	curBounds := screenBounds

	for _, popup := range pm.activePopups {
		popup.Calculate(curBounds)
		curBounds.Y += popup.GetBounds().Height + 5
	}
}

func (pm *PopupManager) Draw(eventChannel chan<- w.UIEvent) {
	for _, popup := range pm.activePopups {
		popup.Draw(eventChannel)
	}
}
