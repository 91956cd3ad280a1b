package ui

import "time"

// timerMsg fires a callback registered through scheduler.After
type timerMsg struct {
	id int
}

// frameMsg is one animation frame
type frameMsg time.Time

// spinMsg advances the loading spinner
type spinMsg time.Time
