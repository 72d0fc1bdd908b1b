package service

// Broadcaster pushes live events to form watchers (avoids import cycle with ws)
type Broadcaster interface {
	Broadcast(formID string, msgType string, payload interface{})
}
