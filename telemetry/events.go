// Package telemetry provides per-window play statistics, event logs and frame timing.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventImpulse EventType = iota
	EventPaddleHit
	EventWallBounce
	EventWin
)

var eventNames = [...]string{
	EventImpulse:    "impulse",
	EventPaddleHit:  "paddle_hit",
	EventWallBounce: "wall_bounce",
	EventWin:        "win",
}

// String returns the event name used in logs and CSV.
func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (t EventType) MarshalCSV() (string, error) {
	return t.String(), nil
}

// Event represents a single telemetry event.
type Event struct {
	Tick int32     `csv:"tick"`
	Type EventType `csv:"type"`

	// Optional fields depending on event type
	Player int     `csv:"player"` // paddle hit, win
	Amount float32 `csv:"amount"` // gear speed after an impulse
}

// NewImpulseEvent records a gear taking an impulse.
func NewImpulseEvent(tick int32, speed float32) Event {
	return Event{Tick: tick, Type: EventImpulse, Amount: speed}
}

// NewPaddleHitEvent records the ball bouncing off a paddle.
func NewPaddleHitEvent(tick int32, player int) Event {
	return Event{Tick: tick, Type: EventPaddleHit, Player: player}
}

// NewWallBounceEvent records the ball bouncing off the top or bottom edge.
func NewWallBounceEvent(tick int32) Event {
	return Event{Tick: tick, Type: EventWallBounce}
}

// NewWinEvent records the end of a rally.
func NewWinEvent(tick int32, player int) Event {
	return Event{Tick: tick, Type: EventWin, Player: player}
}
