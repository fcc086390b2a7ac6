package core

// Event is a discrete named occurrence emitted by the simulation for
// collaborators such as the audio player. The core never waits on them.
type Event string

const (
	EventBegin Event = "begin" // A new round is ready (process start or restart)
	EventScore Event = "score" // The player passed a pipe
	EventOuch  Event = "ouch"  // The player hit a pipe or the ground
)
