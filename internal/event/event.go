package event

import "time"

// Event is the record moved from the event source into the workspace.
type Event struct {
	Title   string
	Date    time.Time
	Chapter Chapter
}

type Chapter struct {
	Name string
}
