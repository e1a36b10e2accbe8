package match

import (
	"fmt"
	"io"
	"slices"
)

// Actor is who caused an event.
type Actor string

const (
	ActorPlayer Actor = "player"
	ActorAgent  Actor = "agent"
	ActorMatch  Actor = "match"
)

// Category groups events by the part of the match they touch.
type Category string

const (
	CategoryScreen Category = "screen"
	CategoryClick  Category = "click"
	CategoryScore  Category = "score"
	CategoryExport Category = "export"
)

// Event keys within each category.
const (
	keyScreenChange = "change"
	keyStop         = "stop"
	keyExplore      = "explore"
	keyAgentScore   = "explored"
	keyVerdict      = "verdict"
	keyMazeText     = "maze_text"
)

// Entry is one recorded match event. Num carries the explored count for
// clicks and the score margin for the verdict.
type Entry struct {
	Tick     int
	Actor    Actor
	Category Category
	Key      string
	Value    string
	Num      float64
}

//	[T=0042] player click  explore (3,1)
func (e Entry) String() string {
	return fmt.Sprintf("[T=%04d] %-6s %-6s %s %s", e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// Tally summarises a match log in one pass.
type Tally struct {
	AgentExplored int
	Clicks        int
	ScreenChanges int
	Exports       int
	Verdict       string // empty until the goal is reached
	Margin        int    // player score minus agent score
	FinishTick    int    // -1 until the goal is reached
	StopReason    string // empty while the match runs
}

// EventLog is the in-memory record of one match. The match mirrors the
// important entries to logrus.
type EventLog struct {
	entries []Entry
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

func (el *EventLog) add(tick int, actor Actor, cat Category, key, value string, num float64) {
	el.entries = append(el.entries, Entry{
		Tick:     tick,
		Actor:    actor,
		Category: cat,
		Key:      key,
		Value:    value,
		Num:      num,
	})
}

// Len returns the number of entries.
func (el *EventLog) Len() int { return len(el.entries) }

// Entries returns a copy of the log in recording order.
func (el *EventLog) Entries() []Entry {
	return slices.Clone(el.entries)
}

// Tally folds the log into per-match counters.
func (el *EventLog) Tally() Tally {
	t := Tally{FinishTick: -1}
	for _, e := range el.entries {
		switch e.Category {
		case CategoryClick:
			t.Clicks++
		case CategoryExport:
			t.Exports++
		case CategoryScreen:
			switch e.Key {
			case keyScreenChange:
				t.ScreenChanges++
			case keyStop:
				t.StopReason = e.Value
			}
		case CategoryScore:
			switch e.Key {
			case keyAgentScore:
				t.AgentExplored = int(e.Num)
			case keyVerdict:
				t.Verdict = e.Value
				t.Margin = int(e.Num)
				t.FinishTick = e.Tick
			}
		}
	}
	return t
}

// WriteTo writes one line per entry.
func (el *EventLog) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range el.entries {
		n, err := fmt.Fprintln(w, e)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
