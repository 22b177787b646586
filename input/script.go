package input

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ScriptStep is one scripted event, as written in a YAML input script:
//
//	- at: 250ms
//	  down: right
//	- at: 900ms
//	  up: right
//	- at: 1s
//	  quit: true
//
// Exactly one of Down, Up or Quit must be set.
type ScriptStep struct {
	At   string `yaml:"at"`
	Down string `yaml:"down,omitempty"`
	Up   string `yaml:"up,omitempty"`
	Quit bool   `yaml:"quit,omitempty"`
}

type timedEvent struct {
	at    time.Duration
	event Event
}

// Script replays a fixed list of events against a clock.
type Script struct {
	events []timedEvent
	next   int
}

// LoadScript reads a YAML input script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses a YAML input script. Steps are ordered by time; steps
// sharing a time keep their file order.
func ParseScript(data []byte) (*Script, error) {
	var steps []ScriptStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("input: parse script: %w", err)
	}

	s := &Script{events: make([]timedEvent, 0, len(steps))}
	for i, st := range steps {
		ev, err := st.event()
		if err != nil {
			return nil, fmt.Errorf("input: script step %d: %w", i, err)
		}
		at, err := time.ParseDuration(st.At)
		if err != nil {
			return nil, fmt.Errorf("input: script step %d: %w", i, err)
		}
		if at < 0 {
			return nil, fmt.Errorf("input: script step %d: negative time %v", i, at)
		}
		s.events = append(s.events, timedEvent{at: at, event: ev})
	}
	sort.SliceStable(s.events, func(i, j int) bool { return s.events[i].at < s.events[j].at })
	return s, nil
}

func (st ScriptStep) event() (Event, error) {
	set := 0
	if st.Down != "" {
		set++
	}
	if st.Up != "" {
		set++
	}
	if st.Quit {
		set++
	}
	if set != 1 {
		return Event{}, fmt.Errorf("want exactly one of down, up or quit, got %d", set)
	}

	switch {
	case st.Quit:
		return Quit(), nil
	case st.Down != "":
		k, err := ParseKey(st.Down)
		return Down(k), err
	default:
		k, err := ParseKey(st.Up)
		return Up(k), err
	}
}

// Due returns the events scheduled at or before now that have not been
// returned yet, in order.
func (s *Script) Due(now time.Duration) []Event {
	var out []Event
	for s.next < len(s.events) && s.events[s.next].at <= now {
		out = append(out, s.events[s.next].event)
		s.next++
	}
	return out
}

// Len returns the total number of scripted events.
func (s *Script) Len() int { return len(s.events) }

// Done reports whether every event has been returned by Due.
func (s *Script) Done() bool { return s.next >= len(s.events) }
