package gallery

import "fmt"

// SwipeThreshold is the horizontal displacement a finished drag has to exceed to turn the page.
const SwipeThreshold = 50

type Phase string

const (
	PhaseActive    Phase = "active"
	PhaseEnded     Phase = "ended"
	PhaseCancelled Phase = "cancelled"
)

type Command string

const (
	CommandNext     Command = "next"
	CommandPrevious Command = "previous"
	CommandNone     Command = ""
)

// Gesture is a single drag event. Negative displacement is a swipe to the left.
type Gesture struct {
	Displacement float64 `json:"displacement"`
	Phase        Phase   `json:"phase"`
}

// Carousel is the viewer position over Count photos.
// Index stays within [0, Count-1] when Count > 0 and is 0 otherwise.
type Carousel struct {
	Index int `json:"index"`
	Count int `json:"count"`
}

// NewCarousel starts at the first photo.
func NewCarousel(count int) Carousel {
	if count < 0 {
		count = 0
	}
	return Carousel{Index: 0, Count: count}
}

// Resume puts the viewer back at a previously reported index, clamped into range.
func Resume(index, count int) Carousel {
	c := NewCarousel(count)
	switch {
	case c.Count == 0 || index < 0:
		c.Index = 0
	case index > c.Count-1:
		c.Index = c.Count - 1
	default:
		c.Index = index
	}
	return c
}

// Next moves forward by one, saturating at the last photo.
func (c Carousel) Next() Carousel {
	if c.Index < c.Count-1 {
		c.Index++
	}
	return c
}

// Previous moves back by one, saturating at the first photo.
func (c Carousel) Previous() Carousel {
	if c.Index > 0 {
		c.Index--
	}
	return c
}

// Apply runs a navigation command. Unknown commands are ignored.
func (c Carousel) Apply(cmd Command) Carousel {
	switch cmd {
	case CommandNext:
		return c.Next()
	case CommandPrevious:
		return c.Previous()
	}
	return c
}

// Swipe maps a gesture to a transition: only an ended drag with |d| > SwipeThreshold moves.
func (c Carousel) Swipe(g Gesture) Carousel {
	return c.Apply(g.Command())
}

// Command reports which transition the gesture triggers, if any.
func (g Gesture) Command() Command {
	if g.Phase != PhaseEnded {
		return CommandNone
	}
	switch {
	case g.Displacement < -SwipeThreshold:
		return CommandNext
	case g.Displacement > SwipeThreshold:
		return CommandPrevious
	}
	return CommandNone
}

// Position is the "current/total" label, empty when there is nothing to show.
func (c Carousel) Position() string {
	if c.Count == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", c.Index+1, c.Count)
}

// Current returns the reference under the viewer.
func (c Carousel) Current(photos []string) (string, bool) {
	if c.Index < 0 || c.Index >= len(photos) {
		return "", false
	}
	return photos[c.Index], true
}
