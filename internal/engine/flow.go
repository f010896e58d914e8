package engine

import "context"

// Completer is the part of Tracker a Flow needs.
type Completer interface {
	IsCompleted(a ActivityID) bool
	MarkActivityComplete(ctx context.Context, id string) (int, error)
}

// Flow steps through one guide. Index runs from 0 to Len(); Index() ==
// Len() is the finished state. There is no way back.
type Flow struct {
	guide   Guide
	tracker Completer
	index   int
}

func NewFlow(guide Guide, tracker Completer) *Flow {
	return &Flow{guide: guide, tracker: tracker}
}

// StartFlow builds a flow for a catalog activity.
func StartFlow(a ActivityID, tracker Completer) (*Flow, error) {
	g, ok := GuideFor(a)
	if !ok {
		return nil, UnknownActivityError{Input: string(a)}
	}
	return NewFlow(g, tracker), nil
}

func (f *Flow) Activity() ActivityID { return f.guide.Activity }
func (f *Flow) Title() string        { return f.guide.Title }
func (f *Flow) Index() int           { return f.index }
func (f *Flow) Len() int             { return len(f.guide.Steps) }
func (f *Flow) Finished() bool       { return f.index >= len(f.guide.Steps) }

// Step returns the current instruction; ok is false once finished.
func (f *Flow) Step() (string, bool) {
	if f.Finished() {
		return "", false
	}
	return f.guide.Steps[f.index], true
}

// Advance moves to the next step. Moving past the last step finishes the
// flow and marks the activity complete unless it already was; the points
// that earned are returned. If marking fails the flow stays on the last
// step so the caller can retry.
func (f *Flow) Advance(ctx context.Context) (int, error) {
	if f.Finished() {
		return 0, nil
	}
	if f.index+1 < len(f.guide.Steps) {
		f.index++
		return 0, nil
	}

	awarded := 0
	if !f.tracker.IsCompleted(f.guide.Activity) {
		n, err := f.tracker.MarkActivityComplete(ctx, string(f.guide.Activity))
		if err != nil {
			return 0, err
		}
		awarded = n
	}
	f.index = len(f.guide.Steps)
	return awarded, nil
}
