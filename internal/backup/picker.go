package backup

import "context"

// PathPicker is a Picker with fixed answers, used where archive paths arrive
// as CLI arguments instead of a dialog. An empty path reads as "not chosen".
type PathPicker struct {
	Destination string
	Source      string
}

func (p PathPicker) ChooseDestination(ctx context.Context) (string, bool, error) {
	return p.Destination, p.Destination != "", nil
}

func (p PathPicker) ChooseSource(ctx context.Context) (string, bool, error) {
	return p.Source, p.Source != "", nil
}
