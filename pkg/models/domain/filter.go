package domain

import "fmt"

// Window is a reporting time range in days.
type Window string

const (
	Window30  Window = "30"
	Window90  Window = "90"
	Window365 Window = "365"
)

// DefaultWindow is the canonical window the catalog base values are expressed in.
const DefaultWindow = Window90

var Windows = []Window{Window30, Window90, Window365}

func ParseWindow(s string) (Window, error) {
	for _, w := range Windows {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: unknown window %q", ErrInvalidSelection, s)
}

func (w Window) Label() string {
	switch w {
	case Window30:
		return "Last 30 Days"
	case Window90:
		return "Last 90 Days"
	case Window365:
		return "Last Year"
	}
	return string(w)
}

// FilterSelection is the raw pair of dashboard selector values.
type FilterSelection struct {
	Window   Window
	Category string // category key or AllCategories
}

func (s FilterSelection) String() string {
	return fmt.Sprintf("%s:%s", s.Window, s.Category)
}

// ResolvedFilter carries the numeric parameters derived from a FilterSelection.
type ResolvedFilter struct {
	Window          Window
	Category        string
	ScaleMultiplier float64
	CategoryKeys    []string
}

func (r ResolvedFilter) AllCategories() bool {
	return r.Category == AllCategories
}
