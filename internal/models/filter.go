package models

import "time"

// Window is the half-open interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Length() time.Duration {
	return w.To.Sub(w.From)
}

// Previous returns the window of equal length that ends where w starts.
func (w Window) Previous() Window {
	return Window{From: w.From.Add(-w.Length()), To: w.From}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Filter narrows the events an aggregation reads. It is validated once at the HTTP boundary;
// empty optional fields mean "no filter".
type Filter struct {
	Window       Window
	RestaurantID string
	DeviceType   DeviceType
	Source       string
}

// WithWindow returns a copy of f over another window with the same narrowing fields.
func (f Filter) WithWindow(w Window) Filter {
	f.Window = w
	return f
}
