package notify

// Service method names for net/rpc clients.
const (
	NotifyMethod = "Widget.Notify"
	StateMethod  = "Widget.State"
	ClearMethod  = "Widget.Clear"
)

// NotifyRequest injects cells into a running widget. Source is a free-form
// label that shows up in the widget's logs. Pattern optionally names a
// stencil from the pattern table; when empty the bottom rows are reseeded
// instead. Rows overrides how many rows that reseed touches, zero meaning
// the widget's configured count.
type NotifyRequest struct {
	Source  string
	Pattern string
	Rows    int
}

// NotifyResponse reports whether the request was queued, plus the counters
// published by the widget at the time of the call.
type NotifyResponse struct {
	Accepted   bool
	Alive      int64
	Generation int64
}

type StateRequest struct{}

type StateResponse struct {
	Alive      int64
	Generation int64
	Width      int
	Height     int
}

type ClearRequest struct {
	Source string
}

type ClearResponse struct {
	Accepted bool
}
