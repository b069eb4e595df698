package domain

// RouteAdvisory is one caller-supplied heuristic warning: a carrier
// (or any carrier, when Carrier is empty) flying a specific route is
// annotated with the warning text. The table of these is assembled by
// an external collaborator and only read by the core.
type RouteAdvisory struct {
	Carrier     string
	Origin      string
	Destination string
	Warning     string
}
