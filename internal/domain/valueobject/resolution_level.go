package valueobject

// ResolutionLevel records which fallback level produced a rate entry.
type ResolutionLevel string

const (
	ResolutionExact         ResolutionLevel = "EXACT"
	ResolutionStateDefault  ResolutionLevel = "STATE_DEFAULT"
	ResolutionGlobalDefault ResolutionLevel = "GLOBAL_DEFAULT"
	ResolutionNone          ResolutionLevel = "NONE"
)

// String returns the symbolic name used on the wire.
func (r ResolutionLevel) String() string { return string(r) }
