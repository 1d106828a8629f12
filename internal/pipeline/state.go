package pipeline

// State is a step of one dashboard run:
// Idle -> Fetching -> Scoring -> Aggregating -> Aggregated -> Rendered,
// or Idle/Fetching -> NoData when nothing was found.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateScoring
	StateAggregating
	StateAggregated
	StateRendered
	StateNoData
)

var stateNames = map[State]string{
	StateIdle:        "idle",
	StateFetching:    "fetching",
	StateScoring:     "scoring",
	StateAggregating: "aggregating",
	StateAggregated:  "aggregated",
	StateRendered:    "rendered",
	StateNoData:      "no_data",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
