package models

// TopologyRow is one link record from the topology planning CSV, keyed by
// column header. The base config generator adds the computed description
// columns to the row before rendering, so templates see one flat namespace.
type TopologyRow map[string]string
