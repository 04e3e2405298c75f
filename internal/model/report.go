package model

import "time"

// Report represents the outcome of a batch classification run
type Report struct {
	RunID     string    `json:"run_id" yaml:"run_id"`         // Unique identifier of the run
	Source    string    `json:"source" yaml:"source"`         // Input file that was read
	Kind      string    `json:"kind" yaml:"kind"`             // "even" or "odd"
	StartedAt time.Time `json:"started_at" yaml:"started_at"` // When the run began
	Options   Options   `json:"options" yaml:"options"`       // Resolved options applied to every entry

	Totals  Totals  `json:"totals" yaml:"totals"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Totals summarises a run
type Totals struct {
	Inputs    int `json:"inputs" yaml:"inputs"`
	Matched   int `json:"matched" yaml:"matched"`       // Admitted and classified as the requested kind
	Unmatched int `json:"unmatched" yaml:"unmatched"`   // Admitted and classified as the other kind
	Rejected  int `json:"rejected" yaml:"rejected"`     // Suppressed firewall rejections
	Errored   int `json:"errored" yaml:"errored"`       // Firewall rejections returned as errors
	CacheHits int `json:"cache_hits" yaml:"cache_hits"` // Entries served from the verdict cache
}

// Entry is the verdict for one input line
type Entry struct {
	Line   int         `json:"line" yaml:"line"`                         // 1-based line number in the source
	Input  string      `json:"input" yaml:"input"`                       // Raw line text
	Result bool        `json:"result" yaml:"result"`                     // Boolean returned by the classifier
	Status EntryStatus `json:"status" yaml:"status"`                     // How the result was reached
	Gate   string      `json:"gate,omitempty" yaml:"gate,omitempty"`     // Failed firewall gate, if any
	Error  string      `json:"error,omitempty" yaml:"error,omitempty"`   // Error text when Status is "error"
	Path   string      `json:"path,omitempty" yaml:"path,omitempty"`     // Parity path: primary or fallback
	Cached bool        `json:"cached,omitempty" yaml:"cached,omitempty"` // Served from the verdict cache
}

// EntryStatus classifies how an entry was decided
type EntryStatus string

const (
	StatusClassified EntryStatus = "classified" // Passed every gate
	StatusRejected   EntryStatus = "rejected"   // Failed a gate, suppressed to false
	StatusError      EntryStatus = "error"      // Failed a gate with its throw flag set
)
