package domain

// Push is one CI push as known to the job scheduler.
type Push struct {
	ID       int64  `json:"id"`
	Revision string `json:"revision"`
}

// JobRecord is one CI job with its named properties (platform, job
// symbol, result, ...). The upstream payload is columnar; records are
// rebuilt by zipping the shared property-name list against each row.
type JobRecord map[string]any

// JobPayload is the columnar job listing as returned upstream: one
// shared ordered property-name list plus one positional row per job.
type JobPayload struct {
	PropertyNames []string `json:"job_property_names"`
	Rows          [][]any  `json:"results"`
}

// PushResult bundles a push with its train-hop jobs.
type PushResult struct {
	Push Push        `json:"push"`
	Jobs []JobRecord `json:"jobs"`
}
