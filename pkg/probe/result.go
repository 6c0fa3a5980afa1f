package probe

// Status represents the outcome of a probe.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single probe.
type Result struct {
	Name    string // e.g., "shm: mbd-test-cpp", "encoding"
	Status  Status // OK or FAIL
	Message string // human-readable outcome; empty for probes that emit their own output
	Err     error  // underlying error for failures
}

// OK returns true if the probe passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
