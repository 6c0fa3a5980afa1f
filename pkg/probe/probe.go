package probe

// Probe is implemented by all probe types.
// Each probe exercises one build-environment capability and returns a
// Result indicating success or failure. A probe never terminates the
// process; deciding what a failure means is the caller's job.
//
// Implementations:
//   - shmcheck.Check: verifies POSIX shared-memory object creation
//   - encodingcheck.Check: emits a fixed mixed-encoding byte stream
type Probe interface {
	Run() Result
}
