package probe

import "fmt"

// Fail sets the result to failed status with a message.
func (r *Result) Fail(message string, err error) Result {
	r.Status = StatusFail
	r.Message = message
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted message.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}
