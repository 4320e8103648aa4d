package payment

import "fmt"

type providerFailure struct {
	status    int
	code      string
	msg       string
	requestID string
}

func (f *providerFailure) Error() string {
	if f.code == "" {
		return fmt.Sprintf("status %d: %s (request %s)", f.status, f.msg, f.requestID)
	}
	return fmt.Sprintf("status %d %s: %s (request %s)", f.status, f.code, f.msg, f.requestID)
}
