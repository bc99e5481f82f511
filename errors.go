package h2m

import "fmt"

// NullNodeError is the one fatal condition the core recognizes: a nil AST
// node where the AST provider's contract guarantees a non-nil one (§7
// Error Handling Design, §5 Cancellation/timeouts). It is always reported,
// unconditionally of silent/quiet, but is never a process abort —
// translation of the offending declaration is abandoned and the driver
// continues with the next one.
type NullNodeError struct {
	Context string // what was being rendered when the nil node was found
}

func (e NullNodeError) Error() string {
	return fmt.Sprintf("internal error: nil expression node in %s", e.Context)
}

func isNullNodeError(err error) bool {
	_, ok := err.(NullNodeError)
	return ok
}
