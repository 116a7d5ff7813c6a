package own

import "fmt"

// FaultCode identifies the kind of ownership contract violation.
type FaultCode int

// Stable fault codes - do not change values.
const (
	FaultOutOfBounds  FaultCode = 2001 // OWN2001: slot index out of bounds
	FaultNegativeSize FaultCode = 2002 // OWN2002: negative slot count
	FaultUnderflow    FaultCode = 2003 // OWN2003: reference count underflow
	FaultOverflow     FaultCode = 2004 // OWN2004: reference count overflow
)

// String returns the code as "OWN2001" format.
func (c FaultCode) String() string {
	return fmt.Sprintf("OWN%d", c)
}

// Fault represents a fatal contract violation. Faults are raised with
// panic and are not meant to be recovered from: they signal programmer
// errors, not runtime conditions.
type Fault struct {
	Code    FaultCode
	Message string
}

// Error implements the error interface.
func (f *Fault) Error() string {
	return fmt.Sprintf("fault %s: %s", f.Code, f.Message)
}

func fault(code FaultCode, format string, args ...any) {
	panic(&Fault{Code: code, Message: fmt.Sprintf(format, args...)})
}
