package tickencoding

import "time"

// Operation names reported to an Observer.
const (
	OperationEncode = "encode"
	OperationDecode = "decode"
)

// OperationContext describes one encode or decode call.
type OperationContext struct {
	// Operation is OperationEncode or OperationDecode.
	Operation string

	// Size is the length of the raw byte sequence: the input of an encode,
	// the output of a successful decode, or zero for a failed decode.
	Size int

	// TextSize is the length of the encoded text.
	TextSize int

	Duration time.Duration

	// Error is nil for successful calls.
	Error error
}

// Observer receives a notification after every Codec operation.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}

func (c Codec) observe(op string, size, textSize int, start time.Time, err error) {
	if c.Observer == nil {
		return
	}
	c.Observer.ObserveOperation(OperationContext{
		Operation: op,
		Size:      size,
		TextSize:  textSize,
		Duration:  time.Since(start),
		Error:     err,
	})
}
