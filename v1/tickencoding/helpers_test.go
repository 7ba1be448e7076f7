package tickencoding

import (
	"errors"
	"fmt"
	"sync"
)

// digest is a fixed-length target type used across the tests.
type digest [4]byte

func (d *digest) Bytes() []byte { return d[:] }

func (d *digest) SetBytes(b []byte) error {
	if len(b) != len(d) {
		return fmt.Errorf("digest must be %d bytes, got %d", len(d), len(b))
	}
	copy(d[:], b)
	return nil
}

// recordingObserver collects every observed operation.
type recordingObserver struct {
	mu  sync.Mutex
	ops []OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, ctx)
}

func (r *recordingObserver) operations() []OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]OperationContext, len(r.ops))
	copy(out, r.ops)
	return out
}

// failingWriter rejects every write.
type failingWriter struct{}

var errStream = errors.New("stream closed")

func (failingWriter) WriteString(string) (int, error) { return 0, errStream }

func allByteValues() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
