package tickencoding

// ByteView is implemented by values that can be read as a byte sequence.
// The returned slice is only borrowed for the duration of the call.
type ByteView interface {
	Bytes() []byte
}

// ByteSetter is implemented by values that can be rebuilt from bytes.
// SetBytes takes ownership of b. It must leave the receiver unchanged when it
// returns an error.
type ByteSetter interface {
	SetBytes(b []byte) error
}

// ByteConvertible constrains P to be a pointer to T that can both expose and
// accept bytes. It lets generic code allocate a T and fill it through P.
type ByteConvertible[T any] interface {
	*T
	ByteView
	ByteSetter
}

// encodedType marks the types whose JSON shape is the TickEncoded string.
type encodedType interface {
	tickEncoded()
}
