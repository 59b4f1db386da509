package logger

// nopWriter swallows the flag set help output
type nopWriter struct{}

func newNopWriter() nopWriter {
	return nopWriter{}
}

func (nopWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
