// Package shared holds helpers for handling sensitive input.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it on passwords once they have been copied into a request.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
