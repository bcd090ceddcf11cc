package testutil

import "io"

// MockByteSource implements a simple in-memory byte source for tests.
type MockByteSource struct {
	data []byte
}

// NewMockByteSource returns a byte source backed by the provided data.
func NewMockByteSource(data []byte) *MockByteSource {
	return &MockByteSource{data: data}
}

// ReadAt implements io.ReaderAt semantics over the backing slice.
func (m *MockByteSource) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if off+int64(n) >= int64(len(m.data)) {
		return n, io.EOF
	}
	return n, nil
}

// Size returns the total size of the backing data.
func (m *MockByteSource) Size() int64 {
	return int64(len(m.data))
}

// Bytes returns the backing slice for tests that need to mutate data.
func (m *MockByteSource) Bytes() []byte {
	return m.data
}

// Pattern generates n deterministic bytes as they would appear at file
// offset off. Two Pattern calls over overlapping offsets agree on the
// overlap, so stitched reconstructions can be checked against a single
// generator regardless of which fragments supplied which bytes.
func Pattern(off, n int64) []byte {
	out := make([]byte, n)
	for i := range out {
		p := off + int64(i)
		out[i] = byte(p*131 + 17)
	}
	return out
}
