package domain

// Digest is the content address of an immutable file tree snapshot. The empty
// digest addresses the empty tree.
type Digest string

// IsZero reports whether the digest is unset.
func (d Digest) IsZero() bool {
	return d == ""
}

// String returns the hex form of the digest.
func (d Digest) String() string {
	return string(d)
}
