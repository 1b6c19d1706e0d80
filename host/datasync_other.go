//go:build !linux

package host

// Fdatasync falls back to a full sync where fdatasync(2) is unavailable.
func (Local) Fdatasync(f File) error {
	return f.Sync()
}
