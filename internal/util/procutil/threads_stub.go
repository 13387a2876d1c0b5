//go:build !linux && !(darwin && cgo)

package procutil

// ThreadCount returns -1 on platforms without a supported kernel interface
// for enumerating the threads of the calling process.
func ThreadCount() int {
	return -1
}
