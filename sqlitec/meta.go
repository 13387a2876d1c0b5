package sqlitec

/*
#include <sqlite3.h>
#include <stdlib.h>
*/
import "C"
import "unsafe"

// Version returns the version string of the linked SQLite library.
//
// https://www.sqlite.org/c3ref/libversion.html
func Version() string {
	return C.GoString(C.sqlite3_libversion())
}

// VersionNumber returns the version of the linked SQLite library as a single
// integer, e.g. 3046001 for 3.46.1.
//
// https://www.sqlite.org/c3ref/c_source_id.html
func VersionNumber() int {
	return int(C.sqlite3_libversion_number())
}

// CompileOptionUsed reports whether the linked SQLite library was compiled
// with the given option. The SQLITE_ prefix may be omitted.
//
// https://www.sqlite.org/c3ref/compileoption_get.html
func CompileOptionUsed(option string) bool {
	cOption := C.CString(option)
	defer C.free(unsafe.Pointer(cOption))

	return C.sqlite3_compileoption_used(cOption) != 0
}
