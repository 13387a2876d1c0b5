package sqlitec

/*
#include <stdlib.h>
*/
import "C"
import "unsafe"

// csqliteErrorLogTrampoline is invoked by SQLite once per internal error. The
// context pointer is always null; the registered Go function carries its own
// context as a closure.
//
//export csqliteErrorLogTrampoline
func csqliteErrorLogTrampoline(pArg unsafe.Pointer, iErrCode C.int, zMsg *C.char) {
	_ = pArg

	fn := errorLogSlot.Load()
	if fn == nil {
		return
	}
	fn(int(iErrCode), C.GoString(zMsg))
}
