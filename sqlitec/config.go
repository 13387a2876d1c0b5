package sqlitec

/*
#include <sqlite3.h>

extern void csqliteErrorLogTrampoline(void *pArg, int iErrCode, char *zMsg);

// sqlite3_config() is variadic and cannot be called from cgo. This helper
// fixes the argument list at exactly what SQLITE_CONFIG_LOG takes: the
// callback and a null context pointer.
static int csqlite_config_error_log(int enable) {
	if (enable) {
		return sqlite3_config(SQLITE_CONFIG_LOG, csqliteErrorLogTrampoline, (void *)0);
	}
	return sqlite3_config(SQLITE_CONFIG_LOG, (void *)0, (void *)0);
}
*/
import "C"

import (
	"github.com/nsqlite/csqlite/internal/util/syncutil"
)

// ErrorLogFunc receives one internal SQLite error: the result code and the
// engine's diagnostic message.
//
// https://www.sqlite.org/errlog.html
type ErrorLogFunc func(code int, msg string)

// errorLogSlot holds the single process-wide error log sink. Last
// registration wins; concurrent registration is not serialized beyond the
// atomic swap, matching the guarantee of sqlite3_config itself.
var errorLogSlot = syncutil.NewAtomic[ErrorLogFunc](nil)

// ConfigErrorLog installs fn as the process-wide error log callback of the
// SQLite library. Passing nil unregisters the callback. SQLite only accepts
// this configuration before the library is initialized, so call it once at
// process start, before any connection is opened; afterwards the engine
// reports SQLITE_MISUSE, returned here as *Error.
//
// https://www.sqlite.org/c3ref/config.html
func ConfigErrorLog(fn ErrorLogFunc) error {
	var enable C.int
	if fn != nil {
		enable = 1
	}

	resCode := C.csqlite_config_error_log(enable)
	if resCode != SQLITE_OK {
		return &Error{
			Code:    int(resCode),
			Message: "sqlite3_config(SQLITE_CONFIG_LOG) must run before the library is initialized",
		}
	}

	errorLogSlot.Store(fn)
	return nil
}
