package sqlitec

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capturedErrorLog collects every error log callback invocation of the test
// process. The callback has to be registered in TestMain because SQLite only
// accepts SQLITE_CONFIG_LOG before the library is initialized.
var capturedErrorLog = struct {
	sync.Mutex
	entries []capturedLogEntry
}{}

type capturedLogEntry struct {
	code int
	msg  string
}

func TestMain(m *testing.M) {
	if err := ConfigErrorLog(func(code int, msg string) {
		capturedErrorLog.Lock()
		defer capturedErrorLog.Unlock()
		capturedErrorLog.entries = append(capturedErrorLog.entries, capturedLogEntry{code: code, msg: msg})
	}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func TestErrorLog(t *testing.T) {
	t.Run("CallbackReceivesEngineErrors", func(t *testing.T) {
		conn, err := Open(":memory:")
		assert.NoError(t, err)
		defer conn.Close()

		capturedErrorLog.Lock()
		before := len(capturedErrorLog.entries)
		capturedErrorLog.Unlock()

		_, err = conn.Prepare("SELECT * FROM a_table_that_does_not_exist")
		assert.Error(t, err)

		capturedErrorLog.Lock()
		defer capturedErrorLog.Unlock()
		assert.Greater(t, len(capturedErrorLog.entries), before)

		last := capturedErrorLog.entries[len(capturedErrorLog.entries)-1]
		assert.NotZero(t, last.code)
		assert.NotEmpty(t, last.msg)
	})

	t.Run("ReconfigureAfterInitializeIsMisuse", func(t *testing.T) {
		// The connection opened above initialized the library, so SQLite now
		// rejects the configuration call and the code passes through.
		err := ConfigErrorLog(nil)
		assert.Error(t, err)

		var sqliteErr *Error
		assert.True(t, errors.As(err, &sqliteErr))
		assert.Equal(t, SQLITE_MISUSE, sqliteErr.Code)
	})
}
