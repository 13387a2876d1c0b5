package procutil

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreadCount(t *testing.T) {
	t.Run("AtLeastTheCallingThread", func(t *testing.T) {
		count := ThreadCount()

		if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
			assert.Equal(t, -1, count)
			return
		}

		// -1 is the documented sentinel when the kernel denies the query,
		// e.g. under a restrictive sandbox. Anything else must be a real
		// count.
		if count == -1 {
			t.Skip("kernel denied the thread enumeration")
		}
		assert.GreaterOrEqual(t, count, 1)
	})

	t.Run("GrowsWithBlockedThreads", func(t *testing.T) {
		if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
			t.Skip("no thread enumeration on this platform")
		}

		before := ThreadCount()
		if before == -1 {
			t.Skip("kernel denied the thread enumeration")
		}

		// Park goroutines on OS threads so the process thread count rises.
		const extra = 4
		release := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < extra; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				runtime.LockOSThread()
				<-release
			}()
		}

		after := ThreadCount()
		close(release)
		wg.Wait()

		assert.GreaterOrEqual(t, after, before)
	})
}
