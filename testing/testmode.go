// Package testing flips the application into test mode when blank-imported
// from a test file, so package init code skips runtime side effects.
package testing

import (
	"os"
	"sync"
	stdtesting "testing"

	"github.com/skillsenhance/skillsenhance/internal/app"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("SKILLSENHANCE_TEST_MODE", "1")
		// The flag may already be cached if another init ran first.
		app.RefreshTestMode()
	})
}

func init() {
	ensureTestMode()
}

func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
