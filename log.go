package skema

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	pkgLogger.Store(&nop)
}

// SetLogger installs the logger used for engine debug events. The default
// discards everything.
func SetLogger(l zerolog.Logger) { pkgLogger.Store(&l) }

func logger() *zerolog.Logger { return pkgLogger.Load() }
