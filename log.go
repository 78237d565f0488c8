package geometrics

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs the logger used for debug events, such as the alignment
// of objects during merges. A nil logger disables logging, which is the
// default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("geometrics"))
}

// Logger returns the installed logger.
func Logger() *zap.Logger {
	return logger.Load()
}
