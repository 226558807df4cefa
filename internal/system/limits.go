package system

import (
	"syscall"

	"go.uber.org/zap"
)

// RaiseFileLimit lifts the open-file soft limit so several headless browsers
// can run side by side. It never fails the caller.
func RaiseFileLimit(log *zap.Logger, want uint64) {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warn("could not read open-file limit", zap.Error(err))
		return
	}
	if rLimit.Cur >= want {
		return
	}

	rLimit.Cur = want
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warn("could not raise open-file limit", zap.Error(err))
		return
	}
	log.Info("open-file limit raised", zap.Uint64("limit", uint64(rLimit.Cur)))
}
