package worker

import "errors"

var (
	ErrNoResponse    = errors.New("worker: no response available")
	ErrInstallFailed = errors.New("worker: install failed")
	ErrAssetStatus   = errors.New("worker: asset fetch returned non-2xx status")
	ErrInvalidState  = errors.New("worker: invalid lifecycle transition")
	ErrNothingToRun  = errors.New("worker: no waiting worker")
	ErrForeignOrigin = errors.New("worker: request names a host other than the origin")
)
