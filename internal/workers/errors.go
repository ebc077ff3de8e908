package workers

import "errors"

// ErrWorkerStopped is returned by Workers.Run when a worker exits while its
// context is still alive.
var ErrWorkerStopped = errors.New("worker stopped unexpectedly")
