package catalog

import (
	"os"

	"github.com/gofrs/flock"
)

// Lock holds an exclusive advisory lock on a catalog file.
type Lock struct {
	lock *flock.Flock
}

// LockPath returns the path of the lock file guarding the catalog at path.
func LockPath(path string) string {
	return path + ".lock"
}

// Acquire takes the catalog lock without blocking. It returns ErrLocked when
// another process already holds it. The catalog must exist; no lock file is
// created for a missing one.
func Acquire(path string) (*Lock, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, wrap(ErrFileAccess, path, "stat catalog", err)
	}
	lockPath := LockPath(path)
	fl := flock.New(lockPath)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, wrap(ErrFileAccess, lockPath, "acquire lock", err)
	}
	if !ok {
		return nil, wrap(ErrLocked, lockPath, "another rewrite is in progress", nil)
	}
	return &Lock{lock: fl}, nil
}

// Release drops the lock. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
