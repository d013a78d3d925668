// Released under an MIT license. See LICENSE.

//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package process

import (
	"os"
	"runtime"
	"time"
)

//nolint:gochecknoglobals
var Platform = runtime.GOOS

// Getwd returns the current working directory.
func Getwd() (string, error) {
	return os.Getwd()
}

// Sleep pauses the calling goroutine for at least d.
func Sleep(d time.Duration) error {
	time.Sleep(d)

	return nil
}
