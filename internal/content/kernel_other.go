//go:build !unix

package content

import (
	"runtime"
)

func kernelRelease() (string, error) {
	return runtime.GOOS, nil
}
