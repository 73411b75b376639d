package process

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// IsRunning reports whether pid belongs to a live process other than
// the current one.
func IsRunning(pid int, self int) (bool, error) {
	if pid <= 0 || pid == self {
		return false, nil
	}

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find process: %w", err)
	}

	running, err := p.IsRunning()
	if err != nil {
		return false, fmt.Errorf("failed to check if process is running: %w", err)
	}
	return running, nil
}
