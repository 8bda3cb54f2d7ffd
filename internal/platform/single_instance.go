package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minInstancePort = 20000
	maxInstancePort = 39999
)

// InstanceGuard holds the single-instance lock.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds a localhost port derived from appName. A second
// caller with the same name gets ErrAlreadyRunning until Release.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", instancePort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

func instancePort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxInstancePort - minInstancePort + 1
	return minInstancePort + int(hash.Sum32()%uint32(rangeSize))
}
