//go:build linux && !tinygo

package affinity

import "golang.org/x/sys/unix"

// Set binds the calling thread to cpu. The caller must have already
// called runtime.LockOSThread — Set only affects whichever OS thread
// is currently executing the goroutine. Errors are ignored: pinning is
// a best-effort test aid, and an unpinnable CPU (offline, or outside
// the cgroup's cpuset) just leaves the thread wherever the scheduler
// put it.
func Set(cpu int) {
	if cpu < 0 {
		return
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	_ = unix.SchedSetaffinity(0, &set)
}
