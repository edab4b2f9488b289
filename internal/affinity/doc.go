// Package affinity pins the calling OS thread to a single CPU, for
// stress-test harnesses that want H workers to actually run on H
// distinct cores rather than migrate under the Go scheduler.
package affinity
