package sorter
// Provides general-purpose functionality.

import (
  "runtime"

  "github.com/pbenner/threadpool"
)

var multithreaded bool = runtime.NumCPU() > 1


// GetMultiThreaded returns whether multithreading should be used for selected operations.
func GetMultiThreaded() bool {
  return multithreaded
}


// SetMultiThreaded sets whether multithreading should be used for selected operations.
func SetMultiThreaded(set bool) {
  multithreaded = set
}


// Used internally. Applies op to every group index in [0, numGroups). Groups are fully data
// independent, so they may be processed concurrently without changing observable results.
// Sorting a group is idempotent; on a pool error all groups are redone sequentially.
func processGroups(numGroups int, op func(int)) {
  if GetMultiThreaded() && numGroups > 1 {
    numThreads := runtime.NumCPU()
    pool := threadpool.New(numThreads, numGroups)
    g := pool.NewJobGroup()
    var err error = nil
    for idx := 0; idx < numGroups && err == nil; idx++ {
      i := idx
      err = pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
        op(i)
        return nil
      })
    }
    if err2 := pool.Wait(g); err == nil { err = err2 }
    if err == nil { return }
  }

  for idx := 0; idx < numGroups; idx++ {
    op(idx)
  }
}
