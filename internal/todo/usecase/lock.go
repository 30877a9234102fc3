package usecase

import "sync"

// fileLocks hands out one mutex per list filename. Entries are never
// evicted; the number of lists is small and bounded by the directory.
type fileLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newFileLocks() *fileLocks {
	return &fileLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for filename and returns its release func.
func (f *fileLocks) lock(filename string) func() {
	f.mu.Lock()
	m, ok := f.locks[filename]
	if !ok {
		m = &sync.Mutex{}
		f.locks[filename] = m
	}
	f.mu.Unlock()

	m.Lock()
	return m.Unlock
}
