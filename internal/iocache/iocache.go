// Package iocache is for caching I/O calls.
package iocache

import (
	"sync"

	"github.com/huangsam/plugtrend/internal/contract"
)

// CacheStoreManager manages CacheStore instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	revision     contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetRevisionStore returns the revision-record CacheStore.
func (mgr *CacheStoreManager) GetRevisionStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.revision
}
