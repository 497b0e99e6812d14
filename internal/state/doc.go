// Package state shares the latest fitted curve between the loader and the UI.
//
// The loader goroutine (file watcher or HTTP poller) calls Store.Update after
// every reload; the UI reads Store.Snapshot on its own tick. Both sides go
// through a sync.RWMutex and every read or write copies the series slices, so
// neither side can observe the other's mutations.
//
// A failed reload keeps the previous result and records the error:
//
//	store.Update(&result, nil) // replace data, clear error
//	store.Update(nil, err)     // keep data, record err, count the failure
//
// Snapshot.IsStale reports two or more consecutive failures. The zero Store
// is ready to use.
package state
