// Package repositories implements persistence for the beer collection.
//
// Persistence is split in two layers:
//   - [KVStore] : a string key-value store, the local analogue of browser storage
//   - [BeerRepository] : loads and saves the whole collection as one JSON document under a fixed key
//
// Two stores are provided: [SQLiteStore], backed by the kv_store table created by the embedded migrations,
// and [MemoryStore], used by tests and by the "memory" driver.
//
// Ids are issued from a counter kept next to the collection (see [BeerRepository.LastID]), so an id is never
// handed out twice even after the newest beer has been deleted.
package repositories
