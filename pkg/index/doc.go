// Package index stores versions under their encoded keys so that range
// queries return versions in version order.
//
// Every member is stored as key + "|" + version. Keys have a fixed width, so
// plain lexicographic order over members is version order, and versions that
// share a key (for example "1.2" and "1.2.0" at three segments) are kept side
// by side rather than overwriting each other.
//
// Two backends implement Index:
//
//   - Memory: a sorted slice guarded by a sync.RWMutex.
//   - Redis: a sorted set where every member has score 0, queried with
//     ZRANGEBYLEX.
//
// NewFromEnv selects the backend from VERKEY_INDEX (memory or redis):
//
//	idx, err := index.NewFromEnv(ctx)
//	if err != nil {
//		return err
//	}
//	defer idx.Close()
//
//	if _, err := idx.Put(ctx, "1.10.0"); err != nil {
//		return err
//	}
//	entries, err := idx.Range(ctx, "1.2", "2.0", 0)
//
// Export copies an index into a KeySet document (kind KeySet, see package
// header) and Import loads one back, refusing documents encoded with a
// different segment count.
package index
