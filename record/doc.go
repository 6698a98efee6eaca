// Package record holds the review records that every lookup runs against.
//
// A [Record] is an open mapping from field name to value. Four string fields
// carry meaning for lookups (institution, department, supervisor and
// description); every other field is opaque and passes through untouched.
//
// A [Store] is built once, usually by [LoadFile], and never changes
// afterwards:
//
//	store, err := record.LoadFile("data/comments_data.json", record.LoadOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for r := range store.All() {
//	    fmt.Println(r.Supervisor())
//	}
//
// # Identity
//
// Two records are the same record when every field and value match.
// [Record.Fingerprint] reduces that identity to a string that does not depend
// on map iteration order, so callers can deduplicate with a plain set.
//
// # Thread Safety
//
// Store has no mutating methods and is safe for concurrent readers. Records
// yielded by a Store belong to it and must not be modified; use
// [Record.Clone] first.
package record
