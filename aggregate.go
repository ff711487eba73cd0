package contactsift

import (
	"sort"
	"sync"
)

// Aggregator merges contact records across documents into one logical
// contact set. Colliding records (same kind and dedup key) keep the
// higher-confidence instance; on a tie the first-seen instance wins, so
// callers wanting reproducible output must supply documents in a fixed
// order.
//
// The Aggregator is the only stateful component of the engine; Add is
// serialized internally so concurrent producers may share one instance.
// It performs no re-validation: inputs are trusted to have passed an
// extractor's validation stage.
type Aggregator struct {
	mu      sync.Mutex
	byKey   map[string]ContactRecord
	seenSeq map[string]int
	seq     int
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		byKey:   make(map[string]ContactRecord),
		seenSeq: make(map[string]int),
	}
}

// Add merges records into the aggregate set.
func (a *Aggregator) Add(records ...ContactRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, rec := range records {
		key := string(rec.Kind) + "\x00" + rec.DedupKey()
		existing, ok := a.byKey[key]
		if !ok {
			a.seq++
			a.seenSeq[key] = a.seq
			a.byKey[key] = rec
			continue
		}
		if rec.Confidence > existing.Confidence {
			a.byKey[key] = rec
		}
	}
}

// AddResult merges all records of one extraction result.
func (a *Aggregator) AddResult(res *Result) {
	if res == nil {
		return
	}
	a.Add(res.Emails...)
	a.Add(res.Phones...)
	a.Add(res.Names...)
}

// Len returns the number of distinct records across all kinds.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.byKey)
}

// Emails returns the deduplicated email records, confidence descending.
func (a *Aggregator) Emails() []ContactRecord { return a.byKind(KindEmail) }

// Phones returns the deduplicated phone records, confidence descending.
func (a *Aggregator) Phones() []ContactRecord { return a.byKind(KindPhone) }

// Names returns the deduplicated name records, confidence descending.
func (a *Aggregator) Names() []ContactRecord { return a.byKind(KindName) }

// Result returns the whole aggregate as a Result.
func (a *Aggregator) Result() *Result {
	return &Result{
		Emails: a.Emails(),
		Phones: a.Phones(),
		Names:  a.Names(),
	}
}

func (a *Aggregator) byKind(kind Kind) []ContactRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	type entry struct {
		rec ContactRecord
		seq int
	}
	entries := make([]entry, 0, len(a.byKey))
	for key, rec := range a.byKey {
		if rec.Kind == kind {
			entries = append(entries, entry{rec: rec, seq: a.seenSeq[key]})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].rec.Confidence != entries[j].rec.Confidence {
			return entries[i].rec.Confidence > entries[j].rec.Confidence
		}
		return entries[i].seq < entries[j].seq
	})

	out := make([]ContactRecord, len(entries))
	for i, e := range entries {
		out[i] = e.rec
	}
	return out
}
