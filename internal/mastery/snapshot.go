package mastery

import (
	"time"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/store"
)

// snapshotVersion is written into every saved snapshot.
const snapshotVersion = 1

// Snapshot converts the tracker's records into their serialized form.
func (t *Tracker) Snapshot() *store.MasterySnapshot {
	snap := &store.MasterySnapshot{
		Version: snapshotVersion,
		Records: make(map[string]*store.MasteryRecordData, len(t.records)),
	}
	for id, rec := range t.records {
		data := &store.MasteryRecordData{
			TimesAnswered:  rec.TimesAnswered,
			CorrectCount:   rec.CorrectCount,
			IncorrectCount: rec.IncorrectCount,
			AvgResponseMs:  rec.AvgResponseMs,
			LastSelected:   rec.LastSelected,
			LastCorrect:    rec.LastCorrect,
		}
		if !rec.LastAnsweredAt.IsZero() {
			data.LastAnsweredAt = rec.LastAnsweredAt.UTC().Format(time.RFC3339)
		}
		snap.Records[string(id)] = data
	}
	return snap
}

// loadSnapshot restores records from their serialized form. Records that
// violate the correct+incorrect = times-answered invariant are skipped
// rather than trusted.
func (t *Tracker) loadSnapshot(snap *store.MasterySnapshot) {
	if snap == nil || snap.Records == nil {
		return
	}
	for id, data := range snap.Records {
		if data == nil || data.CorrectCount+data.IncorrectCount != data.TimesAnswered {
			continue
		}
		rec := &Record{
			ItemID:         content.ItemID(id),
			TimesAnswered:  data.TimesAnswered,
			CorrectCount:   data.CorrectCount,
			IncorrectCount: data.IncorrectCount,
			AvgResponseMs:  data.AvgResponseMs,
			LastSelected:   data.LastSelected,
			LastCorrect:    data.LastCorrect,
		}
		if data.LastAnsweredAt != "" {
			if ts, err := time.Parse(time.RFC3339, data.LastAnsweredAt); err == nil {
				rec.LastAnsweredAt = ts
			}
		}
		t.records[content.ItemID(id)] = rec
	}
}
