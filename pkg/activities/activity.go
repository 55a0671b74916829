package activities

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"time"

	"github.com/UTD-JLA/collection/pkg/collection"
)

const (
	ActivityImmersionTypeReading   = "reading"
	ActivityImmersionTypeListening = "listening"
)

const (
	ActivityMediaTypeManga       = "manga"
	ActivityMediaTypeAnime       = "anime"
	ActivityMediaTypeVideo       = "video"
	ActivityMediaTypeBook        = "book"
	ActivityMediaTypeVisualNovel = "visual_novel"
)

type Activity struct {
	ID          uint64        `json:"id"`
	UserID      string        `json:"user_id"`
	GuildID     *string       `json:"guild_id"`
	Name        string        `json:"name"`
	PrimaryType string        `json:"primary_type"`
	MediaType   *string       `json:"media_type"`
	Duration    time.Duration `json:"duration"`
	Date        time.Time     `json:"date"`
	Meta        interface{}   `json:"meta"`
	CreatedAt   time.Time     `json:"created_at"`
	DeletedAt   *time.Time    `json:"deleted_at"`
}

func ReadJSONL(r io.Reader) (as []*Activity, err error) {
	decoder := json.NewDecoder(r)

	for decoder.More() {
		a := &Activity{}
		if err = decoder.Decode(&a); err != nil {
			return
		}
		as = append(as, a)
	}

	return
}

func ReadCompressedJSONL(r io.Reader) (activitySlice []*Activity, err error) {
	if r, err = gzip.NewReader(r); err != nil {
		return
	}
	defer r.(*gzip.Reader).Close()

	activitySlice, err = ReadJSONL(r)
	return
}

// Index keys the live (not soft-deleted) activities by ID, in export order.
// A repeated ID keeps the last record.
func Index(as []*Activity) *collection.Collection[uint64, *Activity] {
	index := collection.NewWithCapacity[uint64, *Activity](len(as))

	for _, a := range as {
		index.Set(a.ID, a)
	}

	index.Sweep(func(a *Activity, _ uint64) bool {
		return a.DeletedAt != nil
	})

	return index
}

// SplitByImmersionType separates reading activities from everything else.
func SplitByImmersionType(index *collection.Collection[uint64, *Activity]) (reading, listening *collection.Collection[uint64, *Activity]) {
	return index.Partition(func(a *Activity, _ uint64) bool {
		return a.PrimaryType == ActivityImmersionTypeReading
	})
}
