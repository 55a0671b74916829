package activities

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/UTD-JLA/collection/pkg/collection"
	"github.com/golang-module/carbon/v2"
)

var ErrInvalidTimezone = errors.New("invalid timezone")

type Grouping int

const (
	GroupByDay Grouping = iota
	GroupByMonth
)

func ParseGrouping(s string) (Grouping, error) {
	switch s {
	case "", "day":
		return GroupByDay, nil
	case "month":
		return GroupByMonth, nil
	}

	return GroupByDay, fmt.Errorf("unknown grouping %q", s)
}

// TotalsByDay sums durations per calendar day (YYYY-MM-DD) in timezone.
// Buckets are ordered chronologically.
func TotalsByDay(index *collection.Collection[uint64, *Activity], timezone string) (*collection.Collection[string, time.Duration], error) {
	return Totals(index, timezone, GroupByDay)
}

// TotalsByMonth sums durations per calendar month (YYYY-MM) in timezone.
func TotalsByMonth(index *collection.Collection[uint64, *Activity], timezone string) (*collection.Collection[string, time.Duration], error) {
	return Totals(index, timezone, GroupByMonth)
}

func Totals(index *collection.Collection[uint64, *Activity], timezone string, grouping Grouping) (*collection.Collection[string, time.Duration], error) {
	if timezone == "" {
		timezone = carbon.UTC
	}

	if now := carbon.Now(timezone); now.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidTimezone, timezone, now.Error.Error())
	}

	totals := collection.New[string, time.Duration]()
	var err error

	index.Each(func(a *Activity, _ uint64) {
		if err != nil {
			return
		}

		c := carbon.CreateFromTimestamp(a.Date.Unix(), timezone)

		if c.Error != nil {
			err = fmt.Errorf("%w: %s: %s", ErrInvalidTimezone, timezone, c.Error.Error())
			return
		}

		bucket := c.ToDateString()
		if grouping == GroupByMonth {
			bucket = c.Format("Y-m")
		}

		current, _ := totals.Get(bucket)
		totals.Set(bucket, current+a.Duration)
	})

	if err != nil {
		return nil, err
	}

	totals.Sort(func(_, _ time.Duration, a, b string) int {
		return cmp.Compare(a, b)
	})

	return totals, nil
}

// Summary holds chart figures for a set of buckets. Highest is empty when
// there are no buckets.
type Summary struct {
	Total        time.Duration
	Average      time.Duration
	Highest      string
	HighestTotal time.Duration
	Top          []collection.Entry[string, time.Duration]
}

// Summarize computes the totals shown on an activity chart, plus the top
// buckets by duration. A negative top keeps every bucket.
func Summarize(totals *collection.Collection[string, time.Duration], top int) Summary {
	var s Summary

	total, err := totals.Reduce(func(acc, d time.Duration, _ string) time.Duration {
		return acc + d
	})

	if errors.Is(err, collection.ErrEmptyReduction) {
		return s
	}

	s.Total = total
	s.Average = total / time.Duration(totals.Len())

	ranked := totals.Sorted(func(a, b time.Duration, _, _ string) int {
		return cmp.Compare(b, a)
	})

	s.Highest, _ = ranked.FirstKey()
	s.HighestTotal, _ = ranked.First()

	if top < 0 {
		top = ranked.Len()
	}

	keys, durations := ranked.FirstKeyN(top), ranked.FirstN(top)
	s.Top = make([]collection.Entry[string, time.Duration], len(keys))

	for i := range keys {
		s.Top[i] = collection.Entry[string, time.Duration]{Key: keys[i], Value: durations[i]}
	}

	return s
}

// ChartSeries flattens buckets into parallel label and minute slices, in
// bucket order.
func ChartSeries(totals collection.OrderedMap[string, time.Duration]) (labels []string, minutes []float64) {
	labels = totals.Keys()
	minutes = make([]float64, 0, totals.Len())

	for _, k := range labels {
		v, _ := totals.Get(k)
		minutes = append(minutes, v.Minutes())
	}

	return labels, minutes
}
