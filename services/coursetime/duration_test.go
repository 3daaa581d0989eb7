package coursetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, "00:00:00", Aggregate(nil))
	assert.Equal(t, "00:00:00", Aggregate([]string{}))
}

func TestAggregateSingleEpisode(t *testing.T) {
	assert.Equal(t, "00:01:30", Aggregate([]string{"01:30"}))
}

func TestAggregateTwoFieldEntries(t *testing.T) {
	assert.Equal(t, "00:30:00", Aggregate([]string{"10:00", "20:00"}))
}

func TestAggregateThreeFieldEntries(t *testing.T) {
	// "01:00:00" contributes 3601s (the hours value lands in the seconds
	// slot), "00:30:00" contributes 1800s; 5401s total.
	assert.Equal(t, "01:30:01", Aggregate([]string{"01:00:00", "00:30:00"}))
}

func TestAggregateMixedShapes(t *testing.T) {
	// 3601 + 90 = 3691s
	assert.Equal(t, "01:01:31", Aggregate([]string{"01:00:00", "01:30"}))
}

func TestAggregateMalformedEntriesContributeZero(t *testing.T) {
	assert.NotPanics(t, func() {
		got := Aggregate([]string{"junk", "", "1:2:3:4", "10:00"})
		assert.Equal(t, "00:10:00", got)
	})
}

func TestAggregateUnparsableComponentTreatedAsZero(t *testing.T) {
	// "xx:30" keeps its parsable seconds field.
	assert.Equal(t, "00:00:30", Aggregate([]string{"xx:30"}))
}

func TestAggregateHoursNotTruncated(t *testing.T) {
	// 120*3600 + 120 = 432120s -> 120 hours, 2 minutes.
	assert.Equal(t, "120:02:00", Aggregate([]string{"120:00:00"}))
}

func TestAggregateOrderIndependent(t *testing.T) {
	in := []string{"01:00:00", "45:10", "00:30:00", "05:05"}
	rev := []string{"05:05", "00:30:00", "45:10", "01:00:00"}
	assert.Equal(t, Aggregate(in), Aggregate(rev))
}
