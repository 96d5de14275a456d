package state

import "testing"

func TestTimelineSamplesBeforeFillPreservesOrder(t *testing.T) {
	tl := NewTimeline()
	tl.Record(TimelineSample{Time: 1})
	tl.Record(TimelineSample{Time: 2})
	tl.Record(TimelineSample{Time: 3})

	samples := tl.Samples()
	if len(samples) != 3 {
		t.Fatalf("len(Samples()) = %d, want 3", len(samples))
	}
	for i, want := range []uint64{1, 2, 3} {
		if samples[i].Time != want {
			t.Errorf("samples[%d].Time = %d, want %d", i, samples[i].Time, want)
		}
	}
}

func TestTimelineWrapsAfterCapacity(t *testing.T) {
	tl := NewTimeline()
	for i := uint64(1); i <= TimelineCapacity+5; i++ {
		tl.Record(TimelineSample{Time: i})
	}

	samples := tl.Samples()
	if len(samples) != TimelineCapacity {
		t.Fatalf("len(Samples()) = %d, want %d", len(samples), TimelineCapacity)
	}
	if samples[0].Time != 6 {
		t.Errorf("samples[0].Time = %d, want 6 (oldest retained)", samples[0].Time)
	}
	if samples[len(samples)-1].Time != TimelineCapacity+5 {
		t.Errorf("samples[last].Time = %d, want %d", samples[len(samples)-1].Time, TimelineCapacity+5)
	}
}
