package gallery_test

import (
	"testing"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/gallery"
	"github.com/stretchr/testify/require"
)

func TestCarousel_Next(t *testing.T) {
	c := gallery.NewCarousel(3)
	require.Equal(t, 0, c.Index)
	c = c.Next()
	require.Equal(t, 1, c.Index)
	c = c.Next()
	require.Equal(t, 2, c.Index)
	c = c.Next()
	require.Equal(t, 2, c.Index)
}
func TestCarousel_Previous(t *testing.T) {
	c := gallery.Resume(2, 3)
	c = c.Previous().Previous()
	require.Equal(t, 0, c.Index)
	c = c.Previous()
	require.Equal(t, 0, c.Index)
}
func TestCarousel_Empty(t *testing.T) {
	c := gallery.NewCarousel(0)
	require.Equal(t, gallery.Carousel{}, c.Next())
	require.Equal(t, gallery.Carousel{}, c.Previous())
	require.Equal(t, "", c.Position())
	_, ok := c.Current(nil)
	require.False(t, ok)
}
func TestCarousel_StaysInRange(t *testing.T) {
	cmds := []gallery.Command{
		gallery.CommandNext, gallery.CommandNext, gallery.CommandPrevious, gallery.CommandNext,
		gallery.CommandNext, gallery.CommandNext, gallery.CommandNext, gallery.CommandPrevious,
		gallery.CommandPrevious, gallery.CommandPrevious, gallery.CommandPrevious, gallery.CommandPrevious,
	}
	for count := 1; count <= gallery.MaxPhotos; count++ {
		c := gallery.NewCarousel(count)
		for _, cmd := range cmds {
			c = c.Apply(cmd)
			require.GreaterOrEqual(t, c.Index, 0)
			require.LessOrEqual(t, c.Index, count-1)
		}
	}
}
func TestCarousel_Swipe(t *testing.T) {
	tests := []struct {
		testname string
		start    gallery.Carousel
		gesture  gallery.Gesture
		expected int
	}{
		{
			testname: "LeftSwipeNext",
			start:    gallery.Resume(1, 3),
			gesture:  gallery.Gesture{Displacement: -80, Phase: gallery.PhaseEnded},
			expected: 2,
		},
		{
			testname: "RightSwipePrevious",
			start:    gallery.Resume(1, 3),
			gesture:  gallery.Gesture{Displacement: 80, Phase: gallery.PhaseEnded},
			expected: 0,
		},
		{
			testname: "ShortLeftSwipeNext",
			start:    gallery.Resume(0, 3),
			gesture:  gallery.Gesture{Displacement: -60, Phase: gallery.PhaseEnded},
			expected: 1,
		},
		{
			testname: "ShortRightSwipeIgnored",
			start:    gallery.Resume(1, 3),
			gesture:  gallery.Gesture{Displacement: 40, Phase: gallery.PhaseEnded},
			expected: 1,
		},
		{
			testname: "ExactlyThresholdLeft",
			start:    gallery.Resume(1, 3),
			gesture:  gallery.Gesture{Displacement: -50, Phase: gallery.PhaseEnded},
			expected: 1,
		},
		{
			testname: "ExactlyThresholdRight",
			start:    gallery.Resume(1, 3),
			gesture:  gallery.Gesture{Displacement: 50, Phase: gallery.PhaseEnded},
			expected: 1,
		},
		{
			testname: "ActivePhase",
			start:    gallery.Resume(1, 3),
			gesture:  gallery.Gesture{Displacement: -200, Phase: gallery.PhaseActive},
			expected: 1,
		},
		{
			testname: "CancelledPhase",
			start:    gallery.Resume(1, 3),
			gesture:  gallery.Gesture{Displacement: 200, Phase: gallery.PhaseCancelled},
			expected: 1,
		},
		{
			testname: "LeftSwipeAtEnd",
			start:    gallery.Resume(2, 3),
			gesture:  gallery.Gesture{Displacement: -120, Phase: gallery.PhaseEnded},
			expected: 2,
		},
		{
			testname: "RightSwipeAtStart",
			start:    gallery.NewCarousel(3),
			gesture:  gallery.Gesture{Displacement: 51, Phase: gallery.PhaseEnded},
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			result := tt.start.Swipe(tt.gesture)
			require.Equal(t, tt.expected, result.Index)
			require.Equal(t, tt.start.Count, result.Count)
		})
	}
}
func TestResume_Clamps(t *testing.T) {
	require.Equal(t, 2, gallery.Resume(9, 3).Index)
	require.Equal(t, 0, gallery.Resume(-4, 3).Index)
	require.Equal(t, 0, gallery.Resume(2, 0).Index)
	require.Equal(t, 1, gallery.Resume(1, 3).Index)
}
func TestCarousel_PositionAndCurrent(t *testing.T) {
	photos := []string{"a", "b", "c"}
	c := gallery.NewCarousel(len(photos)).Next()
	require.Equal(t, "2/3", c.Position())
	ref, ok := c.Current(photos)
	require.True(t, ok)
	require.Equal(t, "b", ref)
}
