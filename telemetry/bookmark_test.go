package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_FeedingFrenzy(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Fish: 2, FoodEaten: 1, ChasesStarted: 1})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Fish: 2, FoodEaten: 6, ChasesStarted: 6})
	if !hasBookmark(bookmarks, BookmarkFeedingFrenzy) {
		t.Error("expected feeding_frenzy bookmark")
	}
}

func TestBookmarkDetector_FeedingFrenzyNeedsHistory(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bookmarks := bd.Check(WindowStats{Fish: 2, FoodEaten: 10})
	if hasBookmark(bookmarks, BookmarkFeedingFrenzy) {
		t.Error("frenzy reported without history")
	}
}

func TestBookmarkDetector_FoodPileUpOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	piled := WindowStats{Fish: 2, Food: 6}
	if !hasBookmark(bd.Check(piled), BookmarkFoodPileUp) {
		t.Fatal("expected food_pile_up bookmark")
	}
	if hasBookmark(bd.Check(piled), BookmarkFoodPileUp) {
		t.Error("pile-up reported twice without being cleared")
	}

	bd.Check(WindowStats{Fish: 2, Food: 0})
	if !hasBookmark(bd.Check(piled), BookmarkFoodPileUp) {
		t.Error("pile-up did not re-arm after food was cleared")
	}
}

func TestBookmarkDetector_PopulationBoom(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(WindowStats{Fish: 2})
	bd.Check(WindowStats{Fish: 4})
	bookmarks := bd.Check(WindowStats{Fish: 7})
	if !hasBookmark(bookmarks, BookmarkPopulationBoom) {
		t.Error("expected population_boom bookmark")
	}
	if hasBookmark(bd.Check(WindowStats{Fish: 8}), BookmarkPopulationBoom) {
		t.Error("boom reported again without a new low")
	}
}

func TestBookmarkDetector_CalmTank(t *testing.T) {
	bd := NewBookmarkDetector(10)

	var fired int
	for i := 0; i < calmWindows+3; i++ {
		if hasBookmark(bd.Check(WindowStats{Fish: 2}), BookmarkCalmTank) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("calm_tank fired %d times, want 1", fired)
	}

	// Feeding resets the streak
	bd.Check(WindowStats{Fish: 2, ChasesStarted: 1})
	for i := 0; i < calmWindows-1; i++ {
		if hasBookmark(bd.Check(WindowStats{Fish: 2}), BookmarkCalmTank) {
			t.Fatal("calm_tank fired before streak completed")
		}
	}
	if !hasBookmark(bd.Check(WindowStats{Fish: 2}), BookmarkCalmTank) {
		t.Error("calm_tank did not fire after a fresh streak")
	}
}
