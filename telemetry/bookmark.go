package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFeedingFrenzy  BookmarkType = "feeding_frenzy"
	BookmarkFoodPileUp     BookmarkType = "food_pile_up"
	BookmarkPopulationBoom BookmarkType = "population_boom"
	BookmarkCalmTank       BookmarkType = "calm_tank"
)

// calmWindows is how many quiet windows in a row make a calm tank.
const calmWindows = 5

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the tank.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentFishMin int  // minimum fish count since the last boom
	pileUp        bool // a pile-up is in progress
	calmCount     int  // consecutive quiet windows
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < calmWindows {
		historySize = calmWindows
	}
	return &BookmarkDetector{
		history:       make([]WindowStats, historySize),
		historySize:   historySize,
		recentFishMin: -1,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFeedingFrenzy(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkFoodPileUp(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkPopulationBoom(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkCalmTank(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	if bd.recentFishMin < 0 || stats.Fish < bd.recentFishMin {
		bd.recentFishMin = stats.Fish
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkFeedingFrenzy fires when more than twice the usual food is eaten.
func (bd *BookmarkDetector) checkFeedingFrenzy(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.FoodEaten
	}
	avg := float64(total) / float64(len(history))

	if stats.FoodEaten >= 3 && float64(stats.FoodEaten) > avg*2.0 {
		return &Bookmark{
			Type:        BookmarkFeedingFrenzy,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d pellets eaten vs %.1f average", stats.FoodEaten, avg),
		}
	}
	return nil
}

// checkFoodPileUp fires once when uneaten food outnumbers the fish two to one,
// and re-arms after the pile is cleared.
func (bd *BookmarkDetector) checkFoodPileUp(stats WindowStats) *Bookmark {
	piled := stats.Food >= 5 && stats.Food >= 2*max(stats.Fish, 1)
	if !piled {
		if stats.Food == 0 {
			bd.pileUp = false
		}
		return nil
	}
	if bd.pileUp {
		return nil
	}
	bd.pileUp = true
	return &Bookmark{
		Type:        BookmarkFoodPileUp,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d uneaten pellets for %d fish", stats.Food, stats.Fish),
	}
}

// checkPopulationBoom fires when the fish count triples from its recent low.
func (bd *BookmarkDetector) checkPopulationBoom(stats WindowStats) *Bookmark {
	if bd.recentFishMin < 1 {
		return nil
	}
	if stats.Fish < bd.recentFishMin*3 || stats.Fish < 6 {
		return nil
	}
	oldMin := bd.recentFishMin
	bd.recentFishMin = stats.Fish
	return &Bookmark{
		Type:        BookmarkPopulationBoom,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Fish population grew from %d to %d", oldMin, stats.Fish),
	}
}

// checkCalmTank fires after several windows with fish but no feeding.
func (bd *BookmarkDetector) checkCalmTank(stats WindowStats) *Bookmark {
	if stats.Fish == 0 || stats.Food > 0 || stats.ChasesStarted > 0 {
		bd.calmCount = 0
		return nil
	}
	bd.calmCount++
	if bd.calmCount != calmWindows {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkCalmTank,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d fish idle for %d windows", stats.Fish, calmWindows),
	}
}
