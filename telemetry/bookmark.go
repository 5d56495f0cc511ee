package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkBirthBurst       BookmarkType = "birth_burst"
	BookmarkFightBurst       BookmarkType = "fight_burst"
	BookmarkPopulationCrash  BookmarkType = "population_crash"
	BookmarkRecovery         BookmarkType = "recovery"
	BookmarkStablePopulation BookmarkType = "stable_population"
	BookmarkExtinction       BookmarkType = "extinction"
)

// Detection thresholds
const (
	burstFactor     = 2.0  // window count over rolling mean
	minBurst        = 5    // ignore bursts of a handful of events
	crashDrop       = 0.30 // fraction lost from the recent peak
	minCrash        = 10   // organisms lost from the recent peak
	lowWater        = 3    // population counted as nearly extinct
	recoveryFactor  = 3
	minRecovery     = 6
	stableWindows   = 5    // consecutive calm windows before reporting
	stableLookback  = 4    // windows in the variation estimate
	stableMaxCV     = 0.2  // coefficient of variation of the population
	minStableAlive  = 10
	minBookmarkHist = 3
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType
	Tick        uint64
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector watches flushed windows for notable population events.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentMin          int  // lowest population since the last recovery
	recentPeak         int  // highest population since the last crash
	stableWindowsCount int  // consecutive windows with a steady population
	extinct            bool // extinction already reported
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < stableWindows {
		historySize = stableWindows
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		recentMin:   -1,
	}
}

// Check analyzes the latest window and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if stats.Alive == 0 {
		if !bd.extinct {
			bd.extinct = true
			bookmarks = append(bookmarks, Bookmark{
				Type:        BookmarkExtinction,
				Tick:        stats.WindowEndTick,
				Description: fmt.Sprintf("Population extinct after %d deaths in the last window", stats.Deaths),
			})
		}
		bd.addToHistory(stats)
		return bookmarks
	}

	checks := []func(WindowStats) *Bookmark{
		bd.checkBirthBurst,
		bd.checkFightBurst,
		bd.checkCrash,
		bd.checkRecovery,
		bd.checkStable,
	}
	for _, check := range checks {
		if b := check(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)
	if bd.recentMin < 0 || stats.Alive < bd.recentMin {
		bd.recentMin = stats.Alive
	}
	if stats.Alive > bd.recentPeak {
		bd.recentPeak = stats.Alive
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

// getHistory returns the recorded windows, oldest first.
func (bd *BookmarkDetector) getHistory() []WindowStats {
	if !bd.historyFull {
		return bd.history[:bd.historyIdx]
	}
	out := make([]WindowStats, 0, bd.historySize)
	out = append(out, bd.history[bd.historyIdx:]...)
	return append(out, bd.history[:bd.historyIdx]...)
}

// checkBurst reports a window whose event count is well above the rolling mean.
func (bd *BookmarkDetector) checkBurst(stats WindowStats, kind BookmarkType, noun string, count func(WindowStats) int) *Bookmark {
	history := bd.getHistory()
	if len(history) < minBookmarkHist {
		return nil
	}
	var total int
	for _, h := range history {
		total += count(h)
	}
	avg := float64(total) / float64(len(history))
	n := count(stats)
	if avg == 0 || n < minBurst || float64(n) <= avg*burstFactor {
		return nil
	}
	return &Bookmark{
		Type:        kind,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d %s is %.1fx the rolling average (%.1f)", n, noun, float64(n)/avg, avg),
	}
}

func (bd *BookmarkDetector) checkBirthBurst(stats WindowStats) *Bookmark {
	return bd.checkBurst(stats, BookmarkBirthBurst, "births", func(s WindowStats) int { return s.Births })
}

func (bd *BookmarkDetector) checkFightBurst(stats WindowStats) *Bookmark {
	return bd.checkBurst(stats, BookmarkFightBurst, "fights", func(s WindowStats) int { return s.Fights })
}

func (bd *BookmarkDetector) checkCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 {
		return nil
	}
	drop := 1.0 - float64(stats.Alive)/float64(bd.recentPeak)
	if drop <= crashDrop || stats.Alive > bd.recentPeak-minCrash {
		return nil
	}

	oldPeak := bd.recentPeak
	bd.recentPeak = stats.Alive
	return &Bookmark{
		Type:        BookmarkPopulationCrash,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Population crashed %.0f%% from peak %d to %d", drop*100, oldPeak, stats.Alive),
	}
}

func (bd *BookmarkDetector) checkRecovery(stats WindowStats) *Bookmark {
	if bd.recentMin <= 0 || bd.recentMin > lowWater {
		return nil
	}
	if stats.Alive < bd.recentMin*recoveryFactor || stats.Alive < minRecovery {
		return nil
	}

	oldMin := bd.recentMin
	bd.recentMin = stats.Alive
	return &Bookmark{
		Type:        BookmarkRecovery,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Population recovered from %d to %d", oldMin, stats.Alive),
	}
}

func (bd *BookmarkDetector) checkStable(stats WindowStats) *Bookmark {
	if stats.Alive < minStableAlive {
		bd.stableWindowsCount = 0
		return nil
	}
	history := bd.getHistory()
	if len(history) < stableLookback-1 {
		return nil
	}

	recent := history[len(history)-(stableLookback-1):]
	alive := make([]float64, 0, stableLookback)
	for _, h := range recent {
		alive = append(alive, float64(h.Alive))
	}
	alive = append(alive, float64(stats.Alive))

	mean, std := stat.MeanStdDev(alive, nil)
	if mean > 0 && std/mean < stableMaxCV {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	// Trigger exactly once per calm stretch
	if bd.stableWindowsCount != stableWindows {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkStablePopulation,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Population steady around %.0f for %d windows", mean, stableWindows),
	}
}
