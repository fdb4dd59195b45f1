// Package progress tracks what each learner has unlocked and how many rounds
// of each level they have passed.
package progress

import (
	"sort"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/store"
)

// FirstLevelID is always unlocked.
const FirstLevelID = 1

// PlayerProgress is one learner's persistent record.
type PlayerProgress struct {
	LearnerID           string
	UnlockedLevels      map[int]bool
	UnlockedRewards     map[int]bool
	RoundsPassedByLevel map[int]int
}

// New returns the progress of a learner seen for the first time.
func New(learnerID string) *PlayerProgress {
	return &PlayerProgress{
		LearnerID:           learnerID,
		UnlockedLevels:      map[int]bool{FirstLevelID: true},
		UnlockedRewards:     map[int]bool{},
		RoundsPassedByLevel: map[int]int{},
	}
}

func (p *PlayerProgress) IsLevelUnlocked(levelID int) bool {
	return p.UnlockedLevels[levelID]
}

func (p *PlayerProgress) IsRewardUnlocked(heroID int) bool {
	return p.UnlockedRewards[heroID]
}

// RoundsPassed returns the number of rounds passed for a level (0 if never played).
func (p *PlayerProgress) RoundsPassed(levelID int) int {
	return p.RoundsPassedByLevel[levelID]
}

// RoundsRemaining is how many more passes complete the level.
func (p *PlayerProgress) RoundsRemaining(levelID int) int {
	return max(0, round.RoundsPerLevel-p.RoundsPassed(levelID))
}

// UnlockedLevelIDs returns the unlocked level ids in ascending order.
func (p *PlayerProgress) UnlockedLevelIDs() []int { return sortedKeys(p.UnlockedLevels) }

// UnlockedRewardIDs returns the unlocked hero ids in ascending order.
func (p *PlayerProgress) UnlockedRewardIDs() []int { return sortedKeys(p.UnlockedRewards) }

// Clone returns a deep copy.
func (p *PlayerProgress) Clone() *PlayerProgress {
	c := &PlayerProgress{
		LearnerID:           p.LearnerID,
		UnlockedLevels:      make(map[int]bool, len(p.UnlockedLevels)),
		UnlockedRewards:     make(map[int]bool, len(p.UnlockedRewards)),
		RoundsPassedByLevel: make(map[int]int, len(p.RoundsPassedByLevel)),
	}
	for k, v := range p.UnlockedLevels {
		c.UnlockedLevels[k] = v
	}
	for k, v := range p.UnlockedRewards {
		c.UnlockedRewards[k] = v
	}
	for k, v := range p.RoundsPassedByLevel {
		c.RoundsPassedByLevel[k] = v
	}
	return c
}

// Normalize re-asserts the record's invariants: level 1 unlocked, every
// count within [0, RoundsPerLevel], and no false set members.
func (p *PlayerProgress) Normalize() {
	if p.UnlockedLevels == nil {
		p.UnlockedLevels = map[int]bool{}
	}
	if p.UnlockedRewards == nil {
		p.UnlockedRewards = map[int]bool{}
	}
	if p.RoundsPassedByLevel == nil {
		p.RoundsPassedByLevel = map[int]int{}
	}
	for id, ok := range p.UnlockedLevels {
		if !ok {
			delete(p.UnlockedLevels, id)
		}
	}
	for id, ok := range p.UnlockedRewards {
		if !ok {
			delete(p.UnlockedRewards, id)
		}
	}
	p.UnlockedLevels[FirstLevelID] = true
	for id, n := range p.RoundsPassedByLevel {
		switch {
		case n <= 0:
			delete(p.RoundsPassedByLevel, id)
		case n > round.RoundsPerLevel:
			p.RoundsPassedByLevel[id] = round.RoundsPerLevel
		}
	}
}

// Status classifies a level for the level select screen.
func (p *PlayerProgress) Status(level catalog.Level) Status {
	if !p.IsLevelUnlocked(level.ID) {
		return StatusLocked
	}
	passed := p.RoundsPassed(level.ID)
	switch {
	case passed >= round.RoundsPerLevel:
		return StatusComplete
	case passed+1 == round.RoundsPerLevel:
		return StatusBossNext
	case passed == 0:
		return StatusNotStarted
	default:
		return StatusInProgress
	}
}

// Status is the display state of a level card.
type Status int

const (
	StatusLocked Status = iota
	StatusNotStarted
	StatusInProgress
	StatusBossNext
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusLocked:
		return "locked"
	case StatusNotStarted:
		return "not-started"
	case StatusInProgress:
		return "in-progress"
	case StatusBossNext:
		return "boss-next"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

func fromRecord(rec *store.ProgressRecord) *PlayerProgress {
	p := &PlayerProgress{
		LearnerID:           rec.LearnerID,
		UnlockedLevels:      make(map[int]bool, len(rec.UnlockedLevels)),
		UnlockedRewards:     make(map[int]bool, len(rec.UnlockedRewards)),
		RoundsPassedByLevel: make(map[int]int, len(rec.RoundsPassed)),
	}
	for _, id := range rec.UnlockedLevels {
		p.UnlockedLevels[id] = true
	}
	for _, id := range rec.UnlockedRewards {
		p.UnlockedRewards[id] = true
	}
	for id, n := range rec.RoundsPassed {
		p.RoundsPassedByLevel[id] = n
	}
	p.Normalize()
	return p
}

func toRecord(p *PlayerProgress) *store.ProgressRecord {
	rounds := make(map[int]int, len(p.RoundsPassedByLevel))
	for id, n := range p.RoundsPassedByLevel {
		rounds[id] = n
	}
	return &store.ProgressRecord{
		LearnerID:       p.LearnerID,
		UnlockedLevels:  p.UnlockedLevelIDs(),
		UnlockedRewards: p.UnlockedRewardIDs(),
		RoundsPassed:    rounds,
	}
}

func sortedKeys(m map[int]bool) []int {
	ids := make([]int, 0, len(m))
	for id, ok := range m {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
