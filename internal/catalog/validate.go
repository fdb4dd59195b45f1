package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// validateCatalog performs the structural checks on levels and heroes.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(levels []Level, heroes []Hero) error {
	var errs []string

	if len(levels) == 0 {
		errs = append(errs, "catalog has no levels")
	}

	heroIDs := make(map[int]bool, len(heroes))
	for _, h := range heroes {
		if h.ID <= 0 {
			errs = append(errs, fmt.Sprintf("hero %q has non-positive ID %d", h.Name, h.ID))
		}
		if heroIDs[h.ID] {
			errs = append(errs, fmt.Sprintf("duplicate hero ID: %d", h.ID))
		}
		heroIDs[h.ID] = true
	}

	levelIDs := make(map[int]bool, len(levels))
	for _, l := range levels {
		if levelIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate level ID: %d", l.ID))
		}
		levelIDs[l.ID] = true

		if !heroIDs[l.RewardID] {
			errs = append(errs, fmt.Sprintf("level %d references nonexistent hero %d", l.ID, l.RewardID))
		}
		if l.Topic < TopicAddition || l.Topic > TopicMixed {
			errs = append(errs, fmt.Sprintf("level %d has invalid topic %s", l.ID, l.Topic))
		}
	}

	// Level IDs must be exactly 1..n.
	ids := make([]int, 0, len(levelIDs))
	for id := range levelIDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i+1 {
			errs = append(errs, fmt.Sprintf("level IDs must be contiguous from 1: expected %d, found %d", i+1, id))
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
