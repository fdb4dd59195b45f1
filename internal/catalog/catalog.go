// Package catalog holds the static level and hero definitions.
package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Catalog is the read-only set of levels and heroes, loaded once at start.
type Catalog struct {
	levels    []Level
	heroes    []Hero
	levelByID map[int]int // level ID -> index in levels
	heroByID  map[int]int // hero ID -> index in heroes
}

// New validates the given definitions and builds a Catalog.
// Levels are ordered by ID; heroes keep their given order.
func New(levels []Level, heroes []Hero) (*Catalog, error) {
	if err := validateCatalog(levels, heroes); err != nil {
		return nil, err
	}

	c := &Catalog{
		levels:    slices.Clone(levels),
		heroes:    slices.Clone(heroes),
		levelByID: make(map[int]int, len(levels)),
		heroByID:  make(map[int]int, len(heroes)),
	}
	sort.Slice(c.levels, func(i, j int) bool { return c.levels[i].ID < c.levels[j].ID })

	for i, l := range c.levels {
		c.levelByID[l.ID] = i
	}
	for i, h := range c.heroes {
		c.heroByID[h.ID] = i
	}
	return c, nil
}

// Levels returns all levels ordered by ID.
func (c *Catalog) Levels() []Level {
	return slices.Clone(c.levels)
}

// Heroes returns all heroes in catalog order.
func (c *Catalog) Heroes() []Hero {
	return slices.Clone(c.heroes)
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Level looks up a level by ID.
func (c *Catalog) Level(id int) (Level, bool) {
	i, ok := c.levelByID[id]
	if !ok {
		return Level{}, false
	}
	return c.levels[i], true
}

// Hero looks up a hero by ID.
func (c *Catalog) Hero(id int) (Hero, bool) {
	i, ok := c.heroByID[id]
	if !ok {
		return Hero{}, false
	}
	return c.heroes[i], true
}

// Next returns the level unlocked after the given one, if any.
func (c *Catalog) Next(id int) (Level, bool) {
	return c.Level(id + 1)
}

// MustLevel is like Level but panics on a missing ID. The catalog is
// validated at load, so a miss means the caller holds a stale reference.
func (c *Catalog) MustLevel(id int) Level {
	l, ok := c.Level(id)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown level %d", id))
	}
	return l
}

// MustHero is like Hero but panics on a missing ID.
func (c *Catalog) MustHero(id int) Hero {
	h, ok := c.Hero(id)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown hero %d", id))
	}
	return h
}

// RewardFor returns the hero unlocked by the given level's boss round.
func (c *Catalog) RewardFor(l Level) Hero {
	return c.MustHero(l.RewardID)
}
