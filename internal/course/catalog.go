package course

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed content.json
var contentJSON []byte

// Catalog is the read-only course content: modules, lessons and challenges
// with precomputed lookup indices.
type Catalog struct {
	modules    []Module
	lessonByID map[string]Lesson
	byID       map[string]Challenge
	lessonOf   map[string]string
	total      int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded course catalog. A malformed embedded catalog
// is an authoring bug and panics on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(contentJSON)
		if err != nil {
			panic(fmt.Sprintf("course: embedded catalog invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse validates raw catalog JSON (schema plus structural checks) and
// builds the indexed catalog.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc struct {
		Modules []Module `json:"modules"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validateStructure(doc.Modules); err != nil {
		return nil, err
	}

	return build(doc.Modules), nil
}

// build constructs the indices. Modules are ordered by id and lessons by
// number so the catalog iteration order never depends on authoring order.
func build(modules []Module) *Catalog {
	c := &Catalog{
		modules:    modules,
		lessonByID: make(map[string]Lesson),
		byID:       make(map[string]Challenge),
		lessonOf:   make(map[string]string),
	}

	sort.Slice(c.modules, func(i, j int) bool { return c.modules[i].ID < c.modules[j].ID })
	for mi := range c.modules {
		m := &c.modules[mi]
		sort.Slice(m.Lessons, func(i, j int) bool { return m.Lessons[i].Number < m.Lessons[j].Number })
		for _, l := range m.Lessons {
			c.lessonByID[l.ID] = l
			for _, ch := range l.AllChallenges() {
				c.byID[ch.ID] = ch
				c.lessonOf[ch.ID] = l.ID
				c.total++
			}
		}
	}
	return c
}

// Modules returns all modules in ascending id order.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// Lessons returns every lesson keyed by lesson id.
func (c *Catalog) Lessons() map[string]Lesson {
	return c.lessonByID
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	l, ok := c.lessonByID[id]
	return l, ok
}

// Resolve returns the challenge with the given id.
func (c *Catalog) Resolve(challengeID string) (Challenge, bool) {
	ch, ok := c.byID[challengeID]
	return ch, ok
}

// LessonOf returns the id of the lesson owning the given challenge.
func (c *Catalog) LessonOf(challengeID string) (string, bool) {
	id, ok := c.lessonOf[challengeID]
	return id, ok
}

// TotalChallengeCount counts every challenge across all lessons, transfer
// challenges included.
func (c *Catalog) TotalChallengeCount() int {
	return c.total
}
