// Package catalog owns the canonical feature records and resolves free-text
// names to features through normalized, synonym-aware matching.
package catalog

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/fathomhq/fathom/internal/model"
)

// FeatureInput holds the fields required to create a catalog feature
type FeatureInput struct {
	Name          string
	Team          model.Team
	Category      string
	SeedTimeHours float64
	Synonyms      []string
	Notes         string
}

// Catalog is the in-memory feature store. A single writer lock guards
// mutations; estimate computations call Snapshot and work on the copy, so
// concurrent catalog writes never affect an in-flight estimate.
type Catalog struct {
	mu       sync.RWMutex
	features map[model.FeatureID]*model.Feature
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{features: make(map[model.FeatureID]*model.Feature)}
}

// Load replaces the catalog contents with the given features, typically
// read from the persistence layer. Returns a ValidationError if the set
// contains duplicate names or synonyms.
func (c *Catalog) Load(features []*model.Feature) error {
	next := make(map[model.FeatureID]*model.Feature, len(features))
	seen := make(map[string]string)
	for _, f := range features {
		for _, name := range append([]string{f.Name}, f.Synonyms...) {
			key := model.NormalizeName(name)
			if other, dup := seen[key]; dup {
				return &model.ValidationError{Field: "name", Value: name, Reason: "duplicates " + other}
			}
			seen[key] = f.Name
		}
		next[f.ID] = f
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.features = next
	return nil
}

// AddFeature validates the input and adds a new feature. Validation is
// all-or-nothing: on failure the catalog is unchanged.
func (c *Catalog) AddFeature(input FeatureInput) (*model.Feature, error) {
	if model.NormalizeName(input.Name) == "" {
		return nil, &model.ValidationError{Field: "name", Reason: "is required"}
	}
	if !model.KnownTeam(input.Team) {
		return nil, &model.ValidationError{Field: "team", Value: string(input.Team), Reason: "must be frontend, backend or both"}
	}
	if math.IsNaN(input.SeedTimeHours) || math.IsInf(input.SeedTimeHours, 0) || input.SeedTimeHours <= 0 {
		return nil, &model.ValidationError{Field: "seedTimeHours", Reason: "must be a positive finite number"}
	}

	// The input's own name and synonyms must be unique among themselves
	// under normalization, or the stored catalog would fail to Load.
	names := append([]string{input.Name}, input.Synonyms...)
	seen := make(map[string]string, len(names))
	for _, name := range names {
		key := model.NormalizeName(name)
		if key == "" {
			return nil, &model.ValidationError{Field: "synonym", Value: name, Reason: "is required"}
		}
		if other, dup := seen[key]; dup {
			return nil, &model.ValidationError{Field: "synonym", Value: name, Reason: "duplicates " + other}
		}
		seen[key] = name
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, name := range names {
		if existing := c.matchLocked(name); existing != nil {
			return nil, &model.ValidationError{Field: "name", Value: name, Reason: "already used by feature " + existing.Name}
		}
	}

	feature := model.NewFeature(input.Name, input.Team, input.SeedTimeHours)
	feature.Category = input.Category
	feature.Synonyms = append([]string(nil), input.Synonyms...)
	feature.Notes = input.Notes
	c.features[feature.ID] = feature
	return feature.Clone(), nil
}

// UpdateSeedTime replaces a feature's seed time, appending the previous
// value to its history first
func (c *Catalog) UpdateSeedTime(id model.FeatureID, hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return &model.ValidationError{Field: "seedTimeHours", Reason: "must be a positive finite number"}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	feature, ok := c.features[id]
	if !ok {
		return &model.NotFoundError{Kind: "feature", Ref: string(id)}
	}
	feature.SetSeedTime(hours)
	return nil
}

// Remove deletes a feature. Already-computed estimate snapshots keep any
// line items derived from it.
func (c *Catalog) Remove(id model.FeatureID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.features[id]; !ok {
		return &model.NotFoundError{Kind: "feature", Ref: string(id)}
	}
	delete(c.features, id)
	return nil
}

// Get returns the feature with the given id
func (c *Catalog) Get(id model.FeatureID) (*model.Feature, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	feature, ok := c.features[id]
	if !ok {
		return nil, &model.NotFoundError{Kind: "feature", Ref: string(id)}
	}
	return feature.Clone(), nil
}

// FindByNameOrSynonym resolves a free-text name to a feature by exact
// normalized match against names and synonyms. Returns nil if nothing
// matches exactly.
func (c *Catalog) FindByNameOrSynonym(query string) *model.Feature {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if feature := c.matchLocked(query); feature != nil {
		return feature.Clone()
	}
	return nil
}

// Search returns all features whose normalized name or synonyms contain the
// normalized query as a substring. Order is unspecified; callers sort.
func (c *Catalog) Search(query string) []*model.Feature {
	needle := model.NormalizeName(query)
	if needle == "" {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var matches []*model.Feature
	for _, feature := range c.features {
		if strings.Contains(model.NormalizeName(feature.Name), needle) {
			matches = append(matches, feature.Clone())
			continue
		}
		for _, syn := range feature.Synonyms {
			if strings.Contains(model.NormalizeName(syn), needle) {
				matches = append(matches, feature.Clone())
				break
			}
		}
	}
	return matches
}

// List returns all features sorted alphabetically by name
func (c *Catalog) List() []*model.Feature {
	features := c.Snapshot()
	sort.Slice(features, func(i, j int) bool {
		return features[i].Name < features[j].Name
	})
	return features
}

// Snapshot returns a copy of every feature. Estimate computations work on
// the snapshot so catalog writers never race an in-flight computation.
func (c *Catalog) Snapshot() []*model.Feature {
	c.mu.RLock()
	defer c.mu.RUnlock()
	features := make([]*model.Feature, 0, len(c.features))
	for _, feature := range c.features {
		features = append(features, feature.Clone())
	}
	return features
}

func (c *Catalog) matchLocked(query string) *model.Feature {
	needle := model.NormalizeName(query)
	if needle == "" {
		return nil
	}
	for _, feature := range c.features {
		if model.NormalizeName(feature.Name) == needle {
			return feature
		}
		for _, syn := range feature.Synonyms {
			if model.NormalizeName(syn) == needle {
				return feature
			}
		}
	}
	return nil
}
