package keywords

import (
	"errors"
	"fmt"
)

// Category tags a pool and every term drawn from it.
type Category string

const (
	CategoryJobs      Category = "jobs"
	CategoryEducation Category = "education"
	CategoryMisc      Category = "misc"
)

// Categories lists the pool categories in selection order.
var Categories = []Category{CategoryJobs, CategoryEducation, CategoryMisc}

// ErrInvalidPools is returned by Validate when the pools cannot serve a run.
var ErrInvalidPools = errors.New("invalid keyword pools")

// Pools is the full set of keyword lists the templater samples from.
// The slices are treated as immutable once built.
type Pools struct {
	Jobs      []string `json:"jobs" yaml:"jobs"`
	Education []string `json:"education" yaml:"education"`
	Misc      []string `json:"misc" yaml:"misc"`
}

// Default returns the built-in pools.
func Default() Pools {
	return Pools{
		Jobs: []string{
			"Remote Product Design", "AI Engineering", "Data Science Careers", "Software Engineering Trends",
			"UX Research Roles", "Full-stack Bootcamp", "Technical Product Management", "Cloud Architecture Jobs",
			"DevOps Engineering", "Cybersecurity Analyst", "Machine Learning Specialist", "Digital Marketing Strategy",
			"Blockchain Developer", "SaaS Sales", "Customer Success Lead", "Growth Marketing", "iOS Development Trends",
		},
		Education: []string{
			"EdTech Certifications", "MBA Admissions 2026", "Online Graduate Programs", "Career Transition Skills",
			"Professional Certifications", "Higher Ed Trends", "Executive Education", "Skill Upgrading 2026",
			"Masters in AI", "STEM Education", "Virtual Learning Tech", "Lifelong Learning", "Corporate Training Tech",
		},
		Misc: []string{
			"Hybrid Work Jobs", "Future of Work", "Career Mapping", "Application Tracking Tips", "Interview Prep Strategies",
		},
	}
}

// Get returns the pool for a category, or nil for an unknown one.
func (p Pools) Get(c Category) []string {
	switch c {
	case CategoryJobs:
		return p.Jobs
	case CategoryEducation:
		return p.Education
	case CategoryMisc:
		return p.Misc
	default:
		return nil
	}
}

// Validate checks that every pool holds at least minSizes[category] terms,
// that no pool repeats a term, and that the pools are pairwise disjoint.
// Categories missing from minSizes only need to be non-empty.
func (p Pools) Validate(minSizes map[Category]int) error {
	owner := make(map[string]Category)
	for _, c := range Categories {
		terms := p.Get(c)
		need := max(minSizes[c], 1)
		if len(terms) < need {
			return fmt.Errorf("%w: pool %q has %d terms, need %d", ErrInvalidPools, c, len(terms), need)
		}
		for _, term := range terms {
			if term == "" {
				return fmt.Errorf("%w: pool %q contains an empty term", ErrInvalidPools, c)
			}
			if prev, ok := owner[term]; ok {
				if prev == c {
					return fmt.Errorf("%w: pool %q repeats %q", ErrInvalidPools, c, term)
				}
				return fmt.Errorf("%w: %q appears in both %q and %q", ErrInvalidPools, term, prev, c)
			}
			owner[term] = c
		}
	}
	return nil
}
