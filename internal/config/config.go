// Package config loads the engine's policy and saved views from a YAML
// file.
//
// Everything here is optional: a missing file yields the defaults, and
// any field left out of the file keeps its default. The caller decides
// when and whether to load - the core engine only ever sees the
// resulting Policy and Filter values.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trustedtext/trusted/internal/classify"
	"github.com/trustedtext/trusted/internal/item"
	"github.com/trustedtext/trusted/internal/query"
)

// Config is the top-level configuration file shape.
type Config struct {
	// Policy names the reserved deferral tags.
	Policy PolicySpec `yaml:"policy"`

	// Views are named saved filters, addressable from the CLI by name.
	Views map[string]ViewSpec `yaml:"views"`
}

// PolicySpec configures the reserved tag names for classification.
type PolicySpec struct {
	WaitingTags []string `yaml:"waiting_tags"`
	SomedayTags []string `yaml:"someday_tags"`
}

// ViewSpec is a saved filter in file form. Dates, priorities, and the
// bucket are strings here and validated when the view is compiled.
type ViewSpec struct {
	Bucket          string   `yaml:"bucket"`
	Contexts        []string `yaml:"contexts"`
	ExcludeContexts []string `yaml:"exclude_contexts"`
	Projects        []string `yaml:"projects"`
	DueBefore       string   `yaml:"due_before"`
	DueAfter        string   `yaml:"due_after"`
	PriorityMin     string   `yaml:"priority_min"`
	PriorityMax     string   `yaml:"priority_max"`
	TextContains    string   `yaml:"text"`
}

// Default returns the stock configuration: default policy, no views.
func Default() *Config {
	pol := classify.DefaultPolicy()
	return &Config{
		Policy: PolicySpec{
			WaitingTags: pol.WaitingTags,
			SomedayTags: pol.SomedayTags,
		},
		Views: map[string]ViewSpec{},
	}
}

// Load reads a config file. A missing file is not an error - the
// defaults apply. A file that exists but does not parse is surfaced to
// the caller unmodified.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ClassifyPolicy converts the policy section into the classifier's
// Policy, falling back to defaults for empty tag lists.
func (c *Config) ClassifyPolicy() classify.Policy {
	pol := classify.DefaultPolicy()
	if len(c.Policy.WaitingTags) > 0 {
		pol.WaitingTags = c.Policy.WaitingTags
	}
	if len(c.Policy.SomedayTags) > 0 {
		pol.SomedayTags = c.Policy.SomedayTags
	}
	return pol
}

// View compiles a named view into a query filter.
func (c *Config) View(name string) (query.Filter, error) {
	spec, ok := c.Views[name]
	if !ok {
		return query.Filter{}, fmt.Errorf("unknown view %q", name)
	}
	f, err := spec.Filter()
	if err != nil {
		return query.Filter{}, fmt.Errorf("view %q: %w", name, err)
	}
	return f, nil
}

// Filter validates the spec and builds the query filter.
func (s ViewSpec) Filter() (query.Filter, error) {
	f := query.Filter{
		Contexts:        s.Contexts,
		ExcludeContexts: s.ExcludeContexts,
		Projects:        s.Projects,
		TextContains:    s.TextContains,
	}

	if s.Bucket != "" {
		b, ok := item.ParseBucket(s.Bucket)
		if !ok {
			return query.Filter{}, fmt.Errorf("unknown bucket %q", s.Bucket)
		}
		f.Bucket = &b
	}

	var err error
	if f.DueBefore, err = parseDate(s.DueBefore, "due_before"); err != nil {
		return query.Filter{}, err
	}
	if f.DueAfter, err = parseDate(s.DueAfter, "due_after"); err != nil {
		return query.Filter{}, err
	}
	if f.PriorityMin, err = parsePriority(s.PriorityMin, "priority_min"); err != nil {
		return query.Filter{}, err
	}
	if f.PriorityMax, err = parsePriority(s.PriorityMax, "priority_max"); err != nil {
		return query.Filter{}, err
	}
	return f, nil
}

func parseDate(s, field string) (item.Date, error) {
	if s == "" {
		return item.Date{}, nil
	}
	d, ok := item.ParseDate(s)
	if !ok {
		return item.Date{}, fmt.Errorf("%s: invalid date %q", field, s)
	}
	return d, nil
}

func parsePriority(s, field string) (item.Priority, error) {
	if s == "" {
		return item.NoPriority, nil
	}
	if len(s) != 1 {
		return item.NoPriority, fmt.Errorf("%s: invalid priority %q", field, s)
	}
	p, ok := item.PriorityFrom(s[0])
	if !ok {
		return item.NoPriority, fmt.Errorf("%s: invalid priority %q", field, s)
	}
	return p, nil
}
