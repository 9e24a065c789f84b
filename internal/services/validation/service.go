// Package validation lints rules content for referential integrity: feats
// granting unknown feats, items granting unknown spells, rule entries with
// keys the engine does not understand. The engine itself degrades silently
// on bad references; this service is how content authors find them.
package validation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
	apperrs "github.com/hearthforge/pf2-builder/internal/errors"
)

// Severity classifies a lint finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single lint finding against one content entry
type Issue struct {
	Severity Severity

	// Kind is the content category the finding is about (feat, item, class)
	Kind string

	// ID is the offending entry's id
	ID string

	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s %s: %s", i.Severity, i.Kind, i.ID, i.Message)
}

// LintOutput holds the collected findings, sorted for stable output
type LintOutput struct {
	Issues []Issue
}

// HasErrors reports whether any finding is error severity
func (o *LintOutput) HasErrors() bool {
	for _, issue := range o.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Service defines the content lint interface
type Service interface {
	// LintContent checks every content category and returns the findings
	LintContent(ctx context.Context) (*LintOutput, error)
}

type service struct {
	client rulebook.Client
}

// Config holds configuration for the lint service
type Config struct {
	Client rulebook.Client // required
}

// NewService creates a new lint service
func NewService(cfg *Config) Service {
	if cfg.Client == nil {
		panic("rulebook client is required")
	}
	return &service{client: cfg.Client}
}

// LintContent checks every content category concurrently
func (s *service) LintContent(ctx context.Context) (*LintOutput, error) {
	var (
		mu     sync.Mutex
		issues []Issue
	)
	report := func(found []Issue) {
		mu.Lock()
		issues = append(issues, found...)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.lintFeats(ctx, report) })
	g.Go(func() error { return s.lintItems(ctx, report) })
	g.Go(func() error { return s.lintClasses(ctx, report) })

	if err := g.Wait(); err != nil {
		return nil, apperrs.Wrap(err, "content lint failed")
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Kind != issues[j].Kind {
			return issues[i].Kind < issues[j].Kind
		}
		if issues[i].ID != issues[j].ID {
			return issues[i].ID < issues[j].ID
		}
		return issues[i].Message < issues[j].Message
	})
	return &LintOutput{Issues: issues}, nil
}

func (s *service) lintFeats(ctx context.Context, report func([]Issue)) error {
	feats, err := s.client.ListFeats()
	if err != nil {
		return apperrs.Wrap(err, "failed to list feats")
	}

	var found []Issue
	for _, feat := range feats {
		if err := ctx.Err(); err != nil {
			return err
		}

		found = append(found, s.lintRules("feat", feat.ID, feat.Rules)...)

		for _, entry := range feat.Rules {
			grant, ok := rulebook.Classify(entry).(rulebook.GrantItemRule)
			if !ok {
				continue
			}
			grantedID := rulebook.GrantRefID(grant.Ref)
			if grantedID == "" {
				found = append(found, Issue{
					Severity: SeverityError, Kind: "feat", ID: feat.ID,
					Message: fmt.Sprintf("grant rule has unparseable reference %q", grant.Ref),
				})
				continue
			}
			if _, err := s.client.GetFeat(grantedID); apperrs.IsNotFound(err) {
				found = append(found, Issue{
					Severity: SeverityError, Kind: "feat", ID: feat.ID,
					Message: fmt.Sprintf("grants unknown feat '%s'", grantedID),
				})
			} else if err != nil {
				return apperrs.Wrapf(err, "failed to get feat '%s'", grantedID)
			}
		}

		for _, prereq := range feat.Prerequisites {
			prereqID := rulebook.GrantRefID(prereq)
			if _, err := s.client.GetFeat(prereqID); apperrs.IsNotFound(err) {
				found = append(found, Issue{
					Severity: SeverityWarning, Kind: "feat", ID: feat.ID,
					Message: fmt.Sprintf("prerequisite %q does not match a known feat", prereq),
				})
			} else if err != nil {
				return apperrs.Wrapf(err, "failed to get feat '%s'", prereqID)
			}
		}

		for _, skill := range feat.TrainedSkills {
			if !shared.IsSkill(string(skill)) {
				found = append(found, Issue{
					Severity: SeverityError, Kind: "feat", ID: feat.ID,
					Message: fmt.Sprintf("trains unknown skill '%s'", skill),
				})
			}
		}

		for _, grant := range feat.InnateSpells {
			if _, err := s.client.GetSpell(grant.SpellID); apperrs.IsNotFound(err) {
				found = append(found, Issue{
					Severity: SeverityError, Kind: "feat", ID: feat.ID,
					Message: fmt.Sprintf("grants unknown innate spell '%s'", grant.SpellID),
				})
			} else if err != nil {
				return apperrs.Wrapf(err, "failed to get spell '%s'", grant.SpellID)
			}
		}
	}

	report(found)
	return nil
}

func (s *service) lintItems(ctx context.Context, report func([]Issue)) error {
	items, err := s.client.ListItems()
	if err != nil {
		return apperrs.Wrap(err, "failed to list items")
	}

	var found []Issue
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		found = append(found, s.lintRules("item", item.ID, item.Rules)...)

		seen := make(map[string]bool, len(item.SpellChoices))
		for _, choice := range item.SpellChoices {
			if seen[choice.ID] {
				found = append(found, Issue{
					Severity: SeverityError, Kind: "item", ID: item.ID,
					Message: fmt.Sprintf("duplicate spell choice id '%s'", choice.ID),
				})
			}
			seen[choice.ID] = true

			if choice.DailyUses < 1 {
				found = append(found, Issue{
					Severity: SeverityWarning, Kind: "item", ID: item.ID,
					Message: fmt.Sprintf("spell choice '%s' has no daily uses", choice.ID),
				})
			}
			if _, err := s.client.GetSpell(choice.SpellID); apperrs.IsNotFound(err) {
				found = append(found, Issue{
					Severity: SeverityError, Kind: "item", ID: item.ID,
					Message: fmt.Sprintf("spell choice '%s' grants unknown spell '%s'", choice.ID, choice.SpellID),
				})
			} else if err != nil {
				return apperrs.Wrapf(err, "failed to get spell '%s'", choice.SpellID)
			}
		}

		if item.ApexAbility != shared.AbilityNone && !shared.IsAbility(item.ApexAbility) {
			found = append(found, Issue{
				Severity: SeverityError, Kind: "item", ID: item.ID,
				Message: fmt.Sprintf("apex ability '%s' is not an ability", item.ApexAbility),
			})
		}
	}

	report(found)
	return nil
}

func (s *service) lintClasses(ctx context.Context, report func([]Issue)) error {
	classes, err := s.client.ListClasses()
	if err != nil {
		return apperrs.Wrap(err, "failed to list classes")
	}

	var found []Issue
	for _, class := range classes {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, skill := range class.TrainedSkills {
			if !shared.IsSkill(string(skill)) {
				found = append(found, Issue{
					Severity: SeverityError, Kind: "class", ID: class.ID,
					Message: fmt.Sprintf("trains unknown skill '%s'", skill),
				})
			}
		}
		for spec, skills := range class.SpecializationSkills {
			if !containsString(class.Specializations, spec) {
				found = append(found, Issue{
					Severity: SeverityWarning, Kind: "class", ID: class.ID,
					Message: fmt.Sprintf("skill grants reference unlisted specialization '%s'", spec),
				})
			}
			for _, skill := range skills {
				if !shared.IsSkill(string(skill)) {
					found = append(found, Issue{
						Severity: SeverityError, Kind: "class", ID: class.ID,
						Message: fmt.Sprintf("specialization '%s' trains unknown skill '%s'", spec, skill),
					})
				}
			}
		}
	}

	report(found)
	return nil
}

// lintRules flags rule entries the engine would ignore
func (s *service) lintRules(kind, id string, entries []rulebook.RuleEntry) []Issue {
	var found []Issue
	for _, entry := range entries {
		rule := rulebook.Classify(entry)
		unknown, ok := rule.(rulebook.UnknownRule)
		if !ok {
			continue
		}
		key := strings.TrimSpace(unknown.Key)
		if key == "" {
			key = "(empty)"
		}
		found = append(found, Issue{
			Severity: SeverityWarning, Kind: kind, ID: id,
			Message: fmt.Sprintf("rule key '%s' is not understood and will be ignored", key),
		})
	}
	return found
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
