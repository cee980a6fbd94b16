package location

import (
	"errors"
	"slices"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// SkillRequirement is a value object pairing a skill name with whether the
// location requires it or merely prefers it.
type SkillRequirement struct {
	skill    string
	required bool
}

// NewSkillRequirement creates a skill requirement.
func NewSkillRequirement(skill string, required bool) (SkillRequirement, error) {
	if skill == "" {
		return SkillRequirement{}, errs.NewValueIsRequiredError("skill")
	}
	return SkillRequirement{skill: skill, required: required}, nil
}

// Skill returns the skill name.
func (r SkillRequirement) Skill() string {
	return r.skill
}

// Required reports whether the skill is mandatory rather than preferred.
func (r SkillRequirement) Required() bool {
	return r.required
}

// Location is the aggregate root for a customer site.
//
// A location with no declared skill requirements places no constraint on
// worker assignment. Requirement order is preserved so that validation
// messages list skills in the order they were declared.
type Location struct {
	id           kernel.UUID
	name         string
	address      string
	requirements []SkillRequirement

	isConstructed bool
}

// NewLocation creates a location. Duplicate skills in requirements are dropped,
// keeping the first declaration.
func NewLocation(id kernel.UUID, name, address string, requirements []SkillRequirement) (*Location, error) {
	l := &Location{isConstructed: true}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
	); err != nil {
		return nil, err
	}

	l.address = address
	l.requirements = dedupeRequirements(requirements)

	return l, nil
}

// RestoreLocation reconstructs a location aggregate from persistence.
func RestoreLocation(id kernel.UUID, name, address string, requirements []SkillRequirement) (*Location, error) {
	return NewLocation(id, name, address, requirements)
}

// Validate ensures the Location was created through a factory function.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}

	return nil
}

// IsEqual compares two locations by their unique identifiers.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the location name.
func (l *Location) Name() string {
	return l.name
}

// Address returns the location address.
func (l *Location) Address() string {
	return l.address
}

// Requirements returns all skill requirements in declaration order.
func (l *Location) Requirements() []SkillRequirement {
	return slices.Clone(l.requirements)
}

// RequiredSkills returns the names of mandatory skills in declaration order.
func (l *Location) RequiredSkills() []string {
	return l.skillNames(true)
}

// PreferredSkills returns the names of preferred skills in declaration order.
func (l *Location) PreferredSkills() []string {
	return l.skillNames(false)
}

// AddRequirement declares another skill requirement. Re-declaring an existing
// skill updates its required flag.
func (l *Location) AddRequirement(requirement SkillRequirement) {
	for i, existing := range l.requirements {
		if existing.skill == requirement.skill {
			l.requirements[i] = requirement
			return
		}
	}
	l.requirements = append(l.requirements, requirement)
}

func (l *Location) skillNames(required bool) []string {
	var skills []string
	for _, r := range l.requirements {
		if r.required == required {
			skills = append(skills, r.skill)
		}
	}
	return skills
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func dedupeRequirements(requirements []SkillRequirement) []SkillRequirement {
	var result []SkillRequirement
	seen := make(map[string]struct{}, len(requirements))
	for _, r := range requirements {
		if _, ok := seen[r.skill]; ok {
			continue
		}
		seen[r.skill] = struct{}{}
		result = append(result, r)
	}
	return result
}
