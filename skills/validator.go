package skills

import (
	"path/filepath"
	"regexp"
)

const (
	MaxNameLength   = 64
	MaxDescLength   = 1024
	MaxCompatLength = 500
)

var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks a skill directory for spec compliance.
func Validate(skillDir string) error {
	skill, err := ReadProperties(skillDir)
	if err != nil {
		return err
	}
	return ValidateSkill(skill, filepath.Base(skillDir))
}

// ValidateSkill checks a skill struct for spec compliance.
// dirName is the containing directory's base name; pass the skill's own
// name when the bundle is embedded and has no directory.
func ValidateSkill(s Skill, dirName string) error {
	if err := validateName(s.Name, dirName); err != nil {
		return err
	}
	if err := validateDescription(s.Description); err != nil {
		return err
	}
	if err := validateCompatibility(s.Compatibility); err != nil {
		return err
	}
	return validateTriggers(s.Triggers)
}

func validateName(name, dirName string) error {
	if name == "" {
		return ErrMissingName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !namePattern.MatchString(name) {
		return ErrInvalidName
	}
	if name != dirName {
		return ErrNameMismatch
	}
	return nil
}

func validateDescription(desc string) error {
	if desc == "" {
		return ErrMissingDesc
	}
	if len(desc) > MaxDescLength {
		return ErrDescTooLong
	}
	return nil
}

func validateCompatibility(compat string) error {
	if compat == "" {
		return nil
	}
	if len(compat) > MaxCompatLength {
		return ErrCompatTooLong
	}
	return nil
}

func validateTriggers(triggers []string) error {
	if len(triggers) == 0 {
		return ErrNoTriggers
	}
	return nil
}
