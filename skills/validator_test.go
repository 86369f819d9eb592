package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSkill() Skill {
	return Skill{
		Name:        "signalwire-agents-sdk",
		Description: "Guidance for the SignalWire Agents SDK.",
		Triggers:    []string{"AgentBase", "SWAIG"},
	}
}

func TestValidateSkill(t *testing.T) {
	assert.NoError(t, ValidateSkill(validSkill(), "signalwire-agents-sdk"))
}

func TestValidateSkillErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Skill)
		dirName string
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(s *Skill) { s.Name = "" },
			dirName: "signalwire-agents-sdk",
			wantErr: ErrMissingName,
		},
		{
			name:    "name too long",
			mutate:  func(s *Skill) { s.Name = strings.Repeat("a", 65) },
			dirName: strings.Repeat("a", 65),
			wantErr: ErrNameTooLong,
		},
		{
			name:    "invalid characters",
			mutate:  func(s *Skill) { s.Name = "Signal_Wire" },
			dirName: "Signal_Wire",
			wantErr: ErrInvalidName,
		},
		{
			name:    "dir mismatch",
			mutate:  func(s *Skill) {},
			dirName: "other-dir",
			wantErr: ErrNameMismatch,
		},
		{
			name:    "missing description",
			mutate:  func(s *Skill) { s.Description = "" },
			dirName: "signalwire-agents-sdk",
			wantErr: ErrMissingDesc,
		},
		{
			name:    "description too long",
			mutate:  func(s *Skill) { s.Description = strings.Repeat("d", 1025) },
			dirName: "signalwire-agents-sdk",
			wantErr: ErrDescTooLong,
		},
		{
			name:    "compatibility too long",
			mutate:  func(s *Skill) { s.Compatibility = strings.Repeat("c", 501) },
			dirName: "signalwire-agents-sdk",
			wantErr: ErrCompatTooLong,
		},
		{
			name:    "no triggers",
			mutate:  func(s *Skill) { s.Triggers = nil },
			dirName: "signalwire-agents-sdk",
			wantErr: ErrNoTriggers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skill := validSkill()
			tt.mutate(&skill)
			assert.ErrorIs(t, ValidateSkill(skill, tt.dirName), tt.wantErr)
		})
	}
}
