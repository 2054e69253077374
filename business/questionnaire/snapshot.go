package questionnaire

import (
	"fmt"

	"glowSkincare/domain"
)

// Snapshot is the serialisable form of a Machine, used to resume a session.
type Snapshot struct {
	Step      int     `json:"step"`
	Answers   Answers `json:"answers"`
	Submitted bool    `json:"submitted"`
	Exited    bool    `json:"exited"`
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Step:      m.step,
		Answers:   m.Answers(),
		Submitted: m.submitted,
		Exited:    m.exited,
	}
}

// Restore rebuilds a machine from a snapshot, rejecting snapshots that could
// not have been produced by a Machine.
func Restore(s Snapshot) (*Machine, error) {
	if s.Step < 0 || s.Step >= len(Questions) {
		return nil, fmt.Errorf("%w: step %d out of range", domain.ErrValidation, s.Step)
	}

	m := &Machine{
		step:      s.Step,
		submitted: s.Submitted,
		exited:    s.Exited,
	}

	a := s.Answers
	if a.SkinType != "" && !a.SkinType.Valid() {
		return nil, fmt.Errorf("%w: skin type %q", domain.ErrInvalidOption, a.SkinType)
	}
	for _, c := range a.MainConcerns {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: concern %q", domain.ErrInvalidOption, c)
		}
	}
	if a.AgeGroup != "" && !a.AgeGroup.Valid() {
		return nil, fmt.Errorf("%w: age group %q", domain.ErrInvalidOption, a.AgeGroup)
	}
	if a.SkincareGoal != "" && !a.SkincareGoal.Valid() {
		return nil, fmt.Errorf("%w: skincare goal %q", domain.ErrInvalidOption, a.SkincareGoal)
	}
	m.answers = a
	m.answers.MainConcerns = append([]domain.Concern(nil), a.MainConcerns...)

	if m.submitted {
		for _, q := range Questions {
			if !m.answered(q.Field) {
				return nil, fmt.Errorf("%w: submitted snapshot is missing %s", domain.ErrValidation, q.Field)
			}
		}
	}

	return m, nil
}
