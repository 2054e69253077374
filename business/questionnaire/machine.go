package questionnaire

import (
	"fmt"

	"glowSkincare/domain"
)

type Field string

const (
	FieldSkinType     Field = "skin_type"
	FieldMainConcerns Field = "main_concerns"
	FieldAgeGroup     Field = "age_group"
	FieldSkincareGoal Field = "skincare_goal"
)

type Kind string

const (
	KindSingle   Kind = "single"
	KindMultiple Kind = "multiple"
)

type Question struct {
	Field   Field    `json:"field"`
	Prompt  string   `json:"question"`
	Kind    Kind     `json:"type"`
	Options []string `json:"options"`
}

// Questions is the fixed, ordered questionnaire.
var Questions = []Question{
	{
		Field:   FieldSkinType,
		Prompt:  "What's your skin type?",
		Kind:    KindSingle,
		Options: toStrings(domain.SkinTypes),
	},
	{
		Field:   FieldMainConcerns,
		Prompt:  "What are your main skin concerns?",
		Kind:    KindMultiple,
		Options: toStrings(domain.Concerns),
	},
	{
		Field:   FieldAgeGroup,
		Prompt:  "What's your age group?",
		Kind:    KindSingle,
		Options: toStrings(domain.AgeGroups),
	},
	{
		Field:   FieldSkincareGoal,
		Prompt:  "What's your primary skincare goal?",
		Kind:    KindSingle,
		Options: toStrings(domain.Goals),
	},
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

type Answers struct {
	SkinType     domain.SkinType  `json:"skin_type"`
	MainConcerns []domain.Concern `json:"main_concerns"`
	AgeGroup     domain.AgeGroup  `json:"age_group"`
	SkincareGoal domain.Goal      `json:"skincare_goal"`
}

// Machine drives the questionnaire one question at a time. States are the
// question indexes plus the terminal submitted state; Back from the first
// question leaves the flow.
type Machine struct {
	step      int
	answers   Answers
	submitted bool
	exited    bool
}

func NewMachine() *Machine {
	return &Machine{}
}

func (m *Machine) Step() int {
	return m.step
}

func (m *Machine) Total() int {
	return len(Questions)
}

func (m *Machine) Answers() Answers {
	a := m.answers
	a.MainConcerns = append([]domain.Concern(nil), m.answers.MainConcerns...)
	return a
}

func (m *Machine) Submitted() bool {
	return m.submitted
}

func (m *Machine) Exited() bool {
	return m.exited
}

func (m *Machine) finished() bool {
	return m.submitted || m.exited
}

// Current returns the active question; false once the flow is submitted or exited.
func (m *Machine) Current() (Question, bool) {
	if m.finished() {
		return Question{}, false
	}
	return Questions[m.step], true
}

// Progress is the completion percentage shown above the current question.
func (m *Machine) Progress() float64 {
	if m.submitted {
		return 100
	}
	return float64(m.step+1) / float64(len(Questions)) * 100
}

// Select records option for the current question. Single-select options
// replace the previous answer; the multi-select option toggles membership.
func (m *Machine) Select(option string) error {
	q, ok := m.Current()
	if !ok {
		return fmt.Errorf("%w: questionnaire is no longer accepting answers", domain.ErrInvalidOption)
	}
	if !contains(q.Options, option) {
		return fmt.Errorf("%w: %q is not an option for %s", domain.ErrInvalidOption, option, q.Field)
	}

	switch q.Field {
	case FieldSkinType:
		m.answers.SkinType = domain.SkinType(option)
	case FieldMainConcerns:
		m.answers.MainConcerns = toggle(m.answers.MainConcerns, domain.Concern(option))
	case FieldAgeGroup:
		m.answers.AgeGroup = domain.AgeGroup(option)
	case FieldSkincareGoal:
		m.answers.SkincareGoal = domain.Goal(option)
	}

	return nil
}

func (m *Machine) IsSelected(option string) bool {
	q, ok := m.Current()
	if !ok {
		return false
	}

	switch q.Field {
	case FieldSkinType:
		return string(m.answers.SkinType) == option
	case FieldMainConcerns:
		for _, c := range m.answers.MainConcerns {
			if string(c) == option {
				return true
			}
		}
		return false
	case FieldAgeGroup:
		return string(m.answers.AgeGroup) == option
	case FieldSkincareGoal:
		return string(m.answers.SkincareGoal) == option
	}
	return false
}

func (m *Machine) CanProceed() bool {
	q, ok := m.Current()
	if !ok {
		return false
	}
	return m.answered(q.Field)
}

func (m *Machine) answered(f Field) bool {
	switch f {
	case FieldSkinType:
		return m.answers.SkinType != ""
	case FieldMainConcerns:
		return len(m.answers.MainConcerns) > 0
	case FieldAgeGroup:
		return m.answers.AgeGroup != ""
	case FieldSkincareGoal:
		return m.answers.SkincareGoal != ""
	}
	return false
}

// Next advances to the following question, or submits from the last one.
// It is a no-op when the current question is unanswered and reports whether
// the machine moved.
func (m *Machine) Next() bool {
	if !m.CanProceed() {
		return false
	}

	if m.step < len(Questions)-1 {
		m.step++
		return true
	}

	// every question is re-checked, answers may have been toggled off after Back
	for _, q := range Questions {
		if !m.answered(q.Field) {
			return false
		}
	}
	m.submitted = true
	return true
}

// Back moves to the previous question keeping all answers. From the first
// question it exits the flow.
func (m *Machine) Back() {
	if m.finished() {
		return
	}
	if m.step == 0 {
		m.exited = true
		return
	}
	m.step--
}

// Profile returns the questionnaire profile once submitted.
func (m *Machine) Profile() (domain.SkinProfile, bool) {
	if !m.submitted {
		return domain.SkinProfile{}, false
	}

	return domain.SkinProfile{
		SkinType:     m.answers.SkinType,
		MainConcerns: append([]domain.Concern(nil), m.answers.MainConcerns...),
		AgeGroup:     m.answers.AgeGroup,
		SkincareGoal: m.answers.SkincareGoal,
		Source:       domain.SourceQuestionnaire,
	}, true
}

func toggle(list []domain.Concern, c domain.Concern) []domain.Concern {
	for i, v := range list {
		if v == c {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, c)
}

func contains(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
