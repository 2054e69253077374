//go:build !integration

package questionnaire

import (
	"errors"
	"reflect"
	"testing"

	"glowSkincare/domain"
)

func answerAll(t *testing.T, m *Machine, options ...string) {
	t.Helper()
	for _, opt := range options {
		if err := m.Select(opt); err != nil {
			t.Fatalf("Select(%q) error = %v", opt, err)
		}
		if !m.Next() {
			t.Fatalf("Next() after %q did not advance", opt)
		}
	}
}

func TestMachine_NextIsNoopUntilAnswered(t *testing.T) {
	m := NewMachine()

	if m.CanProceed() {
		t.Fatal("CanProceed() = true on an unanswered question")
	}
	if m.Next() {
		t.Fatal("Next() advanced without an answer")
	}
	if m.Step() != 0 {
		t.Fatalf("Step() = %d, want 0", m.Step())
	}

	if err := m.Select("Oily"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !m.Next() || m.Step() != 1 {
		t.Fatalf("Next() did not advance to step 1, step = %d", m.Step())
	}

	// multi-select needs at least one concern
	if m.Next() {
		t.Fatal("Next() advanced with no concerns selected")
	}
}

func TestMachine_SingleSelectReplaces(t *testing.T) {
	m := NewMachine()
	_ = m.Select("Oily")
	_ = m.Select("Dry")

	if got := m.Answers().SkinType; got != domain.SkinTypeDry {
		t.Errorf("SkinType = %q, want Dry", got)
	}
	if m.IsSelected("Oily") {
		t.Error("Oily still selected after choosing Dry")
	}
}

func TestMachine_MultiSelectToggles(t *testing.T) {
	m := NewMachine()
	answerAll(t, m, "Oily")

	_ = m.Select("Acne")
	_ = m.Select("Dullness")
	_ = m.Select("Acne")

	want := []domain.Concern{domain.ConcernDullness}
	if got := m.Answers().MainConcerns; !reflect.DeepEqual(got, want) {
		t.Errorf("MainConcerns = %v, want %v", got, want)
	}

	_ = m.Select("Dullness")
	if m.CanProceed() {
		t.Error("CanProceed() = true after toggling every concern off")
	}
}

func TestMachine_SelectRejectsUnknownOption(t *testing.T) {
	m := NewMachine()

	err := m.Select("Greasy")
	if !errors.Is(err, domain.ErrInvalidOption) {
		t.Fatalf("Select() error = %v, want ErrInvalidOption", err)
	}
	if m.Answers().SkinType != "" {
		t.Error("rejected option changed the answers")
	}

	// options of another question are not valid here
	if err := m.Select("Acne"); !errors.Is(err, domain.ErrInvalidOption) {
		t.Errorf("Select(Acne) on skin type question error = %v", err)
	}
}

func TestMachine_BackKeepsAnswersAndExitsFromFirst(t *testing.T) {
	m := NewMachine()
	answerAll(t, m, "Normal", "Wrinkles")

	m.Back()
	if m.Step() != 1 {
		t.Fatalf("Step() = %d, want 1", m.Step())
	}
	if !m.IsSelected("Wrinkles") {
		t.Error("concern answer lost after Back")
	}

	m.Back()
	if m.Step() != 0 || m.Exited() {
		t.Fatalf("Step() = %d exited = %v, want step 0 not exited", m.Step(), m.Exited())
	}

	m.Back()
	if !m.Exited() {
		t.Fatal("Back() from the first question did not exit")
	}
	if _, ok := m.Current(); ok {
		t.Error("Current() reported a question after exit")
	}
	if err := m.Select("Oily"); !errors.Is(err, domain.ErrInvalidOption) {
		t.Errorf("Select() after exit error = %v", err)
	}
}

func TestMachine_SubmitProducesQuestionnaireProfile(t *testing.T) {
	m := NewMachine()

	if _, ok := m.Profile(); ok {
		t.Fatal("Profile() available before submit")
	}

	answerAll(t, m, "Oily", "Acne", "18-25", "Acne-free")

	if !m.Submitted() {
		t.Fatal("machine not submitted after the last question")
	}
	if m.Progress() != 100 {
		t.Errorf("Progress() = %v, want 100", m.Progress())
	}

	p, ok := m.Profile()
	if !ok {
		t.Fatal("Profile() not available after submit")
	}
	want := domain.SkinProfile{
		SkinType:     domain.SkinTypeOily,
		MainConcerns: []domain.Concern{domain.ConcernAcne},
		AgeGroup:     domain.AgeGroup18to25,
		SkincareGoal: domain.GoalAcneFree,
		Source:       domain.SourceQuestionnaire,
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Profile() = %+v, want %+v", p, want)
	}
	if !p.IsComplete() {
		t.Errorf("submitted profile incomplete: %v", p.MissingFields())
	}

	if err := m.Select("Dry"); err == nil {
		t.Error("Select() after submit succeeded")
	}
}

func TestMachine_ClearedAnswerBlocksSubmit(t *testing.T) {
	m := NewMachine()
	answerAll(t, m, "Oily", "Acne", "18-25")
	_ = m.Select("Hydration")

	// walk back and clear the concern, then return to the last question
	m.Back()
	m.Back()
	_ = m.Select("Acne")
	if m.Next() {
		t.Fatal("Next() advanced with concerns cleared")
	}
	if m.Submitted() {
		t.Fatal("submitted with an empty field")
	}
}

func TestMachine_Progress(t *testing.T) {
	m := NewMachine()
	if got := m.Progress(); got != 25 {
		t.Errorf("Progress() at step 0 = %v, want 25", got)
	}
	answerAll(t, m, "Dry")
	if got := m.Progress(); got != 50 {
		t.Errorf("Progress() at step 1 = %v, want 50", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	m := NewMachine()
	answerAll(t, m, "Sensitive", "Sensitivity")
	_ = m.Select("26-35")

	restored, err := Restore(m.Snapshot())
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.Step() != m.Step() {
		t.Errorf("Step() = %d, want %d", restored.Step(), m.Step())
	}
	if !reflect.DeepEqual(restored.Answers(), m.Answers()) {
		t.Errorf("Answers() = %+v, want %+v", restored.Answers(), m.Answers())
	}

	answerAll(t, restored, "26-35", "Hydration")
	if !restored.Submitted() {
		t.Error("restored machine could not be submitted")
	}
}

func TestRestore_RejectsImpossibleSnapshots(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{name: "step out of range", snap: Snapshot{Step: 4}},
		{name: "negative step", snap: Snapshot{Step: -1}},
		{name: "unknown skin type", snap: Snapshot{Answers: Answers{SkinType: "Greasy"}}},
		{name: "unknown concern", snap: Snapshot{Step: 1, Answers: Answers{MainConcerns: []domain.Concern{"Pores"}}}},
		{name: "submitted with empty field", snap: Snapshot{Step: 3, Submitted: true, Answers: Answers{SkinType: "Dry"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Restore(tt.snap); err == nil {
				t.Error("Restore() error = nil, want error")
			}
		})
	}
}
