package recommend

import (
	"strings"

	"glowSkincare/domain"
)

type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

// RoutineRule places products whose name contains Keyword into Slot.
type RoutineRule struct {
	Keyword string
	Slot    Slot
}

// DefaultRoutineRules lists specific keywords before generic ones since the
// first matching rule wins.
func DefaultRoutineRules() []RoutineRule {
	return []RoutineRule{
		{Keyword: "deep cleanser", Slot: SlotEvening},
		{Keyword: "night", Slot: SlotEvening},
		{Keyword: "retinol", Slot: SlotEvening},
		{Keyword: "treatment", Slot: SlotEvening},
		{Keyword: "mist", Slot: SlotAfternoon},
		{Keyword: "toner", Slot: SlotAfternoon},
		{Keyword: "cleanser", Slot: SlotMorning},
		{Keyword: "serum", Slot: SlotMorning},
		{Keyword: "moisturizer", Slot: SlotMorning},
		{Keyword: "spf", Slot: SlotMorning},
		{Keyword: "sunscreen", Slot: SlotMorning},
	}
}

// buildRoutine assigns the first size products to time-of-day slots.
// Products no rule matches are left out of the routine.
func buildRoutine(products []domain.Product, rules []RoutineRule, size int) *domain.Routine {
	if len(products) > size {
		products = products[:size]
	}

	r := &domain.Routine{
		Morning:   []string{},
		Afternoon: []string{},
		Evening:   []string{},
	}

	for _, p := range products {
		slot, ok := slotFor(p.Name, rules)
		if !ok {
			continue
		}
		switch slot {
		case SlotMorning:
			r.Morning = append(r.Morning, p.Name)
		case SlotAfternoon:
			r.Afternoon = append(r.Afternoon, p.Name)
		case SlotEvening:
			r.Evening = append(r.Evening, p.Name)
		}
	}

	return r
}

func slotFor(name string, rules []RoutineRule) (Slot, bool) {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		if strings.Contains(lower, strings.ToLower(rule.Keyword)) {
			return rule.Slot, true
		}
	}
	return "", false
}
