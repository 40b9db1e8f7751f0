package achievement

import "testing"

func TestRulesWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Rules() {
		if r.ID == "" || r.Title == "" {
			t.Errorf("rule %+v missing id or title", r)
		}
		if seen[r.ID] {
			t.Errorf("duplicate rule id %s", r.ID)
		}
		seen[r.ID] = true

		switch r.Kind {
		case KindSnapshot:
			if r.Predicate == nil {
				t.Errorf("snapshot rule %s has no predicate", r.ID)
			}
			if r.Trigger != "" {
				t.Errorf("snapshot rule %s carries a trigger", r.ID)
			}
		case KindEvent:
			if r.Predicate != nil {
				t.Errorf("event rule %s carries a predicate", r.ID)
			}
			if r.Trigger == "" {
				t.Errorf("event rule %s has no trigger", r.ID)
			}
		default:
			t.Errorf("rule %s has unknown kind %d", r.ID, r.Kind)
		}
	}
}

func TestRuleByID(t *testing.T) {
	if _, ok := RuleByID("first_assessment"); !ok {
		t.Error("first_assessment not found")
	}
	if _, ok := RuleByID("nonexistent"); ok {
		t.Error("lookup of unknown id succeeded")
	}
}

func TestTimeOfDayTrigger(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, TriggerNightOwl},
		{4, TriggerNightOwl},
		{5, TriggerEarlyBird},
		{8, TriggerEarlyBird},
		{9, ""},
		{14, ""},
		{23, ""},
	}

	for _, tt := range tests {
		if got := TimeOfDayTrigger(tt.hour); got != tt.want {
			t.Errorf("TimeOfDayTrigger(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
