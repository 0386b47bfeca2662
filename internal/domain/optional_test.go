package domain

import (
	"encoding/json"
	"testing"
)

func TestOptional_AbsentFieldStaysUnset(t *testing.T) {
	var patch GymPatch
	if err := json.Unmarshal([]byte(`{"city":"Berlin"}`), &patch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !patch.City.Set {
		t.Error("expected city to be set")
	}
	if patch.City.Value != "Berlin" {
		t.Errorf("expected city Berlin, got %q", patch.City.Value)
	}
	if patch.GymName.Set {
		t.Error("expected absent gym_name to stay unset")
	}
	if patch.Distance.Set {
		t.Error("expected absent distance to stay unset")
	}
}

func TestOptional_ExplicitNullSetsZeroValue(t *testing.T) {
	var patch GymPatch
	if err := json.Unmarshal([]byte(`{"about":null,"distance":null}`), &patch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !patch.About.Set {
		t.Error("expected explicit null to mark about as set")
	}
	if patch.About.Value != "" {
		t.Errorf("expected zero value for about, got %q", patch.About.Value)
	}
	if !patch.Distance.Set {
		t.Error("expected explicit null to mark distance as set")
	}
	if patch.Distance.Value != 0 {
		t.Errorf("expected zero value for distance, got %v", patch.Distance.Value)
	}
}

func TestOptional_CompositeValues(t *testing.T) {
	var patch TrainerPatch
	body := `{"languages":["en","de"],"skills":{"hatha_yoga":true},"pricing":{"per_session":45.5,"currency":"EUR"}}`
	if err := json.Unmarshal([]byte(body), &patch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !patch.Languages.Set || len(patch.Languages.Value) != 2 {
		t.Errorf("expected two languages, got %v", patch.Languages.Value)
	}
	if !patch.Skills.Set || !patch.Skills.Value.HathaYoga {
		t.Error("expected hatha_yoga skill flag to be true")
	}
	if patch.Skills.Value.StrengthTraining {
		t.Error("expected omitted skill flag to stay false")
	}
	if !patch.Pricing.Set || patch.Pricing.Value.PerSession != 45.5 {
		t.Errorf("unexpected pricing: %+v", patch.Pricing.Value)
	}
	if patch.Status.Set {
		t.Error("expected absent status to stay unset")
	}
}

func TestOptional_InvalidValueReturnsError(t *testing.T) {
	var patch GymPatch
	if err := json.Unmarshal([]byte(`{"distance":"far"}`), &patch); err == nil {
		t.Error("expected type error for string distance")
	}
}
