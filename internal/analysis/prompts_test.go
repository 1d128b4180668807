package analysis

import (
	"testing"

	"zonecoach/internal/store"
)

// fullProfile returns a completely specified, non-estimated profile
func fullProfile() *store.Profile {
	return &store.Profile{
		UserID:           "athlete-1",
		RestingHeartRate: floatPtr(52),
		MaxHeartRate:     floatPtr(188),
		BodyWeightKg:     floatPtr(70),
		HeightCm:         floatPtr(178),
		Age:              intPtr(34),
		FitnessLevel:     strPtr("intermediate"),
		WeeklyMileageKm:  floatPtr(55),
	}
}

func TestGenerateUpdatePrompts(t *testing.T) {
	params := DefaultParams()

	t.Run("complete profile scores exactly 100 with no prompts", func(t *testing.T) {
		set := GenerateUpdatePrompts(fullProfile(), params)
		if set.OverallScore != 100 {
			t.Errorf("OverallScore = %d, want 100", set.OverallScore)
		}
		if len(set.Prompts) != 0 {
			t.Errorf("Prompts = %v, want none", set.Prompts)
		}
	})

	t.Run("missing core fields drops score below 60", func(t *testing.T) {
		p := fullProfile()
		p.MaxHeartRate = nil
		p.RestingHeartRate = nil
		p.BodyWeightKg = nil
		p.Age = nil

		set := GenerateUpdatePrompts(p, params)
		if set.OverallScore >= 60 {
			t.Errorf("OverallScore = %d, want < 60", set.OverallScore)
		}
		if len(set.Prompts) != 4 {
			t.Errorf("len(Prompts) = %d, want 4", len(set.Prompts))
		}
	})

	t.Run("estimated fields count as missing", func(t *testing.T) {
		p := fullProfile()
		p.MaxHREstimated = true

		set := GenerateUpdatePrompts(p, params)
		if len(set.Prompts) != 1 {
			t.Fatalf("len(Prompts) = %d, want 1", len(set.Prompts))
		}
		if set.Prompts[0].Field != FieldMaxHeartRate {
			t.Errorf("Field = %q, want %q", set.Prompts[0].Field, FieldMaxHeartRate)
		}
		if set.OverallScore != 100-params.DeductionHigh {
			t.Errorf("OverallScore = %d, want %d", set.OverallScore, 100-params.DeductionHigh)
		}
	})

	t.Run("prompts ordered high to low", func(t *testing.T) {
		set := GenerateUpdatePrompts(&store.Profile{}, params)

		if len(set.Prompts) != len(trackedFields) {
			t.Fatalf("len(Prompts) = %d, want %d", len(set.Prompts), len(trackedFields))
		}

		rank := map[string]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
		for i := 1; i < len(set.Prompts); i++ {
			if rank[set.Prompts[i].Priority] < rank[set.Prompts[i-1].Priority] {
				t.Errorf("prompt %d (%s) out of order after %s",
					i, set.Prompts[i].Priority, set.Prompts[i-1].Priority)
			}
		}

		// Max heart rate (high) comes before height (low)
		var maxHRIdx, heightIdx int
		for i, p := range set.Prompts {
			switch p.Field {
			case FieldMaxHeartRate:
				maxHRIdx = i
			case FieldHeightCm:
				heightIdx = i
			}
		}
		if maxHRIdx >= heightIdx {
			t.Errorf("max heart rate prompt (%d) should come before height prompt (%d)", maxHRIdx, heightIdx)
		}
		if set.Prompts[maxHRIdx].Priority != PriorityHigh {
			t.Errorf("max heart rate priority = %q, want high", set.Prompts[maxHRIdx].Priority)
		}
		if set.Prompts[heightIdx].Priority != PriorityLow {
			t.Errorf("height priority = %q, want low", set.Prompts[heightIdx].Priority)
		}
	})

	t.Run("prompts carry messages and help text", func(t *testing.T) {
		set := GenerateUpdatePrompts(&store.Profile{}, params)
		for _, p := range set.Prompts {
			if p.Message == "" {
				t.Errorf("prompt %q has empty message", p.Field)
			}
			if p.HelpText == "" {
				t.Errorf("prompt %q has empty help text", p.Field)
			}
		}
	})

	t.Run("score floors at zero", func(t *testing.T) {
		big := params
		big.DeductionHigh = 50
		big.DeductionMedium = 50
		big.DeductionLow = 50

		set := GenerateUpdatePrompts(&store.Profile{}, big)
		if set.OverallScore != 0 {
			t.Errorf("OverallScore = %d, want 0", set.OverallScore)
		}
	})
}
