package catalog

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/dataset"
)

func rentalRows(name string, rents ...float64) []dataset.RentalRow {
	rows := make([]dataset.RentalRow, 0, len(rents))
	for _, rent := range rents {
		rows = append(rows, dataset.RentalRow{Neighborhood: name, RentAvg: rent})
	}
	return rows
}

func crimeRows(name string, count int) []dataset.CrimeRow {
	rows := make([]dataset.CrimeRow, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, dataset.CrimeRow{Neighborhood: name})
	}
	return rows
}

func TestBuildNeighborhoodsSafeQuietNeighborhood(t *testing.T) {
	t.Parallel()

	profiles, warnings := buildNeighborhoods(
		rentalRows("Sea Cliff", 2000),
		nil,
		[]dataset.WalkabilityRow{{Neighborhood: "Sea Cliff", WalkIndex: 14}},
		zap.NewNop(),
	)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}

	p := profiles["Sea Cliff"]
	if p == nil {
		t.Fatalf("expected a profile for Sea Cliff")
	}
	if p.SafetyScore != 100 {
		t.Fatalf("expected safety 100 with zero crimes, got %v", p.SafetyScore)
	}
	if p.ProtectionNeed != NeedLow {
		t.Fatalf("expected Low protection need, got %v", p.ProtectionNeed)
	}
	if p.BudgetLimit != 100 {
		t.Fatalf("expected budget 100 for rent 2000, got %v", p.BudgetLimit)
	}
	if p.WalkabilityScore != 70 {
		t.Fatalf("expected walkability 70 for walk index 14, got %v", p.WalkabilityScore)
	}
}

func TestProtectionNeedBoundariesAreStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		safety float64
		expect ProtectionNeed
	}{
		{39.9, NeedVeryHigh},
		{40, NeedHigh},
		{59.9, NeedHigh},
		{60, NeedMedium},
		{79.9, NeedMedium},
		{80, NeedLow},
		{0, NeedVeryHigh},
		{100, NeedLow},
	}

	for _, tt := range tests {
		if got := protectionNeedFor(tt.safety); got != tt.expect {
			t.Fatalf("protectionNeedFor(%v) = %v, expected %v", tt.safety, got, tt.expect)
		}
	}
}

func TestSafetyScoreMonotonicInCrimeCount(t *testing.T) {
	t.Parallel()

	prev := 101.0
	for count := 0; count <= 250; count += 10 {
		p, err := buildNeighborhood("x", count, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error at count %d: %v", count, err)
		}
		if p.SafetyScore > prev {
			t.Fatalf("safety score increased with crime count: %v -> %v at %d", prev, p.SafetyScore, count)
		}
		if p.SafetyScore < 0 || p.SafetyScore > 100 {
			t.Fatalf("safety score out of range: %v", p.SafetyScore)
		}
		prev = p.SafetyScore
	}

	// 250 incidents exceed the normalization bound and clamp to zero.
	p, err := buildNeighborhood("x", 250, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SafetyScore != 0 {
		t.Fatalf("expected clamped safety 0, got %v", p.SafetyScore)
	}
}

func TestBudgetLimitNeverBelowFloor(t *testing.T) {
	t.Parallel()

	for _, rent := range []float64{0, 100, 999, 1000} {
		profiles, _ := buildNeighborhoods(rentalRows("x", rent), nil, nil, zap.NewNop())
		p := profiles["x"]
		if p == nil {
			t.Fatalf("expected profile for rent %v", rent)
		}
		if p.BudgetLimit < 50 {
			t.Fatalf("budget %v below floor for rent %v", p.BudgetLimit, rent)
		}
	}
}

func TestBuildNeighborhoodsFallbacks(t *testing.T) {
	t.Parallel()

	// No walkability rows: fall back to walk index 10 -> walkability 50.
	profiles, _ := buildNeighborhoods(rentalRows("Outer Lands", 3000), nil, nil, zap.NewNop())
	p := profiles["Outer Lands"]
	if p.WalkIndex != 10 {
		t.Fatalf("expected fallback walk index 10, got %v", p.WalkIndex)
	}
	if p.WalkabilityScore != 50 {
		t.Fatalf("expected walkability 50, got %v", p.WalkabilityScore)
	}
}

func TestBuildNeighborhoodsAveragesMatchingRows(t *testing.T) {
	t.Parallel()

	profiles, _ := buildNeighborhoods(
		rentalRows("Mission", 3000, 2000),
		append(crimeRows("Mission", 40), crimeRows("Elsewhere", 10)...),
		[]dataset.WalkabilityRow{
			{Neighborhood: "Mission", WalkIndex: 16},
			{Neighborhood: "Mission", WalkIndex: 18},
			{Neighborhood: "Elsewhere", WalkIndex: 2},
		},
		zap.NewNop(),
	)

	p := profiles["Mission"]
	if p == nil {
		t.Fatalf("expected profile for Mission")
	}
	if p.CrimeCount != 40 {
		t.Fatalf("expected crime count 40, got %d", p.CrimeCount)
	}
	if p.SafetyScore != 80 {
		t.Fatalf("expected safety 80 for 40 incidents, got %v", p.SafetyScore)
	}
	if p.AvgRent != 2500 {
		t.Fatalf("expected average rent 2500, got %v", p.AvgRent)
	}
	if p.WalkIndex != 17 {
		t.Fatalf("expected mean walk index 17, got %v", p.WalkIndex)
	}
	if p.WalkabilityScore != 85 {
		t.Fatalf("expected walkability 85, got %v", p.WalkabilityScore)
	}
	if _, ok := profiles["Elsewhere"]; ok {
		t.Fatalf("neighborhood absent from rental table must not get a profile")
	}
}
