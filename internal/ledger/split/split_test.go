package split

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		amount  float64
		members []Member
		custom  map[string]float64
		want    map[string]float64
	}{
		{
			name:    "equal split between two",
			policy:  PolicyEqual,
			amount:  100,
			members: []Member{{ID: "a"}, {ID: "b"}},
			want:    map[string]float64{"a": 50, "b": 50},
		},
		{
			name:    "equal split among three does not lose money",
			policy:  PolicyEqual,
			amount:  100,
			members: []Member{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			want: map[string]float64{
				"a": 100.0 / 3, "b": 100.0 / 3, "c": 100.0 / 3,
			},
		},
		{
			name:   "by days weights by attendance",
			policy: PolicyByDays,
			amount: 100,
			members: []Member{
				{ID: "a", DaysPresent: 2},
				{ID: "b", DaysPresent: 3},
			},
			want: map[string]float64{"a": 40, "b": 60},
		},
		{
			name:   "by days with zero attendance falls back to equal",
			policy: PolicyByDays,
			amount: 90,
			members: []Member{
				{ID: "a", DaysPresent: 0},
				{ID: "b", DaysPresent: 0},
				{ID: "c", DaysPresent: 0},
			},
			want: map[string]float64{"a": 30, "b": 30, "c": 30},
		},
		{
			name:    "custom percentages",
			policy:  PolicyCustom,
			amount:  200,
			members: []Member{{ID: "a"}, {ID: "b"}},
			custom:  map[string]float64{"a": 25, "b": 75},
			want:    map[string]float64{"a": 50, "b": 150},
		},
		{
			name:    "custom missing percentage gets equal share",
			policy:  PolicyCustom,
			amount:  100,
			members: []Member{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
			custom:  map[string]float64{"a": 40, "b": 20},
			want:    map[string]float64{"a": 40, "b": 20, "c": 25, "d": 25},
		},
		{
			name:    "custom percentages taken literally even if they do not sum to 100",
			policy:  PolicyCustom,
			amount:  100,
			members: []Member{{ID: "a"}, {ID: "b"}},
			custom:  map[string]float64{"a": 30, "b": 30},
			want:    map[string]float64{"a": 30, "b": 30},
		},
		{
			name:    "exact amounts",
			policy:  PolicyExact,
			amount:  100,
			members: []Member{{ID: "a"}, {ID: "b"}},
			custom:  map[string]float64{"a": 70.5, "b": 29.5},
			want:    map[string]float64{"a": 70.5, "b": 29.5},
		},
		{
			name:    "exact missing entry defaults to zero",
			policy:  PolicyExact,
			amount:  100,
			members: []Member{{ID: "a"}, {ID: "b"}},
			custom:  map[string]float64{"a": 100},
			want:    map[string]float64{"a": 100, "b": 0},
		},
		{
			name:    "unknown policy resolves as equal",
			policy:  Policy("whatever"),
			amount:  60,
			members: []Member{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			want:    map[string]float64{"a": 20, "b": 20, "c": 20},
		},
	}

	factory := NewFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := factory.Create(tt.policy).Resolve(tt.amount, tt.members, tt.custom)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d shares, want %d", len(got), len(tt.want))
			}
			for id, want := range tt.want {
				if !approxEqual(got[id], want) {
					t.Errorf("share for %s = %v, want %v", id, got[id], want)
				}
			}
		})
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		amount  float64
		members []Member
		wantErr error
	}{
		{"no members", PolicyEqual, 100, nil, ErrNoMembers},
		{"zero amount", PolicyEqual, 0, []Member{{ID: "a"}}, ErrNonPositiveAmount},
		{"negative amount", PolicyByDays, -5, []Member{{ID: "a", DaysPresent: 1}}, ErrNonPositiveAmount},
		{"custom with no members", PolicyCustom, 100, nil, ErrNoMembers},
		{"exact with no members", PolicyExact, 100, nil, ErrNoMembers},
	}

	factory := NewFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := factory.Create(tt.policy).Resolve(tt.amount, tt.members, nil)
			if err != tt.wantErr {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// Shares must sum to the expense amount for every policy that promises
// reconciliation (equal, by_days, custom with percentages summing to 100).
func TestResolveSumProperty(t *testing.T) {
	members := []Member{
		{ID: "a", DaysPresent: 2},
		{ID: "b", DaysPresent: 3},
		{ID: "c", DaysPresent: 1},
	}
	custom := map[string]float64{"a": 50, "b": 30, "c": 20}

	factory := NewFactory()
	for _, policy := range []Policy{PolicyEqual, PolicyByDays, PolicyCustom} {
		t.Run(string(policy), func(t *testing.T) {
			shares, err := factory.Create(policy).Resolve(173.31, members, custom)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var sum float64
			for _, share := range shares {
				sum += share
			}
			if !approxEqual(sum, 173.31) {
				t.Errorf("shares sum to %v, want 173.31", sum)
			}
		})
	}
}

func TestFactoryPolicies(t *testing.T) {
	factory := NewFactory()
	for _, policy := range []Policy{PolicyEqual, PolicyByDays, PolicyCustom, PolicyExact} {
		if got := factory.Create(policy).Policy(); got != policy {
			t.Errorf("factory.Create(%q).Policy() = %q", policy, got)
		}
	}
	if got := factory.CreateFromString("nonsense").Policy(); got != PolicyEqual {
		t.Errorf("unknown policy tag resolved to %q, want %q", got, PolicyEqual)
	}
}
