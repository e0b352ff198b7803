package market

import (
	"regexp"
	"testing"
	"time"
)

type scripted struct {
	ints   []int
	floats []float64
}

func (s *scripted) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scripted) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		fee  int
		want Congestion
	}{
		{10, CongestionLow},
		{15, CongestionLow},
		{16, CongestionMedium},
		{25, CongestionMedium},
		{26, CongestionHigh},
		{29, CongestionHigh},
	}
	for _, tc := range cases {
		if got := Classify(tc.fee); got != tc.want {
			t.Fatalf("Classify(%d)=%s, want %s", tc.fee, got, tc.want)
		}
	}
}

func TestStatus_EachTier(t *testing.T) {
	clock := time.UnixMilli(1_700_000_000_000)
	gasRe := regexp.MustCompile(`^\d+ gwei$`)

	cases := []struct {
		draw    int
		gas     string
		tier    Congestion
		ethDraw float64
		eth     string
	}{
		{0, "10 gwei", CongestionLow, 0, "$2800.00"},
		{10, "20 gwei", CongestionMedium, 0.5, "$2850.00"},
		{19, "29 gwei", CongestionHigh, 0.99999, "$2900.00"},
	}
	for _, tc := range cases {
		g := NewGenerator(&scripted{ints: []int{tc.draw}, floats: []float64{tc.ethDraw}}, func() time.Time { return clock })
		st := g.Status()
		if st.GasPrice != tc.gas || !gasRe.MatchString(st.GasPrice) {
			t.Fatalf("gas price: got %q want %q", st.GasPrice, tc.gas)
		}
		if st.Congestion != tc.tier {
			t.Fatalf("tier: got %s want %s", st.Congestion, tc.tier)
		}
		if st.EthPrice != tc.eth {
			t.Fatalf("eth price: got %q want %q", st.EthPrice, tc.eth)
		}
		if st.BlockNumber != BlockNumberAt(clock) {
			t.Fatalf("block number mismatch: %d", st.BlockNumber)
		}
	}
}

func TestBlockNumberAt(t *testing.T) {
	base := time.UnixMilli(0)
	if got := BlockNumberAt(base); got != 19283700 {
		t.Fatalf("epoch block: %d", got)
	}
	if got := BlockNumberAt(base.Add(11999 * time.Millisecond)); got != 19283700 {
		t.Fatalf("same slot expected, got %d", got)
	}
	if got := BlockNumberAt(base.Add(12 * time.Second)); got != 19283701 {
		t.Fatalf("next slot expected, got %d", got)
	}

	now := time.Now()
	prev := BlockNumberAt(now)
	for i := 1; i <= 50; i++ {
		cur := BlockNumberAt(now.Add(time.Duration(i) * 5 * time.Second))
		if cur < prev {
			t.Fatalf("block number went backwards: %d < %d", cur, prev)
		}
		prev = cur
	}
}
