package letters

import "testing"

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{19, "Nineteen"},
		{40, "Forty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{118, "One Hundred Eighteen"},
		{1000, "One Thousand"},
		{1234, "One Thousand Two Hundred Thirty Four"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{2500000, "Twenty Five Lakh"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{120000000, "Twelve Crore"},
	}

	for _, tc := range cases {
		if got := AmountInWords(tc.amount); got != tc.want {
			t.Fatalf("AmountInWords(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestRupeesInWords(t *testing.T) {
	if got := RupeesInWords(1200000); got != "Rupees Twelve Lakh Only" {
		t.Fatalf("unexpected phrasing: %q", got)
	}
}
