package letters

import "strings"

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func belowHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + " " + onesWords[n%10]
}

func belowThousand(n int64) string {
	if n < 100 {
		return belowHundred(n)
	}
	out := onesWords[n/100] + " Hundred"
	if n%100 != 0 {
		out += " " + belowHundred(n%100)
	}
	return out
}

// AmountInWords spells a non-negative rupee amount in the Indian numbering
// system (hundred, thousand, lakh, crore).
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	if n >= 1e7 {
		parts = append(parts, AmountInWords(n/1e7)+" Crore")
		n %= 1e7
	}
	if n >= 1e5 {
		parts = append(parts, belowHundred(n/1e5)+" Lakh")
		n %= 1e5
	}
	if n >= 1000 {
		parts = append(parts, belowHundred(n/1000)+" Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

// RupeesInWords is the phrasing used on letters and certificates.
func RupeesInWords(n int64) string {
	return "Rupees " + AmountInWords(n) + " Only"
}
