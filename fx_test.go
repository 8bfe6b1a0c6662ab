package perf

import "testing"

func TestConvertToEur(t *testing.T) {
	// 1 EUR = 1.08 USD → 108 USD is 100 EUR.
	got := ConvertToEur(dec("108"), "USD", dec("1.08"))
	assertDecimalExact(t, "ConvertToEur", got, "100")

	t.Run("eur passes through unrounded", func(t *testing.T) {
		got := ConvertToEur(dec("123.456"), "EUR", dec("1.08"))
		assertDecimalExact(t, "ConvertToEur", got, "123.456")
	})

	t.Run("zero rate is neutral", func(t *testing.T) {
		got := ConvertToEur(dec("108"), "USD", dec("0"))
		assertDecimalExact(t, "ConvertToEur", got, "0")
	})
}

func TestConvertFromEur(t *testing.T) {
	got := ConvertFromEur(dec("100"), "USD", dec("1.08"))
	assertDecimalExact(t, "ConvertFromEur", got, "108")

	t.Run("rounds to a monetary amount", func(t *testing.T) {
		got := ConvertFromEur(dec("100"), "JPY", dec("161.2345"))
		assertDecimalExact(t, "ConvertFromEur", got, "16123.45")
	})
}

func TestInvertRate(t *testing.T) {
	// 1 EUR = 1.08 USD → 1 USD ≈ 0.92592593 EUR, at FX-rate precision.
	got := InvertRate(dec("1.08"))
	assertDecimalExact(t, "InvertRate", got, "0.92592593")

	t.Run("round trip is near identity", func(t *testing.T) {
		back := InvertRate(InvertRate(dec("1.08")))
		assertDecimal(t, "InvertRate twice", back, "1.08", "0.0000001")
	})
}
