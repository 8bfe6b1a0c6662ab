package perf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleTrade(side Side) Trade {
	return Trade{
		Side:       side,
		Quantity:   dec("10"),
		Price:      dec("100"),
		Currency:   "EUR",
		Commission: dec("5"),
		Tax:        dec("2"),
	}
}

func TestPreviewCashImpact(t *testing.T) {
	balances := Balances{"EUR": dec("5000")}

	t.Run("buy pays gross plus costs", func(t *testing.T) {
		p := PreviewCashImpact(sampleTrade(Buy), balances)
		if !p.TradeAmount.Equal(EUR(-1007)) {
			t.Errorf("TradeAmount = %s, want %s", p.TradeAmount, EUR(-1007))
		}
		if !p.ProjectedBalance.Equal(EUR(3993)) {
			t.Errorf("ProjectedBalance = %s, want %s", p.ProjectedBalance, EUR(3993))
		}
		if !p.Sufficient {
			t.Error("a funded buy should be sufficient")
		}
	})

	t.Run("sell receives gross minus costs", func(t *testing.T) {
		p := PreviewCashImpact(sampleTrade(Sell), balances)
		if !p.TradeAmount.Equal(EUR(993)) {
			t.Errorf("TradeAmount = %s, want %s", p.TradeAmount, EUR(993))
		}
	})

	t.Run("cover behaves like buy, short like sell", func(t *testing.T) {
		if p := PreviewCashImpact(sampleTrade(Cover), balances); !p.TradeAmount.IsNegative() {
			t.Errorf("cover TradeAmount = %s, want negative", p.TradeAmount)
		}
		if p := PreviewCashImpact(sampleTrade(Short), balances); !p.TradeAmount.IsPositive() {
			t.Errorf("short TradeAmount = %s, want positive", p.TradeAmount)
		}
	})

	t.Run("missing currency counts as zero balance", func(t *testing.T) {
		p := PreviewCashImpact(sampleTrade(Buy), Balances{})
		if !p.CurrentBalance.IsZero() {
			t.Errorf("CurrentBalance = %s, want zero", p.CurrentBalance)
		}
		if p.Sufficient {
			t.Error("a buy against an empty account cannot be sufficient")
		}
	})

	t.Run("movement is rounded to a monetary amount", func(t *testing.T) {
		trade := Trade{Side: Buy, Quantity: dec("3"), Price: dec("33.333333"), Currency: "EUR",
			Commission: decimal.Zero, Tax: decimal.Zero}
		p := PreviewCashImpact(trade, balances)
		if !p.TradeAmount.Equal(EUR(-100)) {
			t.Errorf("TradeAmount = %s, want %s", p.TradeAmount, EUR(-100))
		}
	})
}

func TestValidateCashSufficiency(t *testing.T) {
	t.Run("funded buy passes with preview", func(t *testing.T) {
		p, err := ValidateCashSufficiency(sampleTrade(Buy), Balances{"EUR": dec("2000")})
		if err != nil {
			t.Fatalf("ValidateCashSufficiency() error = %v", err)
		}
		if !p.ProjectedBalance.Equal(EUR(993)) {
			t.Errorf("ProjectedBalance = %s, want %s", p.ProjectedBalance, EUR(993))
		}
	})

	t.Run("underfunded buy is rejected with amounts", func(t *testing.T) {
		_, err := ValidateCashSufficiency(sampleTrade(Buy), Balances{"EUR": dec("1000")})
		if err == nil {
			t.Fatal("expected an insufficient cash error")
		}
		var insufficient *InsufficientCashError
		if !errors.As(err, &insufficient) {
			t.Fatalf("error = %T, want *InsufficientCashError", err)
		}
		want := fmt.Sprintf("insufficient EUR balance: have %s, need %s", EUR(1000), EUR(1007))
		if err.Error() != want {
			t.Errorf("error message = %q, want %q", err.Error(), want)
		}
	})

	t.Run("sell and short always pass", func(t *testing.T) {
		for _, side := range []Side{Sell, Short} {
			if _, err := ValidateCashSufficiency(sampleTrade(side), Balances{}); err != nil {
				t.Errorf("%s: error = %v, want nil", side, err)
			}
		}
	})

	t.Run("cover is validated like a buy", func(t *testing.T) {
		if _, err := ValidateCashSufficiency(sampleTrade(Cover), Balances{}); err == nil {
			t.Error("an unfunded cover should be rejected")
		}
	})
}

// Adding cash can never turn a passing buy into a failing one.
func TestValidateCashSufficiency_Monotonic(t *testing.T) {
	trade := sampleTrade(Buy) // needs 1007 EUR
	passed := false
	for _, balance := range []string{"0", "500", "1006.99", "1007", "1500", "100000"} {
		_, err := ValidateCashSufficiency(trade, Balances{"EUR": dec(balance)})
		if err == nil {
			passed = true
		} else if passed {
			t.Fatalf("validation failed at balance %s after passing at a lower one", balance)
		}
	}
	if !passed {
		t.Fatal("the largest balance should have passed")
	}
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{"buy": Buy, "SELL": Sell, " short ": Short, "Cover": Cover} {
		got, err := ParseSide(in)
		if err != nil || got != want {
			t.Errorf("ParseSide(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseSide("hold"); err == nil {
		t.Error("ParseSide should reject unknown sides")
	}
}
