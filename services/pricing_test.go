package services

import (
	"math"
	"testing"
)

func TestComputePricePerPerson(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		boatType    string
		formula     string
		adults      int
		children    int
		wantTotal   int
		wantDeposit int
	}{
		{"yacht journee family", BoatYacht, FormulaJournee, 2, 1, 153*2 + 77, 115},
		{"yacht golden couple", BoatYacht, FormulaGolden, 2, 0, 256, 77},
		{"catamaran journee", BoatCatamaran, FormulaJournee, 2, 1, 320, 96},
		{"catamaran golden", BoatCatamaran, FormulaGolden, 1, 2, 111 + 2*55, 66},
		{"catamaran basse saison", BoatCatamaran, FormulaBasseSaison, 2, 0, 204, 61},
		{"single adult", BoatCatamaran, FormulaBasseSaison, 1, 0, 102, 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, deposit := ComputePrice(tc.boatType, tc.formula, tc.adults, tc.children)
			if total != tc.wantTotal {
				t.Errorf("total = %d, want %d", total, tc.wantTotal)
			}
			if deposit != tc.wantDeposit {
				t.Errorf("deposit = %d, want %d", deposit, tc.wantDeposit)
			}
		})
	}
}

func TestComputePriceFlatRateIgnoresPartySize(t *testing.T) {
	t.Parallel()

	for _, party := range []struct{ adults, children int }{{1, 0}, {8, 4}, {30, 0}} {
		total, deposit := ComputePrice(BoatYacht, FormulaPrivatisation, party.adults, party.children)
		if total != 1020 {
			t.Errorf("yacht privatisation (%d adults, %d children): total = %d, want 1020",
				party.adults, party.children, total)
		}
		if deposit != 306 {
			t.Errorf("yacht privatisation deposit = %d, want 306", deposit)
		}

		total, _ = ComputePrice(BoatCatamaran, FormulaPrivatisation, party.adults, party.children)
		if total != 850 {
			t.Errorf("catamaran privatisation total = %d, want 850", total)
		}
	}
}

func TestComputePriceDepositIsThirtyPercentRounded(t *testing.T) {
	t.Parallel()

	for _, entry := range PricingTable() {
		for adults := 1; adults <= 5; adults++ {
			total, deposit := ComputePrice(entry.BoatType, entry.Formula, adults, adults-1)
			want := int(math.Round(float64(total) * 0.30))
			if deposit != want {
				t.Errorf("%s/%s adults=%d: deposit = %d, want %d",
					entry.BoatType, entry.Formula, adults, deposit, want)
			}
		}
	}
}

func TestComputePriceUnknownPair(t *testing.T) {
	t.Parallel()

	cases := [][2]string{
		{BoatYacht, FormulaBasseSaison}, // basse saison is catamaran-only
		{"pedalo", FormulaJournee},
		{BoatCatamaran, "sunset"},
		{"", ""},
	}
	for _, c := range cases {
		if total, deposit := ComputePrice(c[0], c[1], 2, 2); total != 0 || deposit != 0 {
			t.Errorf("ComputePrice(%q, %q) = (%d, %d), want (0, 0)", c[0], c[1], total, deposit)
		}
	}
}

func TestValidFormula(t *testing.T) {
	t.Parallel()

	if ValidFormula(BoatYacht, FormulaBasseSaison) {
		t.Error("basse saison must not be valid on the yacht")
	}
	if !ValidFormula(BoatCatamaran, FormulaBasseSaison) {
		t.Error("basse saison must be valid on the catamaran")
	}
	for _, entry := range PricingTable() {
		if !ValidFormula(entry.BoatType, entry.Formula) {
			t.Errorf("table entry %s/%s not reported valid", entry.BoatType, entry.Formula)
		}
	}
}

func TestPricingTableStable(t *testing.T) {
	t.Parallel()

	table := PricingTable()
	if len(table) != 7 {
		t.Fatalf("pricing table has %d entries, want 7", len(table))
	}
	if table[0].BoatType != BoatYacht || table[0].Formula != FormulaJournee || table[0].AdultPrice != 153 {
		t.Errorf("unexpected first entry: %+v", table[0])
	}
}
