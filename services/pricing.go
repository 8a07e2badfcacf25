// services/pricing.go
package services

import "math"

// Boat types and formulas sold on the site. The names follow the
// commercial offer (journée, golden hour, privatisation, basse saison).
const (
	BoatYacht     = "yacht"
	BoatCatamaran = "catamaran"

	FormulaJournee       = "journee"
	FormulaGolden        = "golden"
	FormulaPrivatisation = "privatisation"
	FormulaBasseSaison   = "basseseason"
)

// DepositRate is the share of the total collected to confirm a
// reservation. The remainder is due on the day of the cruise.
const DepositRate = 0.30

type rate struct {
	Adult int
	Child int
	Flat  bool // flat rates ignore party size (full-boat privatisation)
}

type priceKey struct {
	BoatType string
	Formula  string
}

// priceTable is the single source of the tariff. The reservation form,
// the summary view and the submission handler all price through it.
var priceTable = map[priceKey]rate{
	{BoatYacht, FormulaJournee}:           {Adult: 153, Child: 77},
	{BoatYacht, FormulaGolden}:            {Adult: 128, Child: 64},
	{BoatYacht, FormulaPrivatisation}:     {Adult: 1020, Flat: true},
	{BoatCatamaran, FormulaJournee}:       {Adult: 128, Child: 64},
	{BoatCatamaran, FormulaGolden}:        {Adult: 111, Child: 55},
	{BoatCatamaran, FormulaBasseSaison}:   {Adult: 102, Child: 51},
	{BoatCatamaran, FormulaPrivatisation}: {Adult: 850, Flat: true},
}

// ComputePrice returns the total price and the deposit, in euros, for a
// party on the given boat and formula. An unknown (boatType, formula)
// pair prices to zero; callers validate the enums before pricing.
func ComputePrice(boatType, formula string, adults, children int) (total int, deposit int) {
	r, ok := priceTable[priceKey{boatType, formula}]
	if !ok {
		return 0, 0
	}
	if r.Flat {
		total = r.Adult
	} else {
		total = r.Adult*adults + r.Child*children
	}
	deposit = int(math.Round(float64(total) * DepositRate))
	return total, deposit
}

// ValidBoatType reports whether s names a boat the operator sails.
func ValidBoatType(s string) bool {
	return s == BoatYacht || s == BoatCatamaran
}

// ValidFormula reports whether formula exists for boatType. The
// basse-saison offer only runs on the catamaran.
func ValidFormula(boatType, formula string) bool {
	_, ok := priceTable[priceKey{boatType, formula}]
	return ok
}

// PricingEntry is one row of the public tariff listing.
type PricingEntry struct {
	BoatType   string `json:"boat_type"`
	Formula    string `json:"formula"`
	AdultPrice int    `json:"adult_price"`
	ChildPrice int    `json:"child_price,omitempty"`
	FlatRate   bool   `json:"flat_rate"`
}

// PricingTable returns the full tariff in a stable order, for the
// pricing page and the reservation form.
func PricingTable() []PricingEntry {
	order := []priceKey{
		{BoatYacht, FormulaJournee},
		{BoatYacht, FormulaGolden},
		{BoatYacht, FormulaPrivatisation},
		{BoatCatamaran, FormulaJournee},
		{BoatCatamaran, FormulaGolden},
		{BoatCatamaran, FormulaBasseSaison},
		{BoatCatamaran, FormulaPrivatisation},
	}
	out := make([]PricingEntry, 0, len(order))
	for _, k := range order {
		r := priceTable[k]
		out = append(out, PricingEntry{
			BoatType:   k.BoatType,
			Formula:    k.Formula,
			AdultPrice: r.Adult,
			ChildPrice: r.Child,
			FlatRate:   r.Flat,
		})
	}
	return out
}
