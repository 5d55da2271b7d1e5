package service

import (
	"testing"

	"github.com/stanleyHayes/stayup-api/internal/model"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

func TestValidateTaxRate(t *testing.T) {
	cases := []struct {
		name string
		rate model.TaxRate
		ok   bool
	}{
		{"valid", model.TaxRate{Country: "GH", Rate: "15.0000"}, true},
		{"valid no decimals", model.TaxRate{Country: "US", Rate: "7"}, true},
		{"valid empty rate", model.TaxRate{Country: "GB"}, true},
		{"missing country", model.TaxRate{Rate: "15.00"}, false},
		{"long country", model.TaxRate{Country: "GHA", Rate: "15.00"}, false},
		{"too many decimals", model.TaxRate{Country: "GH", Rate: "15.00001"}, false},
		{"not a number", model.TaxRate{Country: "GH", Rate: "fifteen"}, false},
		{"negative", model.TaxRate{Country: "GH", Rate: "-5"}, false},
	}
	for _, c := range cases {
		err := validateTaxRate(&c.rate)
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && !errs.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", c.name, err)
		}
	}
}
