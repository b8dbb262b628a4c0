package database

import (
	"github.com/brianvoe/gofakeit/v6"
)

// FakeCustomerAttributes returns a complete, realistic attribute set for a customer
func FakeCustomerAttributes() map[string]string {
	first, last := gofakeit.FirstName(), gofakeit.LastName()
	company := gofakeit.Company()

	attrs := map[string]string{
		"first_name":      first,
		"last_name":       last,
		"paying_customer": "0",
	}
	if gofakeit.Bool() {
		attrs["paying_customer"] = "1"
	}

	for _, prefix := range []string{"billing_", "shipping_"} {
		attrs[prefix+"first_name"] = first
		attrs[prefix+"last_name"] = last
		attrs[prefix+"company"] = company
		attrs[prefix+"address_1"] = gofakeit.Street()
		attrs[prefix+"address_2"] = ""
		attrs[prefix+"city"] = gofakeit.City()
		attrs[prefix+"state"] = gofakeit.StateAbr()
		attrs[prefix+"postcode"] = gofakeit.Zip()
		attrs[prefix+"country"] = gofakeit.CountryAbr()
		attrs[prefix+"phone"] = gofakeit.Phone()
	}
	attrs["billing_email"] = gofakeit.Email()

	return attrs
}
