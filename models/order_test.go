package models

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitSetIntent(t *testing.T) {

	Convey("Valid intents are accepted", t, func() {
		order, err := NewOrder(IntentCapture)
		So(err, ShouldBeNil)
		So(order.Intent(), ShouldEqual, IntentCapture)

		So(order.SetIntent(IntentAuthorize), ShouldBeNil)
		So(order.Intent(), ShouldEqual, IntentAuthorize)
	})

	Convey("Any other intent is rejected", t, func() {
		_, err := NewOrder("SETTLE")
		So(err, ShouldEqual, ErrInvalidIntent)

		order, _ := NewOrder(IntentCapture)
		So(order.SetIntent(""), ShouldEqual, ErrInvalidIntent)
		So(order.SetIntent("capture"), ShouldEqual, ErrInvalidIntent)
		So(order.Intent(), ShouldEqual, IntentCapture)
	})
}

func TestUnitAddPurchaseUnit(t *testing.T) {

	Convey("A single purchase unit is accepted", t, func() {
		order, _ := NewOrder(IntentCapture)
		amount, _ := NewAmount("100.00", "USD")

		So(order.AddPurchaseUnit(NewPurchaseUnit(amount)), ShouldBeNil)
		So(order.PurchaseUnits(), ShouldHaveLength, 1)
	})

	Convey("A second purchase unit is always rejected", t, func() {
		order, _ := NewOrder(IntentCapture)
		amount, _ := NewAmount("100.00", "USD")

		So(order.AddPurchaseUnit(NewPurchaseUnit(amount)), ShouldBeNil)
		So(order.AddPurchaseUnit(NewPurchaseUnit(amount)), ShouldEqual, ErrTooManyPurchaseUnits)
		So(order.PurchaseUnits(), ShouldHaveLength, 1)
	})
}

func TestUnitAddItem(t *testing.T) {

	Convey("Items in the purchase unit currency are appended", t, func() {
		amount, _ := NewAmount("30.00", "GBP")
		purchaseUnit := NewPurchaseUnit(amount)

		itemAmount, _ := NewAmount("15.00", "GBP")
		item := &Item{Name: "certified copy", UnitAmount: itemAmount, Quantity: "2"}

		So(purchaseUnit.AddItem(item), ShouldBeNil)
		So(purchaseUnit.Items(), ShouldHaveLength, 1)
	})

	Convey("Items in a different currency are rejected", t, func() {
		amount, _ := NewAmount("30.00", "GBP")
		purchaseUnit := NewPurchaseUnit(amount)

		itemAmount, _ := NewAmount("15.00", "EUR")
		item := &Item{Name: "certified copy", UnitAmount: itemAmount, Quantity: "2"}

		So(purchaseUnit.AddItem(item), ShouldEqual, ErrCurrencyMismatch)
		So(purchaseUnit.Items(), ShouldBeEmpty)
	})

	Convey("Items with no amount are rejected", t, func() {
		amount, _ := NewAmount("30.00", "GBP")
		purchaseUnit := NewPurchaseUnit(amount)

		So(purchaseUnit.AddItem(&Item{Name: "certified copy", Quantity: "1"}), ShouldEqual, ErrCurrencyMismatch)
	})
}

func TestUnitMarshalCanonical(t *testing.T) {

	Convey("An order with no purchase units cannot be serialized", t, func() {
		order, _ := NewOrder(IntentCapture)

		_, err := order.MarshalCanonical()
		So(err, ShouldEqual, ErrMissingPurchaseUnit)
	})

	Convey("Canonical form carries intent and purchase units with no null keys", t, func() {
		order, _ := NewOrder(IntentCapture)
		amount, _ := NewAmount("100.00", "USD")
		So(order.AddPurchaseUnit(NewPurchaseUnit(amount)), ShouldBeNil)

		body, err := order.MarshalCanonical()
		So(err, ShouldBeNil)
		So(string(body), ShouldEqual, `{"intent":"CAPTURE","purchase_units":[{"amount":{"value":"100.00","currency_code":"USD"}}]}`)
	})

	Convey("Serialization is repeatable and round-trips", t, func() {
		order, _ := NewOrder(IntentAuthorize)
		amount, _ := NewAmount("25.50", "GBP")
		purchaseUnit := NewPurchaseUnit(amount)
		purchaseUnit.ReferenceID = "INV-42"
		So(order.AddPurchaseUnit(purchaseUnit), ShouldBeNil)
		order.SetApplicationContext(&ApplicationContext{BrandName: "Companies House", ReturnURL: "https://example.com/return"})

		first, err := order.MarshalCanonical()
		So(err, ShouldBeNil)
		second, err := order.MarshalCanonical()
		So(err, ShouldBeNil)
		So(string(second), ShouldEqual, string(first))

		var parsed struct {
			Intent        string `json:"intent"`
			PurchaseUnits []struct {
				Amount      Amount `json:"amount"`
				ReferenceID string `json:"reference_id"`
			} `json:"purchase_units"`
			ApplicationContext *ApplicationContext `json:"application_context"`
		}
		So(json.Unmarshal(first, &parsed), ShouldBeNil)
		So(parsed.Intent, ShouldEqual, "AUTHORIZE")
		So(parsed.PurchaseUnits, ShouldHaveLength, 1)
		So(parsed.PurchaseUnits[0].Amount.Value, ShouldEqual, "25.50")
		So(parsed.PurchaseUnits[0].ReferenceID, ShouldEqual, "INV-42")
		So(parsed.ApplicationContext.BrandName, ShouldEqual, "Companies House")
	})

	Convey("Absent application context is omitted entirely", t, func() {
		order, _ := NewOrder(IntentCapture)
		amount, _ := NewAmount("10.00", "USD")
		So(order.AddPurchaseUnit(NewPurchaseUnit(amount)), ShouldBeNil)

		body, _ := order.MarshalCanonical()
		So(string(body), ShouldNotContainSubstring, "application_context")
		So(string(body), ShouldNotContainSubstring, "null")
	})
}
