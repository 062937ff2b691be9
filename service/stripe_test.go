package service

import (
	"io/ioutil"
	"net/http"
	"net/url"
	"testing"

	"github.com/companieshouse/payment-providers.api.ch.gov.uk/environment"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/models"
	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockStripeService() *StripeService {
	return &StripeService{
		Client:      http.DefaultClient,
		Environment: environment.NewStripeSandboxEnvironment("sk_test_123", "pk_test_123"),
	}
}

func captureFormResponder(sentForm *url.Values, sentHeaders *http.Header, status int, body string) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		raw, _ := ioutil.ReadAll(req.Body)
		form, _ := url.ParseQuery(string(raw))
		*sentForm = form
		*sentHeaders = req.Header
		return httpmock.NewStringResponse(status, body), nil
	}
}

func TestUnitStripeCreateOrder(t *testing.T) {

	Convey("CAPTURE order becomes an automatic payment intent in minor units", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		var sentForm url.Values
		var sentHeaders http.Header
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents",
			captureFormResponder(&sentForm, &sentHeaders, http.StatusOK, `{"id":"pi_123"}`))

		order, _ := models.NewOrder(models.IntentCapture)
		amount, _ := models.NewAmount("100.00", "USD")
		So(order.AddPurchaseUnit(models.NewPurchaseUnit(amount)), ShouldBeNil)

		response, err := createMockStripeService().CreateOrder(order)

		So(err, ShouldBeNil)
		So(response.StatusCode, ShouldEqual, http.StatusOK)
		So(string(response.Body), ShouldEqual, `{"id":"pi_123"}`)
		So(sentForm.Get("amount"), ShouldEqual, "10000")
		So(sentForm.Get("currency"), ShouldEqual, "usd")
		So(sentForm.Get("capture_method"), ShouldEqual, "automatic")
		So(sentForm.Has("description"), ShouldBeFalse)
		So(sentHeaders.Get("Authorization"), ShouldEqual, "Bearer sk_test_123")
		So(sentHeaders.Get("Stripe-Version"), ShouldEqual, "2023-10-16")
		So(sentHeaders.Get("Content-Type"), ShouldEqual, "application/x-www-form-urlencoded")
	})

	Convey("AUTHORIZE order becomes a manual capture payment intent", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		var sentForm url.Values
		var sentHeaders http.Header
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents",
			captureFormResponder(&sentForm, &sentHeaders, http.StatusOK, `{}`))

		order, _ := models.NewOrder(models.IntentAuthorize)
		amount, _ := models.NewAmount("25.50", "GBP")
		So(order.AddPurchaseUnit(models.NewPurchaseUnit(amount)), ShouldBeNil)
		order.SetApplicationContext(&models.ApplicationContext{BrandName: "Companies House"})

		_, err := createMockStripeService().CreateOrder(order)

		So(err, ShouldBeNil)
		So(sentForm.Get("amount"), ShouldEqual, "2550")
		So(sentForm.Get("currency"), ShouldEqual, "gbp")
		So(sentForm.Get("capture_method"), ShouldEqual, "manual")
		So(sentForm.Get("description"), ShouldEqual, "Payment for order")
	})

	Convey("Order with no purchase unit fails before any request is sent", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		order, _ := models.NewOrder(models.IntentCapture)
		response, err := createMockStripeService().CreateOrder(order)

		So(response, ShouldBeNil)
		So(err, ShouldEqual, ErrEmptyOrder)
		So(httpmock.GetTotalCallCount(), ShouldEqual, 0)
	})
}

func TestUnitStripeOrderOperations(t *testing.T) {

	Convey("Order operations hit the Payment Intents endpoints", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		stripeService := createMockStripeService()
		responder := httpmock.NewStringResponder(http.StatusOK, `{"id":"pi_123"}`)

		httpmock.RegisterResponder("GET", "https://api.stripe.com/v1/payment_intents/pi_123", responder)
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents/pi_123/capture", responder)
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents/pi_123/cancel", responder)

		response, err := stripeService.ShowOrder("pi_123")
		So(err, ShouldBeNil)
		So(response.StatusCode, ShouldEqual, http.StatusOK)

		response, err = stripeService.CaptureOrder("pi_123")
		So(err, ShouldBeNil)
		So(response.StatusCode, ShouldEqual, http.StatusOK)

		// capturing an authorization is the same Stripe operation as capturing an order
		response, err = stripeService.CaptureAuthorizeOrder("pi_123")
		So(err, ShouldBeNil)
		So(response.StatusCode, ShouldEqual, http.StatusOK)

		response, err = stripeService.CancelAuthorizeOrder("pi_123")
		So(err, ShouldBeNil)
		So(response.StatusCode, ShouldEqual, http.StatusOK)

		So(httpmock.GetTotalCallCount(), ShouldEqual, 4)
	})
}

func TestUnitStripeAuthorizeOrder(t *testing.T) {

	Convey("Confirm carries the payment method and return URL", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		var sentForm url.Values
		var sentHeaders http.Header
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents/pi_123/confirm",
			captureFormResponder(&sentForm, &sentHeaders, http.StatusOK, `{}`))

		params := map[string]string{
			"payment_method": "pm_card_visa",
			"return_url":     "https://example.com/return",
		}
		response, err := createMockStripeService().AuthorizeOrder("pi_123", params)

		So(err, ShouldBeNil)
		So(response.StatusCode, ShouldEqual, http.StatusOK)
		So(sentForm.Get("payment_method"), ShouldEqual, "pm_card_visa")
		So(sentForm.Get("return_url"), ShouldEqual, "https://example.com/return")
	})

	Convey("Missing required parameters fail before any request is sent", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		response, err := createMockStripeService().AuthorizeOrder("pi_123", map[string]string{"payment_method": "pm_card_visa"})

		So(response, ShouldBeNil)
		So(err.Error(), ShouldEqual, "missing required Stripe parameter [return_url]")
		So(httpmock.GetTotalCallCount(), ShouldEqual, 0)
	})
}

func TestUnitStripeRefunds(t *testing.T) {

	Convey("Full refund sends only the payment intent", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		var sentForm url.Values
		var sentHeaders http.Header
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/refunds",
			captureFormResponder(&sentForm, &sentHeaders, http.StatusOK, `{"id":"re_123"}`))

		response, err := createMockStripeService().RefundPayment("pi_123", &models.RefundRequest{})

		So(err, ShouldBeNil)
		So(response.StatusCode, ShouldEqual, http.StatusOK)
		So(sentForm.Get("payment_intent"), ShouldEqual, "pi_123")
		So(sentForm.Has("amount"), ShouldBeFalse)
		So(sentForm.Has("reason"), ShouldBeFalse)
	})

	Convey("Partial refund flattens amount, reason and metadata", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		var sentForm url.Values
		var sentHeaders http.Header
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/refunds",
			captureFormResponder(&sentForm, &sentHeaders, http.StatusOK, `{}`))

		amount, _ := models.NewAmount("19.99", "USD")
		refund := &models.RefundRequest{
			Amount:      amount,
			InvoiceID:   "INV-42",
			NoteToPayer: "Overcharged",
			Reason:      "requested_by_customer",
		}
		_, err := createMockStripeService().RefundPayment("pi_123", refund)

		So(err, ShouldBeNil)
		So(sentForm.Get("amount"), ShouldEqual, "1999")
		So(sentForm.Get("reason"), ShouldEqual, "requested_by_customer")
		So(sentForm.Get("metadata[invoice_id]"), ShouldEqual, "INV-42")
		So(sentForm.Get("metadata[note_to_payer]"), ShouldEqual, "Overcharged")
	})

	Convey("ShowRefund lists charges for the payment intent", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", "https://api.stripe.com/v1/charges?payment_intent=pi_123",
			httpmock.NewStringResponder(http.StatusOK, `{"object":"list","data":[]}`))

		response, err := createMockStripeService().ShowRefund("pi_123")

		So(err, ShouldBeNil)
		So(response.StatusCode, ShouldEqual, http.StatusOK)
		So(string(response.Body), ShouldEqual, `{"object":"list","data":[]}`)
	})
}
