package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeProcessorCreatesSession(t *testing.T) {
	var form map[string]string
	var idempotencyKey, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		idempotencyKey = r.Header.Get("Idempotency-Key")
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_123","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_123"}`))
	}))
	defer srv.Close()

	proc, err := NewStripeProcessor("sk_test_123", srv.URL)
	require.NoError(t, err)
	product, _ := Lookup("gentle-roast")

	got, err := proc.CreateSession(context.Background(), SessionRequest{
		Product:    product,
		SuccessURL: "https://roast.example.com/success?product=gentle-roast",
		CancelURL:  "https://roast.example.com/?canceled=true",
		Metadata:   map[string]string{"productType": "gentle-roast"},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", got)
	assert.Equal(t, "Bearer sk_test_123", auth)
	assert.NotEmpty(t, idempotencyKey)
	assert.Equal(t, "payment", form["mode"])
	assert.Equal(t, "card", form["payment_method_types[0]"])
	assert.Equal(t, "usd", form["line_items[0][price_data][currency]"])
	assert.Equal(t, "299", form["line_items[0][price_data][unit_amount]"])
	assert.Equal(t, "😌 Gentle Comedy Roast", form["line_items[0][price_data][product_data][name]"])
	assert.Equal(t, "1", form["line_items[0][quantity]"])
	assert.Equal(t, "gentle-roast", form["metadata[productType]"])
	assert.Equal(t, "https://roast.example.com/?canceled=true", form["cancel_url"])
}

func TestStripeProcessorSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`))
	}))
	defer srv.Close()

	proc, err := NewStripeProcessor("sk_test_bad", srv.URL)
	require.NoError(t, err)
	product, _ := Lookup("genz-roast")

	_, err = proc.CreateSession(context.Background(), SessionRequest{Product: product, SuccessURL: "s", CancelURL: "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key provided")
}

func TestNewStripeProcessorRequiresKey(t *testing.T) {
	_, err := NewStripeProcessor("", "")
	assert.Error(t, err)
}
