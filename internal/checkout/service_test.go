package checkout

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/telemetry"
)

type fakeProcessor struct {
	got SessionRequest
	url string
	err error
}

func (f *fakeProcessor) CreateSession(ctx context.Context, req SessionRequest) (string, error) {
	f.got = req
	return f.url, f.err
}

func quietLogs(t *testing.T) {
	t.Helper()
	prev := telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(prev) })
}

func TestCreateSessionBuildsRedirects(t *testing.T) {
	quietLogs(t)
	proc := &fakeProcessor{url: "https://checkout.stripe.com/c/pay/cs_test_1"}
	svc := NewService(proc, "http://localhost:3000")

	got, err := svc.CreateSession(context.Background(), "full-analysis", "https://roast.example.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", got)
	assert.Equal(t, int64(799), proc.got.Product.PriceCents)
	assert.Equal(t, "https://roast.example.com/success?product=full-analysis", proc.got.SuccessURL)
	assert.Equal(t, "https://roast.example.com/?canceled=true", proc.got.CancelURL)
	assert.Equal(t, map[string]string{"productType": "full-analysis"}, proc.got.Metadata)
}

func TestCreateSessionFallsBackToPublicBaseURL(t *testing.T) {
	quietLogs(t)
	proc := &fakeProcessor{url: "https://pay"}

	_, err := NewService(proc, "http://localhost:3000").CreateSession(context.Background(), "genz-roast", "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/success?product=genz-roast", proc.got.SuccessURL)
}

func TestCreateSessionErrors(t *testing.T) {
	quietLogs(t)
	ctx := context.Background()

	_, err := NewService(&fakeProcessor{url: "x"}, "").CreateSession(ctx, "platinum", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidProduct)

	_, err = NewService(nil, "").CreateSession(ctx, "genz-roast", "")
	assert.ErrorIs(t, err, apperr.ErrConfiguration)

	_, err = NewService(&fakeProcessor{err: errors.New("card_declined")}, "").CreateSession(ctx, "genz-roast", "")
	assert.ErrorIs(t, err, apperr.ErrPaymentService)

	_, err = NewService(&fakeProcessor{}, "").CreateSession(ctx, "genz-roast", "")
	assert.ErrorIs(t, err, apperr.ErrPaymentService)
}

func TestCatalog(t *testing.T) {
	p, ok := Lookup("basic-analysis")
	require.True(t, ok)
	assert.Equal(t, int64(199), p.PriceCents)

	_, ok = Lookup("")
	assert.False(t, ok)

	keys := []string{}
	for _, p := range Products() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"basic-analysis", "full-analysis", "gentle-roast", "genz-roast"}, keys)
}
