package sequence

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeviceSerial_Format(t *testing.T) {
	re := regexp.MustCompile(`^RE\d{6}\d{3}$`)
	at := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		serial := DeviceSerial(at)
		assert.Regexp(t, re, serial)
		assert.Equal(t, "RE260829", serial[:8])
	}
}

func TestInvoiceNumber_Format(t *testing.T) {
	re := regexp.MustCompile(`^INV-\d{6}-\d{3}$`)
	at := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		number := InvoiceNumber(at)
		assert.Regexp(t, re, number)
		assert.Equal(t, "INV-202608-", number[:11])
	}
}

func TestResolver_PrefersRemote(t *testing.T) {
	r := NewResolver(
		func(ctx context.Context) (string, error) { return "RE260829777", nil },
		DeviceSerial,
	)
	assert.Equal(t, "RE260829777", r.Next(context.Background()))
}

func TestResolver_FallsBackOnRemoteError(t *testing.T) {
	r := NewResolver(
		func(ctx context.Context) (string, error) { return "", errors.New("no such function") },
		func(t time.Time) string { return "LOCAL" },
	)
	assert.Equal(t, "LOCAL", r.Next(context.Background()))
}

func TestResolver_FallsBackOnEmptyRemote(t *testing.T) {
	r := NewResolver(
		func(ctx context.Context) (string, error) { return "", nil },
		func(t time.Time) string { return "LOCAL" },
	)
	assert.Equal(t, "LOCAL", r.Next(context.Background()))
}

func TestResolver_NilRemoteUsesFallback(t *testing.T) {
	r := NewResolver(nil, func(t time.Time) string { return "LOCAL" })
	assert.Equal(t, "LOCAL", r.Next(context.Background()))
}
