package sequence

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// RemoteFunc asks an external generator (a database function) for the next
// identifier. Any error means the caller falls back to the local algorithm.
type RemoteFunc func(ctx context.Context) (string, error)

// Resolver produces human-readable identifiers with a remote-preferred,
// local-fallback strategy. Remote failure is expected and never surfaced;
// the local algorithm is probabilistically unique (3 random digits per day).
type Resolver struct {
	remote   RemoteFunc
	fallback func(t time.Time) string
	now      func() time.Time
}

func NewResolver(remote RemoteFunc, fallback func(t time.Time) string) *Resolver {
	return &Resolver{
		remote:   remote,
		fallback: fallback,
		now:      time.Now,
	}
}

func (r *Resolver) Next(ctx context.Context) string {
	if r.remote != nil {
		if v, err := r.remote(ctx); err == nil && v != "" {
			return v
		}
	}
	return r.fallback(r.now())
}

// DeviceSerial is the local device serial algorithm: RE + YYMMDD + 3 digits.
func DeviceSerial(t time.Time) string {
	return fmt.Sprintf("RE%s%03d", t.Format("060102"), rand.Intn(1000))
}

// InvoiceNumber is the local invoice number algorithm: INV-YYYYMM-3 digits.
func InvoiceNumber(t time.Time) string {
	return fmt.Sprintf("INV-%s-%03d", t.Format("200601"), rand.Intn(1000))
}

// SQLFunction adapts a zero-argument database function to a RemoteFunc.
func SQLFunction(db *gorm.DB, name string) RemoteFunc {
	return func(ctx context.Context) (string, error) {
		var out string
		tx := db.WithContext(ctx).Raw("SELECT " + name + "()").Scan(&out)
		if tx.Error != nil {
			return "", tx.Error
		}
		return out, nil
	}
}
