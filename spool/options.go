package spool

import (
	"fmt"

	"github.com/arloliu/flowrec/errs"
	"github.com/arloliu/flowrec/format"
	"github.com/arloliu/flowrec/internal/options"
)

// DefaultInitialCapacity is the number of records a new Writer reserves room for.
const DefaultInitialCapacity = 64

type config struct {
	compression     format.CompressionType
	initialCapacity int
	maxRecords      int
}

func defaultConfig() *config {
	return &config{
		compression:     format.CompressionNone,
		initialCapacity: DefaultInitialCapacity,
	}
}

// Option configures a Writer.
type Option = options.Option[*config]

// WithCompression sets the codec applied to the payload by Finish.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *config) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = comp
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, comp)
		}
	})
}

// WithInitialCapacity reserves buffer space for n records up front.
// Values below 1 are ignored.
func WithInitialCapacity(n int) Option {
	return options.NoError(func(c *config) {
		if n > 0 {
			c.initialCapacity = n
		}
	})
}

// WithMaxRecords limits how many records a Writer accepts before Finish.
// The default is no limit.
func WithMaxRecords(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxRecords, n)
		}
		c.maxRecords = n

		return nil
	})
}
