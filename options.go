// Copyright (c) HashiCorp, Inc.

package ruleops

import "github.com/hashicorp/go-hclog"

type options struct {
	assertTypeForArguments bool
	caseSensitive          bool
	logger                 hclog.Logger
}

// Option sets one field of the options struct that getOpts collects.
// No value constructor, Call method or loader in this module takes an
// Option, so none of these settings changes operator behaviour.
type Option func(*options) error

func getDefaultOptions() options {
	return options{
		assertTypeForArguments: true,
		logger:                 hclog.NewNullLogger(),
	}
}

func getOpts(opt ...Option) (options, error) {
	opts := getDefaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// WithAssertTypeForArguments records whether registered operators should
// coerce every argument through the owning type's coercion function
// before executing (spec §4.2). Defaults to true. The setting is not read
// by any Call method: each Call coerces (or does not coerce) its
// arguments the same way whatever this option holds.
func WithAssertTypeForArguments(assert bool) Option {
	return func(o *options) error {
		o.assertTypeForArguments = assert
		return nil
	}
}

// WithCaseSensitive records a case-sensitivity flag. No string or select
// operator reads it; their case folding is fixed per operator.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(o *options) error {
		o.caseSensitive = caseSensitive
		return nil
	}
}

// WithLogger records a structured logger; a nil logger is rejected with
// ErrInvalidParameter. Defaults to a no-op logger. Registry construction,
// operator dispatch and the refdata loader do not log through it.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return ErrInvalidParameter
		}
		o.logger = logger
		return nil
	}
}
