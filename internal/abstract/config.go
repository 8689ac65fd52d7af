// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Config is used to configure the tree. It consists of a comparison function
// for keys and the logger used at the tree's boundary. The balancing code
// never logs.
type Config[K any] struct {

	// Logger receives diagnostics from Clear and Verify.
	Logger *zap.Logger

	cmp     func(K, K) int
	pooling bool
}

// Compare compares two keys using the same comparison function as the tree.
func (c *Config[K]) Compare(a, b K) int { return c.cmp(a, b) }

// Option configures a tree.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	pooling bool
}

// WithLogger sets the logger used for Clear and Verify diagnostics. The
// default is the process-wide logger from github.com/pingcap/log.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithNodePool controls whether released nodes are recycled through a
// per-type sync.Pool. It is enabled by default.
func WithNodePool(enabled bool) Option {
	return func(o *options) { o.pooling = enabled }
}

// MakeConfig builds a Config from a comparison function and options.
func MakeConfig[K any](cmp func(K, K) int, opts ...Option) Config[K] {
	if cmp == nil {
		panic("abstract: nil comparison function")
	}
	o := options{pooling: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.L()
	}
	return Config[K]{
		Logger:  o.logger,
		cmp:     cmp,
		pooling: o.pooling,
	}
}
