// SPDX-License-Identifier: MIT
// Package: labelgraph/labelled
//
// errors.go - sentinel errors for the labelled package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (operation, offending label) is attached with %w at the failure site.
//   • Every sentinel below is raised before any mutation takes place.

package labelled

import "errors"

var (
	// ErrArityMismatch indicates the label count differs from the backing graph's vertex count.
	ErrArityMismatch = errors.New("labelled: label count does not match vertex count")

	// ErrDuplicateLabel indicates a label collides with a registered or in-batch label.
	ErrDuplicateLabel = errors.New("labelled: duplicate label")

	// ErrUnknownLabel indicates a label does not resolve to a registered vertex.
	ErrUnknownLabel = errors.New("labelled: unknown label")

	// ErrPropertiesUnsupported indicates the backing engine has no property store.
	ErrPropertiesUnsupported = errors.New("labelled: backing graph does not support properties")

	// ErrIndexMismatch indicates the backing engine's vertex count no longer
	// matches the registry, so a new vertex would break the label↔index bijection.
	ErrIndexMismatch = errors.New("labelled: backing graph out of step with labels")
)
