/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fsregistry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Registry serves templates from a local directory.
type Registry struct {
	root string
}

// New returns a registry rooted at dir.
func New(dir string) *Registry {
	return &Registry{root: dir}
}

// Fetch reads the template at the given registry path. Paths cannot escape the root directory.
func (r *Registry) Fetch(_ context.Context, path string) ([]byte, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(path))

	b, err := os.ReadFile(filepath.Join(r.root, clean))
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	return b, nil
}
