/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package archive

import (
	"github.com/stretchr/testify/mock"
)

// MockPackager implements Packager for testing
type MockPackager struct {
	mock.Mock
}

func (m *MockPackager) Package(srcDir, outPath string) error {
	args := m.Called(srcDir, outPath)
	return args.Error(0)
}
