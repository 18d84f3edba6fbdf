//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools:
// - github.com/matryer/moq (mocks in *_mock_test.go, see //go:generate lines)
