// SPDX-License-Identifier: EPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
package testutil

import (
	"os"
	"testing"
)

// MustChdir changes the working directory to dir and returns a function
// that changes back. The test fails immediately if either direction of
// the move is impossible.
func MustChdir(t testing.TB, dir string) func() {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("read working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	return func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("chdir back to %s: %v", prev, err)
		}
	}
}

// MustSetenv sets key to value and returns a function that puts the
// variable back to its pre-test state, unset included.
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	prev, existed := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("set env %s: %v", key, err)
	}
	return restoreEnv(t, key, prev, existed)
}

// MustUnsetenv clears key and returns a function that puts the variable
// back to its pre-test state.
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	prev, existed := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset env %s: %v", key, err)
	}
	return restoreEnv(t, key, prev, existed)
}

// restoreEnv builds the cleanup closure shared by the env helpers.
func restoreEnv(t testing.TB, key, value string, existed bool) func() {
	return func() {
		var err error
		if existed {
			err = os.Setenv(key, value)
		} else {
			err = os.Unsetenv(key)
		}
		if err != nil {
			t.Errorf("restore env %s: %v", key, err)
		}
	}
}

// MustMkdirAll creates path along with any missing parents, failing the
// test on error.
func MustMkdirAll(t testing.TB, path string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(path, perm); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

// MustWriteFile writes data to path, failing the test on error.
func MustWriteFile(t testing.TB, path string, data []byte, perm os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, data, perm); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
