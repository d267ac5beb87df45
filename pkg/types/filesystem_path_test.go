// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPathValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      FilesystemPath
		wantValid bool
	}{
		{"absolute path", FilesystemPath("/usr/bin/dmd"), true},
		{"relative path", FilesystemPath("hello.d"), true},
		{"windows style", FilesystemPath("C:\\dmd2\\windows\\bin\\dmd.exe"), true},
		{"path with spaces", FilesystemPath("/path/to/my file.d"), true},
		{"dot path", FilesystemPath("."), true},
		{"empty is invalid", FilesystemPath(""), false},
		{"single space is invalid", FilesystemPath(" "), false},
		{"whitespace only is invalid", FilesystemPath("   "), false},
		{"tab only is invalid", FilesystemPath("\t"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.path.Validate()
			if (err == nil) != tt.wantValid {
				t.Errorf("FilesystemPath(%q).Validate() error = %v, wantValid %v", tt.path, err, tt.wantValid)
			}
			if !tt.wantValid {
				if !errors.Is(err, ErrInvalidFilesystemPath) {
					t.Errorf("error should wrap ErrInvalidFilesystemPath, got: %v", err)
				}
				var fpErr *InvalidFilesystemPathError
				if !errors.As(err, &fpErr) {
					t.Errorf("error should be *InvalidFilesystemPathError, got: %T", err)
				} else if fpErr.Value != tt.path {
					t.Errorf("InvalidFilesystemPathError.Value = %q, want %q", fpErr.Value, tt.path)
				}
			}
		})
	}
}

func TestFilesystemPathString(t *testing.T) {
	t.Parallel()
	p := FilesystemPath("/usr/bin/dmd")
	if p.String() != "/usr/bin/dmd" {
		t.Errorf("FilesystemPath.String() = %q, want %q", p.String(), "/usr/bin/dmd")
	}
}
