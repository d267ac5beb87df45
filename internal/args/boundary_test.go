// SPDX-License-Identifier: MPL-2.0

package args

import (
	"errors"
	"testing"
)

func TestLocateProgramEmptyVector(t *testing.T) {
	t.Parallel()

	_, err := LocateProgram(nil)
	if err == nil {
		t.Fatal("LocateProgram(nil) returned nil error, want ErrEmptyArguments")
	}
	if !errors.Is(err, ErrEmptyArguments) {
		t.Errorf("error = %v, want ErrEmptyArguments", err)
	}
}

func TestLocateProgram(t *testing.T) {
	t.Parallel()

	// Every element of this vector is disqualified: dashed flags,
	// @response files, linker-input extensions, and an --eval payload.
	noProgram := []string{
		"blah", "-who", "@what", "where.obj", "why.o", "are.a",
		"you.def", "sure.map", "about.res", "--this", "--eval", "something",
	}

	tests := []struct {
		name      string
		argv      []string
		wantFound bool
		wantIndex int
		wantSplit int
	}{
		{
			name:      "invocation name only",
			argv:      []string{"blah"},
			wantFound: false,
			wantSplit: 1,
		},
		{
			name:      "nothing qualifies",
			argv:      noProgram,
			wantFound: false,
			wantSplit: len(noProgram),
		},
		{
			name:      "program after disqualified arguments",
			argv:      append(append([]string{}, noProgram...), "thisProgram"),
			wantFound: true,
			wantIndex: len(noProgram),
			wantSplit: len(noProgram),
		},
		{
			name:      "program directly after invocation name",
			argv:      []string{"rund", "hello.d", "-arg"},
			wantFound: true,
			wantIndex: 1,
			wantSplit: 1,
		},
		{
			name:      "earliest qualifying index wins",
			argv:      []string{"rund", "first.d", "second.d"},
			wantFound: true,
			wantIndex: 1,
			wantSplit: 1,
		},
		{
			name:      "eval payload is skipped but later program is found",
			argv:      []string{"rund", "--eval", "writeln(42)", "hello.d"},
			wantFound: true,
			wantIndex: 3,
			wantSplit: 3,
		},
		{
			name:      "object file alone is not a program",
			argv:      []string{"rund", "extra.o"},
			wantFound: false,
			wantSplit: 2,
		},
		{
			name:      "response file is not a program",
			argv:      []string{"rund", "@flags.rsp"},
			wantFound: false,
			wantSplit: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := LocateProgram(tt.argv)
			if err != nil {
				t.Fatalf("LocateProgram(%q) error = %v", tt.argv, err)
			}
			if b.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", b.Found, tt.wantFound)
			}
			if b.Found && b.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", b.Index, tt.wantIndex)
			}
			if got := b.SplitPoint(len(tt.argv)); got != tt.wantSplit {
				t.Errorf("SplitPoint(%d) = %d, want %d", len(tt.argv), got, tt.wantSplit)
			}
		})
	}
}

func TestLocateProgramExtensionRules(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".obj", ".o", ".lib", ".a", ".def", ".map", ".res"} {
		b, err := LocateProgram([]string{"rund", "input" + ext})
		if err != nil {
			t.Fatalf("LocateProgram error = %v", err)
		}
		if b.Found {
			t.Errorf("argument with extension %q was taken for a program", ext)
		}
	}

	// A .d source is not in the linker-input list and must qualify.
	b, err := LocateProgram([]string{"rund", "hello.d"})
	if err != nil {
		t.Fatalf("LocateProgram error = %v", err)
	}
	if !b.Found || b.Index != 1 {
		t.Errorf("hello.d not located as program: %+v", b)
	}
}
