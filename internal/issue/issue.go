// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SourceNotFoundId Id = iota + 1
	CompilerNotFoundId
	BuildFailedId
	ConfigLoadFailedId
	BadOutputOptionId
	DuplicateOutputOptionId
	MissingFlagValueId
	BadTempDirId
	NothingToRunId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

// Issue is one entry of the catalog shown below CLI failures. The body
// is markdown and goes through glamour at display time.
type Issue struct {
	id       Id          // key in the catalog map
	mdMsg    MarkdownMsg // markdown body
	docLinks []HttpLink  // documentation pages covering this failure
	extLinks []HttpLink  // related external resources
}

func (i *Issue) Id() Id { return i.id }

func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

func (i *Issue) ExtLinks() []HttpLink { return slices.Clone(i.extLinks) }

// Render produces the styled terminal form of the issue. Doc and
// external links fold into a trailing "See also" list.
func (i *Issue) Render(stylePath string) (string, error) {
	var b strings.Builder
	b.WriteString(string(i.mdMsg))

	links := append(i.DocLinks(), i.extLinks...)
	if len(links) > 0 {
		b.WriteString("\n\n## See also:\n")
		for _, link := range links {
			b.WriteString("- <")
			b.WriteString(string(link))
			b.WriteString(">\n")
		}
	}
	return render(b.String(), stylePath)
}

var (
	render = glamour.Render

	sourceNotFoundIssue = &Issue{
		id: SourceNotFoundId,
		mdMsg: `
# Source file not found!

The program file you asked rund to build does not exist.

## Things you can try:
- Check for typos in the path:
~~~
$ rund ./myprog.d
~~~

- Remember that the first non-option argument is taken as the program;
  everything after it belongs to the program itself:
~~~
$ rund -O myprog.d --these --go --to --your --program
~~~

- If you meant to pass inline code instead of a file, use --eval:
~~~
$ rund --eval='writeln("hi")'
~~~`,
	}

	compilerNotFoundIssue = &Issue{
		id: CompilerNotFoundId,
		mdMsg: `
# Compiler not found!

rund could not find a D compiler to delegate the build to.

## How the compiler is picked (in order of precedence):
1. The --compiler=... command line flag
2. The RUND_COMPILER environment variable
3. The 'compiler' field in your config file
4. A compiler sitting next to the rund binary itself
5. Whatever 'dmd' resolves to on your PATH

## Things you can try:
- Install dmd: https://dlang.org/download.html
- Or point rund at ldmd2 / gdmd explicitly:
~~~
$ rund --compiler=ldmd2 myprog.d
~~~

- Or make the choice permanent in ~/.config/rund/rund.cue:
~~~cue
compiler: "ldmd2"
~~~`,
		extLinks: []HttpLink{"https://dlang.org/download.html"},
	}

	buildFailedIssue = &Issue{
		id: BuildFailedId,
		mdMsg: `
# Build failed!

The compiler reported errors while building your program.

## Things you can try:
- Read the compiler diagnostics above; rund passes them through verbatim
- Re-run with --chatty to see the exact compiler command line:
~~~
$ rund --chatty myprog.d
~~~

- Use --dry-run to inspect what would be executed without building:
~~~
$ rund --dry-run myprog.d
~~~`,
		extLinks: []HttpLink{"https://dlang.org/dmd-linux.html"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the rund configuration file.

## Configuration file locations:
- Linux: ~/.config/rund/rund.cue
- macOS: ~/Library/Application Support/rund/rund.cue
- Windows: %APPDATA%\rund\rund.cue

## Things you can try:
- Create a default configuration:
~~~
$ rund config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/rund/rund.cue
~~~

## Example configuration:
~~~cue
compiler: "dmd"
exclusions: ["std", "etc", "core"]
chatty: false
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	badOutputOptionIssue = &Issue{
		id: BadOutputOptionId,
		mdMsg: `
# Unrecognized output option!

rund understands only a small family of -o options; everything else
starting with -o is rejected rather than silently forwarded, because
the compiler's own output flags would fight with rund's build staging.

## Supported forms:
- **-of<file>** or **-of=<file>**: name the produced executable
- **-od<dir>** or **-od=<dir>**: directory for the executable and build artifacts
- **-op**: keep source-relative paths for object files
- **-o-** is recognized but refused: rund exists to produce a binary it can run

## Things you can try:
- Check the option for typos:
~~~
$ rund -of=bin/tool myprog.d
~~~

- If you want to hand a flag straight to the compiler, pick one that
  does not begin with -o; those are forwarded untouched`,
	}

	duplicateOutputOptionIssue = &Issue{
		id: DuplicateOutputOptionId,
		mdMsg: `
# Duplicate output destination!

You specified -of or -od more than once. rund refuses to guess which
one you meant.

## Things you can try:
- Drop all but one -of:
~~~
$ rund -of=bin/tool myprog.d
~~~

- Remember that options before the program file belong to rund; if the
  duplicate was intended for your program, move it after the file name:
~~~
$ rund -of=bin/tool myprog.d -ofsomething-for-the-program
~~~`,
	}

	missingFlagValueIssue = &Issue{
		id: MissingFlagValueId,
		mdMsg: `
# Missing flag value!

A flag that needs a value was given without one.

## Things you can try:
- Use the = form; only --eval also accepts a separate argument:
~~~
$ rund --compiler=ldmd2 myprog.d
$ rund --exclude=mylib myprog.d
$ rund --eval 'writeln("hi")'
~~~`,
	}

	badTempDirIssue = &Issue{
		id: BadTempDirId,
		mdMsg: `
# Bad temporary directory!

The temporary directory you supplied is empty or whitespace-only, so
rund cannot stage the build there.

## Things you can try:
- Give a real path:
~~~
$ rund --tmpdir=/var/tmp/rund myprog.d
~~~

- Or drop the flag entirely; rund then derives a per-user directory
  under the system temp location`,
	}

	nothingToRunIssue = &Issue{
		id: NothingToRunId,
		mdMsg: `
# Nothing to run!

No program file was found on the command line and no inline code was
given.

## Things you can try:
- Name a D source file:
~~~
$ rund myprog.d
~~~

- Or run code straight from the command line:
~~~
$ rund --eval='writeln(1 + 2)'
~~~

- Or process stdin line by line:
~~~
$ cat data.txt | rund --loop='writeln(line.length)'
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Common causes:
- The build staging directory is not writable
- The output directory given with -od is owned by another user
- The produced executable cannot be marked executable

## Things you can try:
- Check directory permissions under the temp location
- Point --tmpdir at a directory you own:
~~~
$ rund --tmpdir="$HOME/.cache/rund" myprog.d
~~~

- Run rund from a directory you can write to`,
	}

	issues = map[Id]*Issue{
		sourceNotFoundIssue.Id():        sourceNotFoundIssue,
		compilerNotFoundIssue.Id():      compilerNotFoundIssue,
		buildFailedIssue.Id():           buildFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		badOutputOptionIssue.Id():       badOutputOptionIssue,
		duplicateOutputOptionIssue.Id(): duplicateOutputOptionIssue,
		missingFlagValueIssue.Id():      missingFlagValueIssue,
		badTempDirIssue.Id():            badTempDirIssue,
		nothingToRunIssue.Id():          nothingToRunIssue,
		permissionDeniedIssue.Id():      permissionDeniedIssue,
	}
)

// Values returns the catalog entries ordered by id.
func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return all
}

// Get returns the catalog entry for id, or nil when the id is unknown.
func Get(id Id) *Issue {
	return issues[id]
}
