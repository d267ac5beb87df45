// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is a compiled CUE schema with a single definition selected as
// the root that documents are checked against. Compiling is the
// expensive step; one Schema can check any number of documents.
type Schema struct {
	ctx  *cue.Context
	root cue.Value
	name string
}

// CompileSchema compiles CUE schema source, typically embedded in the
// binary, and selects the definition named by rootDef (e.g. "#Config").
// Failures here indicate a broken schema shipped with the program, not
// a user mistake.
func CompileSchema(source, rootDef string) (*Schema, error) {
	ctx := cuecontext.New()
	compiled := ctx.CompileString(source)
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("internal error: schema does not compile: %w", err)
	}
	root := compiled.LookupPath(cue.ParsePath(rootDef))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("internal error: schema has no definition %s: %w", rootDef, err)
	}
	return &Schema{ctx: ctx, root: root, name: rootDef}, nil
}

// Check compiles a document, unifies it with the schema root and
// validates the result. Every regular field must be concrete unless
// WithConcrete(false) is given. Errors are rewritten by FormatError so
// they carry the document name and a JSON-style path.
func (s *Schema) Check(data []byte, opts ...Option) (*Document, error) {
	settings := resolveOptions(opts)
	if err := CheckFileSize(data, settings.maxFileSize, settings.filename); err != nil {
		return nil, err
	}

	doc := s.ctx.CompileBytes(data, cue.Filename(settings.filename))
	if err := doc.Err(); err != nil {
		return nil, FormatError(err, settings.filename)
	}

	unified := s.root.Unify(doc)
	if err := unified.Validate(cue.Concrete(settings.concrete)); err != nil {
		return nil, FormatError(err, settings.filename)
	}

	return &Document{value: unified, filename: settings.filename}, nil
}

// Document is a document that passed schema validation. The wrapped
// value is the unification of the document with the schema root, so
// schema defaults are visible when decoding.
type Document struct {
	value    cue.Value
	filename string
}

// Decode unmarshals the document into out, which must be a pointer.
// Both structs and map[string]any are supported targets.
func (d *Document) Decode(out any) error {
	if err := d.value.Decode(out); err != nil {
		return FormatError(err, d.filename)
	}
	return nil
}
