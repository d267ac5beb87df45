// SPDX-License-Identifier: MPL-2.0

// Package cueutil checks CUE documents against an embedded schema.
//
// A Schema is compiled once from source shipped in the binary and then
// used to check any number of documents. Checking unifies the document
// with a root definition, validates the result, and hands back a
// Document for decoding into Go values:
//
//	//go:embed config_schema.cue
//	var schemaSource string
//
//	schema, err := cueutil.CompileSchema(schemaSource, "#Config")
//	if err != nil {
//		return err
//	}
//	doc, err := schema.Check(data, cueutil.WithFilename("rund.cue"))
//	if err != nil {
//		return err // carries the file name and CUE path
//	}
//	var cfg Config
//	return doc.Decode(&cfg)
package cueutil
