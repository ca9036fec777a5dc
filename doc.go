// Package mornington implements an interpreter for the Mornington scripting
// language: a dynamically-typed imperative language whose defining quirks
// are structural anti-balance rules (quotes, parens and brackets must be
// unbalanced in count; indentation widths within a block must never repeat)
// layered on conditionals, loops, named recursive functions and four value
// types (obol, nmu, sting, lsit). Functions are not values: a function name
// can only be called, never stored, passed or used as an operand.
//
// The pipeline is Lex -> Indent -> Parse -> Eval, leaves first:
//
//	tokens  := Lex(source)
//	block   := BuildBlocks(tokens)
//	program := Parse(block)
//	Eval(program, io)
//
// Run wires all four stages together and is the only entry point a caller
// (the cmd/mornington CLI, or a test) needs.
package mornington
