/*
Package vasm is the frontend toolbox for the voxl virtual-machine assembler.

vasm converts raw assembly source text into an ordered sequence of typed
tokens, ready to be consumed by a parser/code generator. Package structure is
as follows:

■ lexer: Package lexer implements the tokenizer state machine, the heart of
the frontend. It classifies lexemes, decodes multi-base numeric literals and
register names, recognizes assembler directives and tracks character-accurate
source positions for diagnostics.

■ text: Package text provides the source-coordinate model (positions and
ranges) and the registry which owns source-file contents and hands out shared
file handles.

■ isa: Package isa defines the instruction-set vocabulary: the mnemonic→opcode
table and the machine-register naming scheme.

■ sym: Package sym provides unsophisticated symbol tables for assembler
tooling.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 The vasm authors

*/
package vasm
