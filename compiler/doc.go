/*
Package compiler reads C source files.

Only a tiny subset of C is accepted: a single function
returning int with a body made of return statements.

	int main() {
		return 0;
	}

Process of parsing:

	Program Text ->
		front.Tokenizer ->
	Tokens ->
		front.Parser ->
	Abstract Syntax Tree (ast) ->
		format ->
	Text
*/
package compiler
