// compiler is composed of a lexer and parser. These modules work in order to
// generate an AST (abstract syntax tree) from a SQL string. The AST is handed
// to the engine, which decides whether the statement falls inside the
// supported subset before touching any state. The parser deliberately
// recognizes far more of the grammar than the engine executes so unsupported
// clauses can be refused by name instead of failing to parse.
package compiler
