package compiler

// kw constants name the keyword token values the parser matches on.
const (
	kwAll         = "ALL"
	kwAlter       = "ALTER"
	kwAnd         = "AND"
	kwAs          = "AS"
	kwAsc         = "ASC"
	kwBegin       = "BEGIN"
	kwBy          = "BY"
	kwCommit      = "COMMIT"
	kwConflict    = "CONFLICT"
	kwCreate      = "CREATE"
	kwCross       = "CROSS"
	kwDefault     = "DEFAULT"
	kwDelete      = "DELETE"
	kwDesc        = "DESC"
	kwDistinct    = "DISTINCT"
	kwDo          = "DO"
	kwDrop        = "DROP"
	kwEnd         = "END"
	kwExcept      = "EXCEPT"
	kwExists      = "EXISTS"
	kwExplain     = "EXPLAIN"
	kwFrom        = "FROM"
	kwFull        = "FULL"
	kwGroup       = "GROUP"
	kwHaving      = "HAVING"
	kwIf          = "IF"
	kwIndexed     = "INDEXED"
	kwInner       = "INNER"
	kwInsert      = "INSERT"
	kwIntersect   = "INTERSECT"
	kwInto        = "INTO"
	kwIs          = "IS"
	kwJoin        = "JOIN"
	kwLeft        = "LEFT"
	kwLimit       = "LIMIT"
	kwNatural     = "NATURAL"
	kwNot         = "NOT"
	kwNothing     = "NOTHING"
	kwNull        = "NULL"
	kwOffset      = "OFFSET"
	kwOn          = "ON"
	kwOr          = "OR"
	kwOrder       = "ORDER"
	kwOuter       = "OUTER"
	kwPlan        = "PLAN"
	kwPragma      = "PRAGMA"
	kwQuery       = "QUERY"
	kwRecursive   = "RECURSIVE"
	kwReplace     = "REPLACE"
	kwReturning   = "RETURNING"
	kwRight       = "RIGHT"
	kwRollback    = "ROLLBACK"
	kwSelect      = "SELECT"
	kwSet         = "SET"
	kwTable       = "TABLE"
	kwTransaction = "TRANSACTION"
	kwUnion       = "UNION"
	kwUpdate      = "UPDATE"
	kwUsing       = "USING"
	kwValues      = "VALUES"
	kwWhere       = "WHERE"
	kwWindow      = "WINDOW"
	kwWith        = "WITH"
)
