package builtins

// RegisterAll wires every built-in function from this package into r under
// its category, mirroring how the teacher's interpreter seeds its own
// function table at startup. A fresh formula engine calls this once to get
// the full standard library; a host that wants a restricted subset builds
// its own Registry and registers only what it needs.
func RegisterAll(r *Registry) {
	r.Register("SUM", Sum, CategoryAggregate, "Sums its flattened numeric arguments.")
	r.Register("AVERAGE", Average, CategoryAggregate, "Averages its flattened numeric arguments.")
	r.Register("MAX", Max, CategoryAggregate, "Largest of its flattened numeric arguments.")
	r.Register("MIN", Min, CategoryAggregate, "Smallest of its flattened numeric arguments.")
	r.Register("COUNT", Count, CategoryAggregate, "Counts flattened arguments that are numbers.")
	r.Register("COUNTA", CountA, CategoryAggregate, "Counts flattened arguments that are not null.")

	r.Register("ROUND", Round, CategoryMath, "Rounds to a given number of decimal places, half away from zero.")
	r.Register("ABS", Abs, CategoryMath, "Absolute value.")
	r.Register("INT", Int, CategoryMath, "Truncates toward zero to an integer.")
	r.Register("SQRT", Sqrt, CategoryMath, "Square root; negative input is #NUM!.")
	r.Register("POWER", Power, CategoryMath, "Exponentiation.")
	r.Register("MOD", Mod, CategoryMath, "Remainder, sign follows the divisor; zero divisor is #DIV/0!.")

	r.Register("AND", And, CategoryLogical, "True if every argument is true.")
	r.Register("OR", Or, CategoryLogical, "True if any argument is true.")
	r.Register("XOR", Xor, CategoryLogical, "True if an odd number of arguments are true.")
	r.Register("NOT", Not, CategoryLogical, "Logical negation.")

	r.Register("IF", If, CategoryConditional, "Chooses between two branches by a condition.")
	r.Register("IFS", Ifs, CategoryConditional, "First condition/value pair whose condition is true.")
	r.Register("SWITCH", Switch, CategoryConditional, "Matches an expression against cases with a default fallback.")

	r.Register("CONCAT", Concat, CategoryText, "Stringifies and joins its flattened arguments.")
	r.Register("LEFT", Left, CategoryText, "Leftmost n characters.")
	r.Register("RIGHT", Right, CategoryText, "Rightmost n characters.")
	r.Register("MID", Mid, CategoryText, "Substring by 1-based start and length.")
	r.Register("TRIM", Trim, CategoryText, "Strips leading/trailing whitespace.")
	r.Register("UPPER", Upper, CategoryText, "Uppercases text.")
	r.Register("LOWER", Lower, CategoryText, "Lowercases text.")
	r.Register("PROPER", Proper, CategoryText, "Title-cases text.")
	r.Register("LEN", Len, CategoryText, "Length in runes.")
	r.Register("REPLACE", Replace, CategoryText, "Replaces every occurrence of a substring.")

	r.Register("INDEX", Index, CategoryData, "Looks up a row/column in a range.")
	r.Register("VLOOKUP", Vlookup, CategoryData, "Looks up a record by its first column.")
	r.Register("UNIQUE", Unique, CategoryData, "Deduplicates its flattened arguments, preserving order.")

	r.Register("ISBLANK", IsBlank, CategoryPredicate, "True for null or an all-whitespace string.")
	r.Register("ISNUMBER", IsNumber, CategoryPredicate, "True for a number, or a string that parses as one.")

	r.Register("COUNTIF", CountIf, CategoryConditionalAggregate, "Counts range elements matching a criterion.")
	r.Register("SUMIF", SumIf, CategoryConditionalAggregate, "Sums range elements (or a paired range) matching a criterion.")
	r.Register("AVERAGEIF", AverageIf, CategoryConditionalAggregate, "Averages range elements (or a paired range) matching a criterion.")
}
