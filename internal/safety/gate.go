// Package safety implements the pre-evaluation validator that rejects
// expression text attempting to escape the formula sandbox, before any
// lexing or parsing cost is paid.
package safety

import (
	"regexp"

	"github.com/cwbudde/go-formula/internal/values"
)

// MaxLength is the hard cap on expression text length.
const MaxLength = 10000

type pattern struct {
	name string
	re   *regexp.Regexp
}

func literalWord(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

func literal(s string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(s))
}

// capabilityPatterns blocks identifiers with no legitimate use inside the
// formula grammar: filesystem, process, reflection and environment
// capability surfaces borrowed from the host runtime's namespace.
var capabilityPatterns = []pattern{
	{"import", literalWord("import")},
	{"using System.IO", literal("using System.IO")},
	{"Process", literalWord("Process")},
	{"Assembly", literalWord("Assembly")},
	{"File", literalWord("File")},
	{"Directory", literalWord("Directory")},
	{"Thread", literalWord("Thread")},
	{"Task.Run", literal("Task.Run")},
	{"Environment", literalWord("Environment")},
	{"Reflection", literalWord("Reflection")},
	{"DllImport", literalWord("DllImport")},
	{"Console", literalWord("Console")},
	{"Window", literalWord("Window")},
	{"Registry", literalWord("Registry")},
	{"Activator", literalWord("Activator")},
	{"AppDomain", literalWord("AppDomain")},
	{"GC.Collect", literal("GC.Collect")},
	{"new Stream/Reader/Writer", regexp.MustCompile(`(?i)\bnew\s+\w*(Stream|Reader|Writer)\b`)},
}

// reflectionPatterns block shapes that reach into the host's reflection API.
var reflectionPatterns = []pattern{
	{"GetType()", literal("GetType()")},
	{"GetMethod(", literal("GetMethod(")},
	{"GetProperty(", literal("GetProperty(")},
	{"InvokeMember(", literal("InvokeMember(")},
	{"Invoke(", literal("Invoke(")},
	{".CreateInstance(", literal(".CreateInstance(")},
	{"Type.GetType(", literal("Type.GetType(")},
	{"typeof(...).GetMethod", regexp.MustCompile(`(?i)typeof\([^)]*\)\.GetMethod`)},
	{"System.Reflection", literal("System.Reflection")},
	{"this.GetType()", literal("this.GetType()")},
}

// injectionPatterns block syntactic shapes that would let text escape the
// single-expression grammar into statements, blocks or preprocessor directives.
var injectionPatterns = []pattern{
	{"semicolon", regexp.MustCompile(`;`)},
	{"open brace", regexp.MustCompile(`\{`)},
	{"close brace", regexp.MustCompile(`\}`)},
	{"class declaration", regexp.MustCompile(`(?i)\bclass\s+[A-Za-z_]\w*`)},
	{"namespace declaration", regexp.MustCompile(`(?i)\bnamespace\s+[A-Za-z_]\w*`)},
	{"while(true)", regexp.MustCompile(`(?i)\bwhile\s*\(\s*true\s*\)`)},
	{"for(;;)", regexp.MustCompile(`\bfor\s*\(\s*;\s*;\s*\)`)},
	{"preprocessor directive", regexp.MustCompile(`(?i)#\s*(region|endregion|if|else|endif)\b`)},
}

var allPatterns = func() []pattern {
	all := make([]pattern, 0, len(capabilityPatterns)+len(reflectionPatterns)+len(injectionPatterns))
	all = append(all, capabilityPatterns...)
	all = append(all, reflectionPatterns...)
	all = append(all, injectionPatterns...)
	return all
}()

// Check validates expression text against the sandbox's blocklist and
// length cap, returning a *values.FormulaError with Kind Unsafe on the
// first violation found. It is pure and stateless: the same text always
// produces the same verdict, regardless of where in the text a blocked
// shape appears.
func Check(text string) error {
	if len(text) > MaxLength {
		return values.NewUnsafeError("expression exceeds maximum length of %d characters", MaxLength)
	}
	for _, p := range allPatterns {
		if p.re.MatchString(text) {
			return values.NewUnsafeError("expression contains a disallowed construct: %s", p.name)
		}
	}
	return nil
}
