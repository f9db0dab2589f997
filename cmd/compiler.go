package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/kr/pretty"

	"lilac/ast"
	"lilac/explicate"
	"lilac/flatten"
	"lilac/homes"
	"lilac/interp"
	"lilac/isel"
	"lilac/patch"
	"lilac/rename"
	"lilac/report"
	"lilac/syntax"
)

// Compiler represents the overall state and configuration of compilation.
type Compiler struct {
	// The path to the source file of compilation.
	rootPath string

	// The path to write output to.
	outputPath string

	// The output mode: the kind of output the compiler should produce.  This
	// must be one of the enumerated output modes.
	outputMode int

	// Whether the compiler should dump each pass's output.
	debug bool

	// The build profile loaded for the source file, if any.
	profile *BuildProfile
}

// Enumeration of compilation output modes.
const (
	OutModeASM = iota // Output pseudo-assembly text (default).
	OutModeTAC        // Output the three-address program rendering.
	OutModeAST        // Output the renamed, flattened expression rendering.
	OutModeRun        // Evaluate the program with the reference interpreter.
)

// Compile runs the compiler over its root source file and returns whether
// compilation succeeded.
func (c *Compiler) Compile() bool {
	file, err := os.Open(c.rootPath)
	if err != nil {
		report.ReportFatal("unable to open source file at `%s`: %s", c.rootPath, err.Error())
		return false
	}
	defer file.Close()

	expr, err := syntax.NewParser(bufio.NewReader(file)).Parse()
	if err != nil {
		c.reportError(err)
		return false
	}

	if c.debug {
		report.DisplaySection("parse", pretty.Sprint(expr))
	}

	// The interpreter runs on the raw parse tree: it performs its own name
	// resolution.
	if c.outputMode == OutModeRun {
		return c.run(expr)
	}

	renamed, err := rename.UniquifyExpr(expr)
	if err != nil {
		c.reportError(err)
		return false
	}

	if c.debug {
		report.DisplaySection("uniquify", renamed.Repr())
	}

	flat := flatten.FlattenExpr(renamed)

	if c.debug {
		report.DisplaySection("remove-complex-operands", flat.Repr())
	}

	if c.outputMode == OutModeAST {
		return c.writeOutput(flat.Repr() + "\n")
	}

	tacProg := explicate.ExplicateControl(flat)

	if c.debug {
		report.DisplaySection("explicate-control", tacProg.Repr())
	}

	if c.outputMode == OutModeTAC {
		return c.writeOutput(tacProg.Repr())
	}

	asmProg := isel.SelectInstructions(tacProg)

	if c.debug {
		report.DisplaySection("select-instructions", asmProg.Repr())
	}

	asmProg = homes.AssignHomes(asmProg)

	if c.debug {
		report.DisplaySection("assign-homes", asmProg.Repr())
	}

	asmProg = patch.PatchInstructions(asmProg)

	if c.debug {
		report.DisplaySection("patch-instructions", asmProg.Repr())
	}

	return c.writeOutput(asmProg.Repr())
}

// CompileSource compiles a source string through the full pass pipeline and
// returns the pseudo-assembly rendering.  This is the programmatic boundary
// used by the test suites.
func CompileSource(src string) (string, error) {
	expr, err := syntax.ParseString(src)
	if err != nil {
		return "", err
	}

	renamed, err := rename.UniquifyExpr(expr)
	if err != nil {
		return "", err
	}

	tacProg := explicate.ExplicateControl(flatten.FlattenExpr(renamed))
	asmProg := patch.PatchInstructions(homes.AssignHomes(isel.SelectInstructions(tacProg)))

	return asmProg.Repr(), nil
}

// run evaluates the program with the reference interpreter and prints its
// value.
func (c *Compiler) run(expr ast.Expr) bool {
	value, err := interp.NewInterpreter(os.Stdin).EvalExpr(expr)
	if err != nil {
		c.reportError(err)
		return false
	}

	fmt.Println(value)
	return true
}

// writeOutput writes the compilation output text to the output path.
func (c *Compiler) writeOutput(text string) bool {
	if err := ioutil.WriteFile(c.outputPath, []byte(text), 0644); err != nil {
		report.ReportFatal("unable to write output to `%s`: %s", c.outputPath, err.Error())
		return false
	}

	report.DisplayFinished(c.outputPath)
	return true
}

// reportError displays an error produced while compiling the root source file.
func (c *Compiler) reportError(err error) {
	if lce, ok := err.(*report.LocalCompileError); ok {
		report.ReportCompileError(c.rootPath, lce.Span, lce.Message)
	} else {
		report.ReportStdError(c.rootPath, err)
	}
}
