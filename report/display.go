package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	headerStyle    = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	errorStyleBG.Print("internal compiler error")
	errorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on GitHub\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("fatal error")
	errorColorFG.Println(" " + message)
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label, path string, span *TextSpan, message string) {
	labelStyle := errorStyleBG
	if label == "warning" {
		labelStyle = warnStyleBG
	}

	if span == nil {
		labelStyle.Print(label)
		fmt.Printf(" %s: %s\n\n", path, message)
	} else {
		labelStyle.Print(label)
		fmt.Printf(" %s:%d:%d: %s\n\n", path, span.StartLine+1, span.StartCol+1, message)
		displaySourceText(path, span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(path string, err error) {
	errorStyleBG.Print("error")
	fmt.Printf(" %s: %s\n\n", path, err)
}

// DisplaySection displays a titled section of compiler output: used by the
// driver for pass-by-pass debug dumps.
func DisplaySection(title, content string) {
	headerStyle.Printf("-- %s %s\n", title, strings.Repeat("-", maxInt(0, 40-len(title))))
	fmt.Println(content)
}

// DisplayFinished displays the concluding message for successful compilation.
func DisplayFinished(outputPath string) {
	if rep.logLevel == LogLevelVerbose {
		successColorFG.Printf("compilation succeeded: wrote %s\n", outputPath)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// -----------------------------------------------------------------------------

// displaySourceText displays the segment of source text a text span covers
// along with a carret underline.  Failure to read the source file is silently
// ignored: the primary message has already been printed.
func displaySourceText(path string, span *TextSpan) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	lineno := 0
	for sc.Scan() {
		if lineno == span.StartLine {
			line := strings.ReplaceAll(sc.Text(), "\t", "    ")
			fmt.Printf("  %d | %s\n", lineno+1, line)

			endCol := span.EndCol
			if span.EndLine != span.StartLine {
				endCol = len(line)
			}

			carets := strings.Repeat(" ", span.StartCol) + strings.Repeat("^", maxInt(1, endCol-span.StartCol))
			fmt.Printf("  %s | %s\n\n", strings.Repeat(" ", numWidth(lineno+1)), errorColorFG.Sprint(carets))
			return
		}

		lineno++
	}
}

// numWidth returns the number of digits in the decimal rendering of n.
func numWidth(n int) int {
	width := 1
	for n >= 10 {
		n /= 10
		width++
	}
	return width
}
