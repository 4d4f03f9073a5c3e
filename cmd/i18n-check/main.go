// i18n Key Checker
// Scans the template sources for {{i18n "key"}} calls and reports keys that
// resolve to neither a built-in string nor the configured language file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"webinar-server/internal/config"
)

// KeyUse is one i18n call site in a template source file
type KeyUse struct {
	Key  string
	File string
	Line int
}

// Report holds the analysis results
type Report struct {
	TotalChecks  int
	PassedChecks int
	Missing      []KeyUse
	Score        float64
}

var i18nCallPattern = regexp.MustCompile(`i18n "([^"]+)"`)

var (
	projectPath string
	verbose     bool
)

func main() {
	flag.StringVar(&projectPath, "path", ".", "Path to the project root")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
	flag.Parse()

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Language files are looked up relative to the project root
	if err := os.Chdir(absPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error changing to %s: %v\n", absPath, err)
		os.Exit(1)
	}
	config.InitI18n()

	fmt.Println("i18n Key Checker")
	fmt.Println("================")

	uses, err := scanTemplates(filepath.Join(absPath, "templates"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning templates: %v\n", err)
		os.Exit(1)
	}

	report := checkKeys(uses, config.I18n)

	if verbose {
		for _, u := range uses {
			fmt.Printf("  %s:%d %s\n", u.File, u.Line, u.Key)
		}
	}

	fmt.Printf("\nScore: %.1f%%\n", report.Score)
	fmt.Printf("Passed: %d / %d keys\n", report.PassedChecks, report.TotalChecks)
	for _, m := range report.Missing {
		fmt.Printf("  missing %-28s %s:%d\n", m.Key, m.File, m.Line)
	}
	if len(report.Missing) > 0 {
		os.Exit(1)
	}
}

// scanTemplates collects every i18n call in the .go files under dir
func scanTemplates(dir string) ([]KeyUse, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var uses []KeyUse
	for _, path := range files {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		fileUses, err := scanFile(path)
		if err != nil {
			return nil, err
		}
		uses = append(uses, fileUses...)
	}
	return uses, nil
}

func scanFile(path string) ([]KeyUse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var uses []KeyUse
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		for _, m := range i18nCallPattern.FindAllStringSubmatch(scanner.Text(), -1) {
			uses = append(uses, KeyUse{Key: m[1], File: filepath.Base(path), Line: line})
		}
	}
	return uses, scanner.Err()
}

// checkKeys counts each distinct key once. A key passes when lookup returns
// something other than the key itself.
func checkKeys(uses []KeyUse, lookup func(string) string) Report {
	var report Report
	seen := make(map[string]bool)

	for _, u := range uses {
		if seen[u.Key] {
			continue
		}
		seen[u.Key] = true
		report.TotalChecks++
		if lookup(u.Key) != u.Key {
			report.PassedChecks++
		} else {
			report.Missing = append(report.Missing, u)
		}
	}

	if report.TotalChecks > 0 {
		report.Score = float64(report.PassedChecks) / float64(report.TotalChecks) * 100
	}
	return report
}
