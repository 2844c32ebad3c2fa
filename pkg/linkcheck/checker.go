// Package linkcheck validates authored cross-references against the
// navigation index at build time. It walks a content directory of
// markdown/MDX files, extracts site-internal link targets, and reports
// every target that does not resolve to a page.
package linkcheck

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vango-dev/docnav/pkg/nav"
)

// contentExtensions are the file types scanned for links.
var contentExtensions = map[string]bool{
	".md":  true,
	".mdx": true,
}

// linkPattern matches markdown link targets and raw href attributes that
// point inside the site (absolute path, no scheme).
var linkPattern = regexp.MustCompile(`\]\((/[^)\s#?]*)[^)]*\)|href="(/[^"#?]*)[^"]*"`)

// Problem is one unresolved cross-reference.
type Problem struct {
	// File is the content file containing the link, relative to the
	// checked root.
	File string

	// Line is the 1-based line number.
	Line int

	// Target is the link target as authored.
	Target string
}

// String formats the problem the way compilers format diagnostics.
func (p Problem) String() string {
	return fmt.Sprintf("%s:%d: unresolved link %s", p.File, p.Line, p.Target)
}

// Checker resolves authored link targets against a navigation index.
type Checker struct {
	index *nav.Index
}

// New creates a Checker over the given index.
func New(ix *nav.Index) *Checker {
	return &Checker{index: ix}
}

// CheckDir walks root and checks every markdown/MDX file beneath it.
// Problems are returned in walk order; an empty slice means every
// cross-reference resolves.
func (c *Checker) CheckDir(root string) ([]Problem, error) {
	var problems []Problem

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !contentExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		found, err := c.checkFile(path, rel)
		if err != nil {
			return err
		}
		problems = append(problems, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return problems, nil
}

// checkFile scans one file line by line.
func (c *Checker) checkFile(path, rel string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var problems []Problem
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		for _, target := range extractTargets(scanner.Text()) {
			if _, err := c.index.Lookup(target); errors.Is(err, nav.ErrNotFound) {
				problems = append(problems, Problem{File: rel, Line: lineNum, Target: target})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("linkcheck: scan %s: %w", rel, err)
	}
	return problems, nil
}

// extractTargets returns the site-internal page targets on a line.
// Anchored fragments and query strings are stripped before resolution;
// external URLs never match. Targets with a file extension are asset
// references (images, fonts, downloads), not pages, and are skipped.
func extractTargets(line string) []string {
	matches := linkPattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	targets := make([]string, 0, len(matches))
	for _, m := range matches {
		target := m[1]
		if target == "" {
			target = m[2]
		}
		if target == "" || target == "/" {
			continue
		}
		if path.Ext(target) != "" {
			continue
		}
		targets = append(targets, target)
	}
	return targets
}
