// Package scan checks public landing content for secret-shaped tokens and
// restricted phrases before it ships.
package scan

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/northroot-labs/pagesops/internal/domain"
)

type FindingKind string

const (
	KindSecretPattern  FindingKind = "secret-pattern"
	KindRestrictedTerm FindingKind = "restricted-term"
)

type Finding struct {
	Kind   FindingKind
	File   string
	Detail string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.File, f.Detail)
}

// secretPatterns are checked in order; the first match is reported and the
// rest are skipped.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bghp_[A-Za-z0-9]{20,}\b`),
	regexp.MustCompile(`\bgho_[A-Za-z0-9]{20,}\b`),
	regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
	regexp.MustCompile(`(?i)\bapi[_-]?key\s*[:=]\s*[A-Za-z0-9_\-]{8,}`),
}

var restrictedTerms = []string{
	"internal-only",
	"confidential",
	"restricted",
	"private runbook",
	"incident response",
}

type Scanner struct {
	extraTerms []string
}

// NewScanner builds a scanner over the built-in policy, optionally
// extended with site-configured restricted terms.
func NewScanner(extraTerms ...string) *Scanner {
	return &Scanner{extraTerms: extraTerms}
}

// ScanFile reads the file and scans it, returning domain.ErrMissingFile
// when it does not exist.
func (s *Scanner) ScanFile(path string) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingFile, path)
		}
		return nil, domain.WrapOp("read file", err)
	}
	return s.Scan(path, string(data)), nil
}

// Scan runs both passes over the text. Each pass short-circuits on its
// first hit, so at most one finding per kind is reported.
func (s *Scanner) Scan(name, text string) []Finding {
	var findings []Finding

	for _, pattern := range secretPatterns {
		if pattern.MatchString(text) {
			findings = append(findings, Finding{
				Kind:   KindSecretPattern,
				File:   name,
				Detail: fmt.Sprintf("matched secret pattern %s", pattern.String()),
			})
			break
		}
	}

	lowered := strings.ToLower(text)
	for _, term := range s.terms() {
		if strings.Contains(lowered, term) {
			findings = append(findings, Finding{
				Kind:   KindRestrictedTerm,
				File:   name,
				Detail: fmt.Sprintf("matched restricted term %q", term),
			})
			break
		}
	}

	return findings
}

func (s *Scanner) terms() []string {
	if len(s.extraTerms) == 0 {
		return restrictedTerms
	}
	terms := make([]string, 0, len(restrictedTerms)+len(s.extraTerms))
	terms = append(terms, restrictedTerms...)
	for _, term := range s.extraTerms {
		terms = append(terms, strings.ToLower(term))
	}
	return terms
}
