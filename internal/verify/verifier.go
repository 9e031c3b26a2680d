// Package verify confirms the DNS cutover by querying live DNS and HTTP
// state through the local dig and curl tools.
package verify

import (
	"context"
	"sort"
	"strings"

	"github.com/northroot-labs/pagesops/internal/domain/entity"
	"github.com/northroot-labs/pagesops/internal/infrastructure/shell"
)

// Report holds the observed state plus one failure line per violated
// criterion. Every criterion is always evaluated; there is no
// short-circuit on the first failure.
type Report struct {
	NS       []string
	A        []string
	WWWCname string
	Failures []string
}

func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

type Verifier struct {
	runner      shell.Runner
	expectedIPs []string
	pagesTarget string
}

func New(runner shell.Runner, site *entity.Site) *Verifier {
	return &Verifier{
		runner:      runner,
		expectedIPs: site.ExpectedIPs,
		pagesTarget: site.PagesTarget,
	}
}

// Run gathers NS, A, www CNAME, and apex HTTP headers, then evaluates the
// three cutover criteria. A failed lookup contributes empty observations
// rather than aborting, so every criterion still reports.
func (v *Verifier) Run(ctx context.Context, domainName string) *Report {
	report := &Report{}

	nsOut, _ := v.runner.Run(ctx, "dig", "+short", "NS", domainName)
	report.NS = splitLines(nsOut)
	sort.Strings(report.NS)

	aOut, _ := v.runner.Run(ctx, "dig", "+short", "A", domainName)
	report.A = splitLines(aOut)
	sort.Strings(report.A)

	cname, _ := v.runner.Run(ctx, "dig", "+short", "CNAME", "www."+domainName)
	report.WWWCname = strings.TrimSpace(cname)

	headers, _ := v.runner.Run(ctx, "curl", "-sI", "http://"+domainName+"/")

	if !intersects(report.A, v.expectedIPs) {
		report.Failures = append(report.Failures, "apex A records do not include GitHub Pages IPs")
	}

	if !strings.Contains(report.WWWCname, "github.io") && !strings.Contains(report.WWWCname, v.pagesTarget) {
		report.Failures = append(report.Failures, "www CNAME is not pointing to "+v.pagesTarget)
	}

	if strings.Contains(headers, "Namecheap URL Forward") || strings.Contains(strings.ToLower(headers), "parking") {
		report.Failures = append(report.Failures, "domain still appears to use Namecheap forwarding/parking")
	}

	return report
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func intersects(observed, expected []string) bool {
	set := make(map[string]bool, len(expected))
	for _, ip := range expected {
		set[ip] = true
	}
	for _, ip := range observed {
		if set[ip] {
			return true
		}
	}
	return false
}
