package registry

import (
	"fmt"
	"strings"
)

// Category identifies what kind of scan a tool performs. The set is closed:
// every category is bound to exactly one normalization rule.
type Category int

const (
	ServiceScan Category = iota
	Fingerprint
	WAFDetect
	ContentDiscovery
	VulnScan
)

func (c Category) String() string {
	switch c {
	case ServiceScan:
		return "service-scan"
	case Fingerprint:
		return "fingerprint"
	case WAFDetect:
		return "waf-detect"
	case ContentDiscovery:
		return "content-discovery"
	case VulnScan:
		return "vuln-scan"
	default:
		return "unknown"
	}
}

// Argument placeholders resolved by the dispatcher at run time.
const (
	PlaceholderHost     = "{host}"
	PlaceholderPorts    = "{ports}"
	PlaceholderURL      = "{url}"
	PlaceholderFuzzURL  = "{fuzzurl}"
	PlaceholderWordlist = "{wordlist}"
	PlaceholderOutfile  = "{outfile}"
)

// ToolSpec describes one invocable external tool. Specs are immutable and
// defined at process start.
type ToolSpec struct {
	Name     string
	Category Category
	Program  string
	Args     []string
}

// Registry is the static tool catalog in its declared execution order.
type Registry struct {
	specs []ToolSpec
}

// Default returns the built-in catalog: nmap, whatweb, wafw00f, ffuf, nikto.
func Default() *Registry {
	return &Registry{specs: []ToolSpec{
		{
			Name:     "nmap",
			Category: ServiceScan,
			Program:  "nmap",
			Args:     []string{"-sV", "-p", PlaceholderPorts, PlaceholderHost},
		},
		{
			Name:     "whatweb",
			Category: Fingerprint,
			Program:  "whatweb",
			Args:     []string{PlaceholderURL},
		},
		{
			Name:     "wafw00f",
			Category: WAFDetect,
			Program:  "wafw00f",
			Args:     []string{PlaceholderURL},
		},
		{
			Name:     "ffuf",
			Category: ContentDiscovery,
			Program:  "ffuf",
			Args:     []string{"-u", PlaceholderFuzzURL, "-w", PlaceholderWordlist, "-of", "json", "-o", PlaceholderOutfile},
		},
		{
			Name:     "nikto",
			Category: VulnScan,
			Program:  "nikto",
			Args:     []string{"-h", PlaceholderURL},
		},
	}}
}

// Specs returns every registered tool in declared order.
func (r *Registry) Specs() []ToolSpec {
	out := make([]ToolSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// UnknownToolError reports every unrecognized name in a selection at once.
type UnknownToolError struct {
	Names []string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool(s): %s", strings.Join(e.Names, ", "))
}

// Select resolves a comma-separated tool selection against the registry.
// The sentinel "all" (or an empty selection) yields the full catalog in
// declared order. An explicit subset preserves the caller's order and is
// matched case-insensitively. Any unrecognized name fails the whole
// selection before anything is dispatched.
func (r *Registry) Select(selection string) ([]ToolSpec, error) {
	selection = strings.TrimSpace(selection)
	if selection == "" || strings.EqualFold(selection, "all") {
		return r.Specs(), nil
	}

	byName := make(map[string]ToolSpec, len(r.specs))
	for _, spec := range r.specs {
		byName[strings.ToLower(spec.Name)] = spec
	}

	var selected []ToolSpec
	var unknown []string
	for _, raw := range strings.Split(selection, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		spec, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		selected = append(selected, spec)
	}

	if len(unknown) > 0 {
		return nil, &UnknownToolError{Names: unknown}
	}
	return selected, nil
}
