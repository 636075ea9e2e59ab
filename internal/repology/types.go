// Package repology talks to repology-compatible package metadata sources.
package repology

// Status is the repology classification of a package version.
type Status string

const (
	StatusNewest    Status = "newest"
	StatusDevel     Status = "devel"
	StatusUnique    Status = "unique"
	StatusOutdated  Status = "outdated"
	StatusLegacy    Status = "legacy"
	StatusRolling   Status = "rolling"
	StatusNoScheme  Status = "noscheme"
	StatusIncorrect Status = "incorrect"
	StatusUntrusted Status = "untrusted"
	StatusIgnored   Status = "ignored"
)

// Package is one package record as reported by a repository.
type Package struct {
	Repo        string   `json:"repo"`
	Name        string   `json:"name,omitempty"`
	VisibleName string   `json:"visiblename,omitempty"`
	SrcName     string   `json:"srcname,omitempty"`
	BinName     string   `json:"binname,omitempty"`
	Version     string   `json:"version"`
	OrigVersion string   `json:"origversion,omitempty"`
	Status      Status   `json:"status,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Maintainers []string `json:"maintainers,omitempty"`
	Licenses    []string `json:"licenses,omitempty"`
	WWW         []string `json:"www,omitempty"`
}

// DisplayName returns the most specific name the repository reported.
func (p Package) DisplayName() string {
	for _, n := range []string{p.VisibleName, p.Name, p.SrcName, p.BinName} {
		if n != "" {
			return n
		}
	}
	return ""
}

// Homepage returns the first www URL, or "".
func (p Package) Homepage() string {
	if len(p.WWW) == 0 {
		return ""
	}
	return p.WWW[0]
}

// Problem is a packaging problem reported for a repository.
type Problem struct {
	Repo        string `json:"repo"`
	Name        string `json:"name"`
	EffName     string `json:"effname"`
	Maintainer  string `json:"maintainer"`
	Description string `json:"problem"`
}
