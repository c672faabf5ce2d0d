package columns

import "regexp"

// Role is a physical quantity a column may carry.
type Role string

const (
	Potential Role = "potential"
	Current   Role = "current"
	Time      Role = "time"
	Frequency Role = "frequency"
	ZReal     Role = "z_real"
	ZImag     Role = "z_imag"
	Phase     Role = "phase"
)

// Roles returns every role in inference order. A column claimed by an earlier
// role is not offered to later ones.
func Roles() []Role {
	out := make([]Role, len(rolePatterns))
	for i, rp := range rolePatterns {
		out[i] = rp.role
	}
	return out
}

type rolePattern struct {
	role     Role
	patterns []*regexp.Regexp
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// Most specific pattern first within each role.
var rolePatterns = []rolePattern{
	{Potential, patterns(
		`potential.*v`,
		`potential`,
		`voltage`,
		`^e(we)?\s*[(\[/_]`,
		`^e(we)?$`,
		`^v(\s*[(\[/_].*)?$`,
	)},
	{Current, patterns(
		`current.*a`,
		`current`,
		`amperage`,
		`^<?i>?\s*[(\[/_]`,
		`^i$`,
	)},
	{Time, patterns(
		`time.*s`,
		`time`,
		`^t\s*[(\[/_]`,
		`^t$`,
	)},
	{Frequency, patterns(
		`freq.*hz`,
		`freq`,
		`^f\s*[(\[/_]`,
		`^f$`,
	)},
	{ZReal, patterns(
		`z[_\s']*re(al)?`,
		`re\s*\(?\s*z`,
		`^z'(\s*[(\[/_].*)?$`,
	)},
	{ZImag, patterns(
		`z[_\s']*im(ag)?`,
		`im\s*\(?\s*z`,
		`^-?z''`,
	)},
	{Phase, patterns(
		`phase`,
		`^phi`,
	)},
}
