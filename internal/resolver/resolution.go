package resolver

// Kind tells which suffix, if any, was appended to the base version.
type Kind string

const (
	// KindPlain is the bare base version.
	KindPlain Kind = "plain"
	// KindRevision carries the short VCS revision.
	KindRevision Kind = "revision"
	// KindAugmented carries the accelerator and framework versions.
	KindAugmented Kind = "augmented"
)

// Resolution is the outcome of a single Resolve call.
type Resolution struct {
	// Base is the trimmed first line of the version file.
	Base string
	// Suffix is empty, "+<revision>" or "+augment.cu<XY>.torch<XY>".
	Suffix string
	// Kind describes Suffix.
	Kind Kind
}

func newPlain(base string) *Resolution {
	return &Resolution{
		Base: base,
		Kind: KindPlain,
	}
}

// String returns the full version string.
func (r *Resolution) String() string {
	return r.Base + r.Suffix
}
