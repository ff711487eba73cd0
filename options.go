package contactsift

// Default output caps per contact kind. Each list is sorted by
// confidence descending and truncated to its cap.
const (
	DefaultEmailCap = 10
	DefaultPhoneCap = 6
	DefaultNameCap  = 5
)

// Options configures an extraction engine. The zero value disables
// everything; use DefaultOptions for the standard configuration.
// Options are treated as immutable once an Engine is constructed.
type Options struct {
	// Per-kind extraction toggles.
	Emails bool
	Phones bool
	Names  bool

	// Validate controls structural and false-positive filtering.
	// Disabling it is a diagnostic path only; candidates are then
	// promoted without filtering.
	Validate bool

	// Dedupe controls intra-document deduplication by normalized value.
	Dedupe bool

	// Per-kind output caps. Zero means the kind's default cap.
	EmailCap int
	PhoneCap int
	NameCap  int
}

// DefaultOptions returns the standard engine configuration: all kinds
// enabled, validation and deduplication on, default caps.
func DefaultOptions() Options {
	return Options{
		Emails:   true,
		Phones:   true,
		Names:    true,
		Validate: true,
		Dedupe:   true,
		EmailCap: DefaultEmailCap,
		PhoneCap: DefaultPhoneCap,
		NameCap:  DefaultNameCap,
	}
}

func (o Options) emailCap() int {
	if o.EmailCap > 0 {
		return o.EmailCap
	}
	return DefaultEmailCap
}

func (o Options) phoneCap() int {
	if o.PhoneCap > 0 {
		return o.PhoneCap
	}
	return DefaultPhoneCap
}

func (o Options) nameCap() int {
	if o.NameCap > 0 {
		return o.NameCap
	}
	return DefaultNameCap
}
