package hostwalk

// Extractor pulls raw reference strings out of HTML page content.
// Implementations extract either anchor href values or image src values;
// the returned strings are unresolved, exactly as they appear in the
// markup. Resolution against the page URL is the caller's job.
type Extractor interface {
	Extract(html string) ([]string, error)
}
