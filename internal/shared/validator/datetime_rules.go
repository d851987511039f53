package validator

const (
	// Separators are not required to match each other: 2023-07/15 passes.
	datePattern = `^(19|20)\d\d[- /.](0[1-9]|1[012])[- /.](0[1-9]|[12][0-9]|3[01])$`
	timePattern = `^(0[0-9]|1[0-9]|2[0-3]):[0-5][0-9]$`
)

var (
	dateRegex = linear(datePattern)
	timeRegex = linear(timePattern)
)

// IsValidDob validates a date of birth between 1900 and 2099.
// Only the shape is checked, so 2023-02-31 passes.
func IsValidDob(s string) bool {
	return dateRegex.MatchString(s)
}

// IsValidDate validates YYYY-MM-DD, YYYY/MM/DD or YYYY.MM.DD with a 19xx or 20xx year.
func IsValidDate(s string) bool {
	return dateRegex.MatchString(s)
}

// IsValidTime validates a 24-hour HH:MM time.
func IsValidTime(s string) bool {
	return timeRegex.MatchString(s)
}
