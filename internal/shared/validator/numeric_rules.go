package validator

const (
	digitsPattern  = `^[0-9]+$`
	decimalPattern = `^[0-9]+(\.[0-9]{1,2})?$`
	codePattern    = `^[0-9a-zA-Z]+$`
	zipCodePattern = `^[0-9]{5}(?:-[0-9]{4})?$`
)

var (
	digitsRegex  = linear(digitsPattern)
	decimalRegex = linear(decimalPattern)
	codeRegex    = linear(codePattern)
	zipCodeRegex = linear(zipCodePattern)
)

// IsValidID accepts one or more ASCII digits.
func IsValidID(s string) bool {
	return digitsRegex.MatchString(s)
}

// IsValidNumber accepts one or more ASCII digits.
func IsValidNumber(s string) bool {
	return digitsRegex.MatchString(s)
}

// IsValidInteger accepts one or more ASCII digits. Signs are rejected.
func IsValidInteger(s string) bool {
	return digitsRegex.MatchString(s)
}

// IsValidAmount accepts an unsigned amount with at most two decimal places.
func IsValidAmount(s string) bool {
	return decimalRegex.MatchString(s)
}

// IsValidPercentage has no upper bound: 150.5 passes.
func IsValidPercentage(s string) bool {
	return decimalRegex.MatchString(s)
}

// IsValidDecimal accepts digits with an optional one or two digit fraction.
func IsValidDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// IsValidCode accepts ASCII letters and digits.
func IsValidCode(s string) bool {
	return codeRegex.MatchString(s)
}

// IsValidZipCode validates a US ZIP or ZIP+4 code.
func IsValidZipCode(s string) bool {
	return zipCodeRegex.MatchString(s)
}
