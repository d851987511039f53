package validator

import "regexp"

const (
	passwordPattern = `^(?=.*[a-z])(?=.*[A-Z])(?=.*[0-9])(?=.*[@$!%*?&])[A-Za-z0-9@$!%*?&]{8,}\z`
	ssnPattern      = `^(?!666|000|9[0-9]{2})[0-9]{3}(?!00)[0-9]{2}(?!0{4})[0-9]{4}\z`
	// The lookahead needs at least 21 characters while [0-9]\z allows exactly one after the
	// prefix, so nothing matches. Kept as is; IsValidISBNChecksum is the working check.
	isbnPattern     = `^(?:ISBN(?:-1[03])?:? )?(?=(?:[0-9][-●_]){10}[0-9][-●_]?)[0-9]\z`
	slNicPattern    = `^[0-9]{9}[vVxX]$`
	slNewNicPattern = `^[0-9]{12}$`

	isbnPrefixPattern = `^ISBN(?:-1[03])?:? ?`
)

var (
	passwordRegex = backtracking(passwordPattern)
	ssnRegex      = backtracking(ssnPattern)
	isbnRegex     = backtracking(isbnPattern)
	slNicRegex    = linear(slNicPattern)
	slNewNicRegex = linear(slNewNicPattern)

	isbnPrefixRegex = regexp.MustCompile(isbnPrefixPattern)
)

// IsValidPassword requires at least 8 characters drawn from letters, digits and @$!%*?&,
// with at least one lowercase, uppercase, digit and special character.
func IsValidPassword(s string) bool {
	return passwordRegex.MatchString(s)
}

// IsValidSSN validates a 9 digit US social security number without separators.
// Area 000, 666 and 9xx, group 00 and serial 0000 are rejected.
func IsValidSSN(s string) bool {
	return ssnRegex.MatchString(s)
}

// IsValidISBN runs the legacy ISBN pattern, which rejects every input including
// well-formed ISBNs. Use IsValidISBNChecksum for real validation.
func IsValidISBN(s string) bool {
	return isbnRegex.MatchString(s)
}

// IsValidISBNChecksum validates an ISBN-10 or ISBN-13 check digit. An optional ISBN,
// ISBN-10 or ISBN-13 prefix and the separators '-', '_', '●' and ' ' are ignored.
func IsValidISBNChecksum(s string) bool {
	body := s
	if loc := isbnPrefixRegex.FindStringIndex(s); loc != nil {
		body = s[loc[1]:]
	}

	digits := make([]int, 0, 13)
	for _, r := range body {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == 'X' || r == 'x':
			digits = append(digits, 10)
		case r == '-' || r == '_' || r == '●' || r == ' ':
		default:
			return false
		}
	}

	switch len(digits) {
	case 10:
		return isbn10Checksum(digits)
	case 13:
		return isbn13Checksum(digits)
	default:
		return false
	}
}

func isbn10Checksum(digits []int) bool {
	sum := 0
	for i, d := range digits {
		if d == 10 && i != len(digits)-1 {
			return false
		}
		sum += d * (10 - i)
	}
	return sum%11 == 0
}

func isbn13Checksum(digits []int) bool {
	sum := 0
	for i, d := range digits {
		if d == 10 {
			return false
		}
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return sum%10 == 0
}

// IsValidSlNic validates an old-format Sri Lankan NIC: 9 digits and V or X.
func IsValidSlNic(s string) bool {
	return slNicRegex.MatchString(s)
}

// IsValidSlNewNic validates a new-format Sri Lankan NIC of 12 digits.
func IsValidSlNewNic(s string) bool {
	return slNewNicRegex.MatchString(s)
}
