package validator

// Patterns for people and places. Phone rules are country specific and stay separate rules.
const (
	emailPattern   = "^[\\w!#$%&'*+/=?`{|}~^-]+(?:\\.[\\w!#$%&'*+/=?`{|}~^-]+)*@(?:[a-zA-Z0-9-]+\\.)+[a-zA-Z]{2,6}$"
	phonePattern   = `^(?:\+88|88)?(01[3-9]\d{8})$`
	slPhonePattern = `^07[012345678]{1}[0-9]{7}$`
	// \s in RE2 has no vertical tab, so it is listed explicitly.
	namePattern    = `^[a-zA-Z\s\v]+$`
	addressPattern = `^[a-zA-Z0-9,\s\v]+$`
	genderPattern  = `^(male|female)$`
	urlPattern     = `^(https?|ftp|file)://[-a-zA-Z0-9+&@#/%?=~_|!:,.;]*[-a-zA-Z0-9+&@#%=~_|]$`
)

var (
	emailRegex   = linear(emailPattern)
	phoneRegex   = linear(phonePattern)
	slPhoneRegex = linear(slPhonePattern)
	nameRegex    = linear(namePattern)
	addressRegex = linear(addressPattern)
	genderRegex  = linear(genderPattern)
	urlRegex     = linear(urlPattern)
)

// IsValidEmail reports whether s is an email address with a 2-6 letter TLD.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone validates a Bangladeshi mobile number.
// Formats: 01712345678, 8801712345678, +8801712345678
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsValidSlPhone validates a Sri Lankan mobile number (07X followed by 7 digits, X not 9).
func IsValidSlPhone(s string) bool {
	return slPhoneRegex.MatchString(s)
}

// IsValidName accepts ASCII letters and whitespace.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// IsValidText is the free-text variant of IsValidName.
func IsValidText(s string) bool {
	return nameRegex.MatchString(s)
}

// IsValidAddress accepts ASCII letters, digits, commas and whitespace.
func IsValidAddress(s string) bool {
	return addressRegex.MatchString(s)
}

// IsValidGender accepts exactly "male" or "female".
func IsValidGender(s string) bool {
	return genderRegex.MatchString(s)
}

// IsValidURL validates an http, https, ftp or file URL that does not end with a slash.
func IsValidURL(s string) bool {
	return urlRegex.MatchString(s)
}
