package validator

const (
	// Visa, MasterCard, Discover, Amex, Diners Club, JCB.
	creditCardPattern = `^(?:4[0-9]{12}(?:[0-9]{3})?|[25][1-7][0-9]{14}|6(?:011|5[0-9][0-9])[0-9]{12}|3[47][0-9]{13}|3(?:0[0-5]|[68][0-9])[0-9]{11}|(?:2131|1800|35\d{3})\d{11})$`
	ibanPattern       = `^[A-Z]{2}[0-9]{2}[a-zA-Z0-9]{4}[0-9]{7}([a-zA-Z0-9]?){0,16}$`
	vatPattern        = `^[A-Z]{2}[0-9]{9}$`
)

var (
	creditCardRegex = linear(creditCardPattern)
	ibanRegex       = linear(ibanPattern)
	vatRegex        = linear(vatPattern)
)

// IsValidCreditCard checks brand prefix and length only. No Luhn checksum, no separators.
func IsValidCreditCard(s string) bool {
	return creditCardRegex.MatchString(s)
}

// IsValidIBAN checks the IBAN shape (15 to 31 characters). The mod-97 checksum is not verified.
func IsValidIBAN(s string) bool {
	return ibanRegex.MatchString(s)
}

// IsValidVAT accepts a two letter country prefix followed by nine digits.
func IsValidVAT(s string) bool {
	return vatRegex.MatchString(s)
}
