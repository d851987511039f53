package validator_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ruleCase struct {
	name    string
	fn      func(string) bool
	valid   []string
	invalid []string
}

func TestRules(t *testing.T) {
	cases := []ruleCase{
		{
			name:    "email",
			fn:      validator.IsValidEmail,
			valid:   []string{"a@b.co", "john.doe@example.com", "x_y+z@mail.example.org", "o'neil@site.museum"},
			invalid: []string{"a@@b.co", "plainaddress", "a@b.c", "a@b.abcdefg", "a.@b.co", "a@b", "@b.co", "a b@c.co"},
		},
		{
			name:    "phone",
			fn:      validator.IsValidPhone,
			valid:   []string{"01712345678", "+8801712345678", "8801912345678", "01312345678"},
			invalid: []string{"02712345678", "01212345678", "0171234567", "017123456789", "+01712345678", "88 01712345678"},
		},
		{
			name:    "slPhone",
			fn:      validator.IsValidSlPhone,
			valid:   []string{"0712345678", "0781234567", "0701234567"},
			invalid: []string{"0791234567", "071234567", "07123456789", "+94712345678", "0612345678"},
		},
		{
			name:    "name",
			fn:      validator.IsValidName,
			valid:   []string{"John", "John Doe", " ", "Mary\tAnn", "Ann\vLee"},
			invalid: []string{"John3", "O'Neil", "Jean-Luc", "Zoë"},
		},
		{
			name:    "text",
			fn:      validator.IsValidText,
			valid:   []string{"hello world"},
			invalid: []string{"hello, world"},
		},
		{
			name:    "address",
			fn:      validator.IsValidAddress,
			valid:   []string{"12 Main Street, Colombo", "221B Baker Street"},
			invalid: []string{"12 Main St.", "Flat #4", "Road/Lane"},
		},
		{
			name:    "dob",
			fn:      validator.IsValidDob,
			valid:   []string{"2023-07-15", "1990/01/31", "2000.12.01", "1999 05 05", "2023-07/15"},
			invalid: []string{"1899-01-01", "2100-01-01", "2023-13-01", "2023-00-10", "2023-01-32", "23-01-01", "2023-1-1", "2023_01_01"},
		},
		{
			name:    "date",
			fn:      validator.IsValidDate,
			valid:   []string{"2023-07-15", "2023-02-31"},
			invalid: []string{"1899-01-01", "2023-13-01", "2023-07-15T00:00"},
		},
		{
			name:    "gender",
			fn:      validator.IsValidGender,
			valid:   []string{"male", "female"},
			invalid: []string{"Male", "FEMALE", "other", "males", " male"},
		},
		{
			name:    "password",
			fn:      validator.IsValidPassword,
			valid:   []string{"Abcdef1!", "P@ssw0rdLong", "aaaaaaA1$"},
			invalid: []string{"abcdefgh", "Ab1!", "ABCDEFG1!", "abcdefg1!", "Abcdefgh!", "Abcdefg12", "Abcdef1!#", "Abcdef1! ", "Abcdef1!\n", "Abcdef١!"},
		},
		{
			name:    "id",
			fn:      validator.IsValidID,
			valid:   []string{"0", "42", "0012345"},
			invalid: []string{"-1", "1.0", "12a", " 1", "١٢"},
		},
		{
			name:    "number",
			fn:      validator.IsValidNumber,
			valid:   []string{"123"},
			invalid: []string{"+123"},
		},
		{
			name:    "integer",
			fn:      validator.IsValidInteger,
			valid:   []string{"987654321"},
			invalid: []string{"-5", "1e3"},
		},
		{
			name:    "time",
			fn:      validator.IsValidTime,
			valid:   []string{"00:00", "09:30", "23:59", "19:05"},
			invalid: []string{"24:00", "12:60", "9:30", "12:5", "12:30:00", "1230"},
		},
		{
			name:    "url",
			fn:      validator.IsValidURL,
			valid:   []string{"http://example.com", "https://example.com/path?q=1&r=2", "ftp://files.example.com/a.txt", "file:///etc/hosts", "https://example.com/#top"},
			invalid: []string{"http://example.com/", "https://", "mailto:a@b.co", "gopher://example.com", "http://exa mple.com", "https://example.com/?"},
		},
		{
			name:    "code",
			fn:      validator.IsValidCode,
			valid:   []string{"ABC123", "x", "007"},
			invalid: []string{"ABC-123", "AB C", "code_1"},
		},
		{
			name:    "amount",
			fn:      validator.IsValidAmount,
			valid:   []string{"0", "10", "10.5", "10.55"},
			invalid: []string{"10.", ".5", "10.555", "-10", "1,000"},
		},
		{
			name:    "percentage",
			fn:      validator.IsValidPercentage,
			valid:   []string{"99.99", "150.5"},
			invalid: []string{"50%"},
		},
		{
			name:    "decimal",
			fn:      validator.IsValidDecimal,
			valid:   []string{"3.14"},
			invalid: []string{"3.141", "3,14"},
		},
		{
			name:    "zipCode",
			fn:      validator.IsValidZipCode,
			valid:   []string{"12345", "12345-6789"},
			invalid: []string{"1234", "123456", "12345-678", "12345 6789", "ABCDE"},
		},
		{
			name:    "ssn",
			fn:      validator.IsValidSSN,
			valid:   []string{"123456789", "001010001", "899990009"},
			invalid: []string{"666123456", "000123456", "900123456", "999999999", "123004567", "123450000", "123-45-6789", "12345678", "1234567890"},
		},
		{
			name: "creditCard",
			fn:   validator.IsValidCreditCard,
			valid: []string{
				"4111111111111111", // Visa 16
				"4222222222222",    // Visa 13
				"5555555555554444", // MasterCard
				"2221000000000009", // MasterCard 2-series
				"6011111111111117", // Discover
				"378282246310005",  // Amex
				"30569309025904",   // Diners
				"3530111333300000", // JCB
				"213100000000000",  // JCB 2131
			},
			invalid: []string{
				"601111111111111",     // Discover with 15 digits
				"41111111111111",      // Visa with 14 digits
				"4111 1111 1111 1111", // separators
				"4111-1111-1111-1111",
				"1234567890123456",
				"37828224631000",
			},
		},
		{
			name:    "iban",
			fn:      validator.IsValidIBAN,
			valid:   []string{"GB82WEST12345698765432", "DE89370400440532013000", "NO9386011117947", "MT84MALT011000012345MTLCAST001S"},
			invalid: []string{"gb82WEST12345698765432", "GB82 WEST 1234 5698 7654 32", "GB8WEST12345698765432", "MT84MALT011000012345MTLCAST001SX", "NO938601111794"},
		},
		{
			name:    "vat",
			fn:      validator.IsValidVAT,
			valid:   []string{"GB123456789", "DE999999999"},
			invalid: []string{"gb123456789", "GB12345678", "GB1234567890", "G1123456789"},
		},
		{
			name:    "slNic",
			fn:      validator.IsValidSlNic,
			valid:   []string{"853400937V", "853400937v", "853400937X", "853400937x"},
			invalid: []string{"853400937", "853400937A", "85340093V", "V853400937"},
		},
		{
			name:    "slNewNic",
			fn:      validator.IsValidSlNewNic,
			valid:   []string{"198534000937"},
			invalid: []string{"19853400093", "1985340009370", "19853400093V"},
		},
		{
			name:    "isbnChecksum",
			fn:      validator.IsValidISBNChecksum,
			valid:   []string{"0306406152", "0-306-40615-2", "080442957X", "9780306406157", "978-0-306-40615-7", "ISBN 978-0-306-40615-7", "ISBN-13: 978-0-306-40615-7", "ISBN-10: 0-306-40615-2", "978●0●306●40615●7", "978_0_306_40615_7"},
			invalid: []string{"0306406153", "9780306406158", "X306406152", "978030640615X", "978-0-306-40615", "ISBN", "978/0/306/40615/7"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, in := range tc.valid {
				assert.True(t, tc.fn(in), "expected %q to be valid", in)
			}
			for _, in := range tc.invalid {
				assert.False(t, tc.fn(in), "expected %q to be invalid", in)
			}
		})
	}
}

func TestISBN_LegacyPatternMatchesNothing(t *testing.T) {
	// Given: well-known ISBNs in every layout the legacy pattern was meant for
	inputs := []string{
		"0306406152",
		"9780306406157",
		"0-306-40615-2",
		"978-0-306-40615-7",
		"ISBN 978-0-306-40615-7",
		"ISBN-13: 978-0-306-40615-7",
		"ISBN-10: 0-306-40615-2",
		"9-7-8-0-3-0-6-4-0-6-1-5-7",
		"9_7_8_0_3_0_6_4_0_6_1_5_7",
		"7",
	}

	for _, in := range inputs {
		// Then: the legacy rule rejects them all, the checksum rule does not
		assert.False(t, validator.IsValidISBN(in), "legacy isbn rule unexpectedly matched %q", in)
	}
	assert.True(t, validator.IsValidISBNChecksum("978-0-306-40615-7"))
}

func TestRules_EmptyStringIsInvalid(t *testing.T) {
	for _, r := range validator.Rules() {
		assert.False(t, r.Match(""), "rule %s matched the empty string", r.Name)
	}
}

func TestRules_FullStringMatch(t *testing.T) {
	// Given: valid inputs per rule
	wrapped := map[string]string{
		validator.RuleEmail:      "a@b.co",
		validator.RulePhone:      "01712345678",
		validator.RuleSlPhone:    "0712345678",
		validator.RuleDate:       "2023-07-15",
		validator.RuleTime:       "12:30",
		validator.RulePassword:   "Abcdef1!",
		validator.RuleID:         "123",
		validator.RuleAmount:     "10.50",
		validator.RuleZipCode:    "12345",
		validator.RuleSSN:        "123456789",
		validator.RuleCreditCard: "4111111111111111",
		validator.RuleVAT:        "GB123456789",
		validator.RuleSlNic:      "853400937V",
		validator.RuleSlNewNic:   "198534000937",
		validator.RuleGender:     "male",
	}

	for name, in := range wrapped {
		rule, ok := validator.Lookup(name)
		require.True(t, ok, name)

		// Then: the bare value matches, but no prefix, suffix or trailing newline is tolerated
		assert.True(t, rule.Match(in), "%s: %q", name, in)
		assert.False(t, rule.Match(" "+in), "%s: prefix accepted", name)
		assert.False(t, rule.Match(in+" "), "%s: suffix accepted", name)
		assert.False(t, rule.Match(in+"\n"), "%s: trailing newline accepted", name)
	}
}

func TestRules_Idempotent(t *testing.T) {
	inputs := []string{"", "a@b.co", "Abcdef1!", "123456789", "2023-07-15", "not valid at all"}

	var wg sync.WaitGroup
	for _, r := range validator.Rules() {
		for _, in := range inputs {
			want := r.Match(in)
			wg.Add(1)
			go func(r validator.Rule, in string, want bool) {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					assert.Equal(t, want, r.Match(in), "%s(%q)", r.Name, in)
				}
			}(r, in, want)
		}
	}
	wg.Wait()
}

func TestRules_LongInputDoesNotHang(t *testing.T) {
	// Given: long inputs that force the backtracking rules to scan
	long := strings.Repeat("a", 100_000)

	// Then: every rule answers false
	for _, r := range validator.Rules() {
		assert.False(t, r.Match(long+"\x00"), r.Name)
	}
	assert.False(t, validator.IsValidPassword(strings.Repeat("Aa1", 50_000)))
	assert.True(t, validator.IsValidPassword(strings.Repeat("Aa1!", 1_000)))
}

func TestPassword_LargeValidInputUnderConcurrency(t *testing.T) {
	// Given: a valid password of one million characters
	in := strings.Repeat("Aa1!", 250_000)
	require.True(t, validator.IsValidPassword(in))

	// When: many goroutines check it at once
	const workers = 32
	results := make([]bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = validator.IsValidPassword(in)
		}(i)
	}
	wg.Wait()

	// Then: every call agrees with the serial answer
	for i, ok := range results {
		assert.True(t, ok, "worker %d", i)
	}
}
