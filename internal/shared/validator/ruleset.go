package validator

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRule is returned by Check when no rule has the requested name.
var ErrUnknownRule = errors.New("validator: unknown rule")

// TagPrefix keeps rule tags apart from go-playground's built-in tags (email, url, isbn ...).
const TagPrefix = "rx_"

// Rule describes one named format rule.
type Rule struct {
	Name        string
	Tag         string
	Pattern     string
	Description string
	Match       func(string) bool
}

// Rule names. Duplicated patterns stay separate names so every call site keeps its own contract.
const (
	RuleEmail        = "email"
	RulePhone        = "phone"
	RuleSlPhone      = "slPhone"
	RuleName         = "name"
	RuleText         = "text"
	RuleAddress      = "address"
	RuleDob          = "dob"
	RuleDate         = "date"
	RuleGender       = "gender"
	RulePassword     = "password"
	RuleID           = "id"
	RuleNumber       = "number"
	RuleInteger      = "integer"
	RuleTime         = "time"
	RuleURL          = "url"
	RuleCode         = "code"
	RuleAmount       = "amount"
	RulePercentage   = "percentage"
	RuleDecimal      = "decimal"
	RuleZipCode      = "zipCode"
	RuleSSN          = "ssn"
	RuleCreditCard   = "creditCard"
	RuleIBAN         = "iban"
	RuleVAT          = "vat"
	RuleISBN         = "isbn"
	RuleISBNChecksum = "isbnChecksum"
	RuleSlNic        = "slNic"
	RuleSlNewNic     = "slNewNic"
)

var ruleSet = buildRuleSet(
	newRule(RuleEmail, "email", emailPattern, "email address", IsValidEmail),
	newRule(RulePhone, "phone", phonePattern, "Bangladeshi mobile number", IsValidPhone),
	newRule(RuleSlPhone, "sl_phone", slPhonePattern, "Sri Lankan mobile number", IsValidSlPhone),
	newRule(RuleName, "name", namePattern, "letters and spaces", IsValidName),
	newRule(RuleText, "text", namePattern, "letters and spaces", IsValidText),
	newRule(RuleAddress, "address", addressPattern, "letters, digits, commas and spaces", IsValidAddress),
	newRule(RuleDob, "dob", datePattern, "date of birth (YYYY-MM-DD)", IsValidDob),
	newRule(RuleDate, "date", datePattern, "date (YYYY-MM-DD)", IsValidDate),
	newRule(RuleGender, "gender", genderPattern, "male or female", IsValidGender),
	newRule(RulePassword, "password", passwordPattern, "password of 8+ characters with upper, lower, digit and @$!%*?&", IsValidPassword),
	newRule(RuleID, "id", digitsPattern, "digits", IsValidID),
	newRule(RuleNumber, "number", digitsPattern, "digits", IsValidNumber),
	newRule(RuleInteger, "integer", digitsPattern, "digits", IsValidInteger),
	newRule(RuleTime, "time", timePattern, "time (HH:MM)", IsValidTime),
	newRule(RuleURL, "url", urlPattern, "http, https, ftp or file URL", IsValidURL),
	newRule(RuleCode, "code", codePattern, "letters and digits", IsValidCode),
	newRule(RuleAmount, "amount", decimalPattern, "amount with up to 2 decimals", IsValidAmount),
	newRule(RulePercentage, "percentage", decimalPattern, "percentage with up to 2 decimals", IsValidPercentage),
	newRule(RuleDecimal, "decimal", decimalPattern, "decimal with up to 2 decimals", IsValidDecimal),
	newRule(RuleZipCode, "zip_code", zipCodePattern, "ZIP code (12345 or 12345-6789)", IsValidZipCode),
	newRule(RuleSSN, "ssn", ssnPattern, "social security number", IsValidSSN),
	newRule(RuleCreditCard, "credit_card", creditCardPattern, "credit card number", IsValidCreditCard),
	newRule(RuleIBAN, "iban", ibanPattern, "IBAN", IsValidIBAN),
	newRule(RuleVAT, "vat", vatPattern, "VAT number", IsValidVAT),
	newRule(RuleISBN, "isbn", isbnPattern, "ISBN (legacy pattern)", IsValidISBN),
	newRule(RuleISBNChecksum, "isbn_checksum", "", "ISBN-10 or ISBN-13 with check digit", IsValidISBNChecksum),
	newRule(RuleSlNic, "sl_nic", slNicPattern, "Sri Lankan NIC (old format)", IsValidSlNic),
	newRule(RuleSlNewNic, "sl_new_nic", slNewNicPattern, "Sri Lankan NIC (new format)", IsValidSlNewNic),
)

type rules struct {
	byName map[string]Rule
	byTag  map[string]Rule
	sorted []Rule
}

func newRule(name, tag, pattern, description string, match func(string) bool) Rule {
	return Rule{
		Name:        name,
		Tag:         TagPrefix + tag,
		Pattern:     pattern,
		Description: description,
		Match:       match,
	}
}

func buildRuleSet(list ...Rule) rules {
	rs := rules{
		byName: make(map[string]Rule, len(list)),
		byTag:  make(map[string]Rule, len(list)),
		sorted: make([]Rule, 0, len(list)),
	}
	for _, r := range list {
		if _, dup := rs.byName[r.Name]; dup {
			panic(fmt.Sprintf("validator: duplicate rule %q", r.Name))
		}
		rs.byName[r.Name] = r
		rs.byTag[r.Tag] = r
		rs.sorted = append(rs.sorted, r)
	}
	sort.Slice(rs.sorted, func(i, j int) bool {
		return rs.sorted[i].Name < rs.sorted[j].Name
	})
	return rs
}

// Rules returns every rule sorted by name. The slice is a copy.
func Rules() []Rule {
	out := make([]Rule, len(ruleSet.sorted))
	copy(out, ruleSet.sorted)
	return out
}

// Lookup finds a rule by its case-sensitive name.
func Lookup(name string) (Rule, bool) {
	r, ok := ruleSet.byName[name]
	return r, ok
}

// LookupTag finds a rule by its binding tag, e.g. "rx_sl_phone".
func LookupTag(tag string) (Rule, bool) {
	r, ok := ruleSet.byTag[tag]
	return r, ok
}

// Check runs the named rule against value.
func Check(name, value string) (bool, error) {
	r, ok := Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return r.Match(value), nil
}
