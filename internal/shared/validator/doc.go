// Package validator holds the format rule set: one pure, full-string match predicate per
// input domain (email, phone, date, credit card, IBAN, SSN ...), plus the catalogue that
// exposes them by name and as go-playground binding tags.
//
// Every IsValid* function answers yes or no and nothing else. Nothing is normalized or
// trimmed, the empty string never matches, and no function keeps state, so all of them are
// safe for concurrent use.
//
// Phone and NIC rules are country specific (phone is Bangladesh, slPhone/slNic/slNewNic are
// Sri Lanka) and each country has its own rule.
package validator
