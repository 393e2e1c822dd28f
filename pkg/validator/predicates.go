package validator

import (
	"net/netip"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	digitRegex             = regexp.MustCompile(`\d`)
	uppercaseRegex         = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex         = regexp.MustCompile(`[a-z]`)
	specialCharRegex       = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	consecutiveSpacesRegex = regexp.MustCompile(`\s{2,}`)
	whitespaceRegex        = regexp.MustCompile(`\s+`)

	ipv4Regex = regexp.MustCompile(`^(([0-9]{1,3}\.){3}[0-9]{1,3})$`)
	// Compressed "::" notation is not recognized.
	ipv6Regex = regexp.MustCompile(`^([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`)
)

// LuhnValid strips every non-digit from number and reports whether the
// remaining 13 to 19 digits pass the Luhn checksum.
func LuhnValid(number string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false

	// Process digits from right to left
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsIPv4 reports whether ip is four dot separated decimal octets in 0-255.
func IsIPv4(ip string) bool {
	if !ipv4Regex.MatchString(ip) {
		return false
	}
	for _, octet := range strings.Split(ip, ".") {
		n, err := strconv.Atoi(octet)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// IsIPv6 reports whether ip is eight colon separated groups of one to four
// hex digits.
func IsIPv6(ip string) bool {
	return ipv6Regex.MatchString(ip)
}

// IsPrivateIPv4 reports whether an IPv4 address lies in 10.0.0.0/8,
// 172.16.0.0/12 or 192.168.0.0/16. The input must already satisfy IsIPv4.
func IsPrivateIPv4(ip string) bool {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return false
	}
	first, _ := strconv.Atoi(parts[0])
	second, _ := strconv.Atoi(parts[1])

	return first == 10 ||
		(first == 172 && second >= 16 && second <= 31) ||
		(first == 192 && second == 168)
}

// IsLoopbackIP recognizes 127.* IPv4 addresses, the literal "::1" and the
// uncompressed form of the IPv6 loopback address.
func IsLoopbackIP(ip string) bool {
	if IsIPv4(ip) {
		return strings.HasPrefix(ip, "127.")
	}
	if ip == "::1" {
		return true
	}
	if !IsIPv6(ip) {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	return err == nil && addr.IsLoopback()
}

// IsProperlyCapitalized reports whether the first character of word is
// upper case and the rest lower case. Characters without case pass.
// An empty word passes.
func IsProperlyCapitalized(word string) bool {
	if word == "" {
		return true
	}
	first, size := utf8.DecodeRuneInString(word)
	head, rest := string(first), word[size:]

	// Casers keep state and are not safe for concurrent use.
	return cases.Upper(language.Und).String(head) == head &&
		cases.Lower(language.Und).String(rest) == rest
}

// isLower reports whether s is unchanged by lower casing.
func isLower(s string) bool {
	return cases.Lower(language.Und).String(s) == s
}
