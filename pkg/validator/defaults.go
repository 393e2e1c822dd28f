package validator

import "fmt"

// DefaultNameConfig returns the builtin name options. A Validator starts
// from the Default*Config values of every domain.
func DefaultNameConfig() NameConfig {
	return NameConfig{
		Common:              defaultCommon(),
		FirstLast:           true,
		NoSpChars:           true,
		MinLen:              6,
		MaxLen:              99,
		MinLenPerWord:       4,
		MaxLenPerWord:       30,
		ProperCapitalized:   true,
		NoLeadingSpaces:     true,
		NoTrailingSpaces:    true,
		NoConsecutiveSpaces: true,
	}
}

func DefaultEmailConfig() EmailConfig {
	return EmailConfig{
		Common:            defaultCommon(),
		NoSpChars:         true,
		MinLen:            6,
		MaxLen:            254,
		AllowedDomains:    []string{"*"},
		CustomDisposables: []string{},
		AllowDisposables:  true,
		NoLeading:         true,
		NoTrailing:        true,
	}
}

func DefaultPhoneConfig() PhoneConfig {
	return PhoneConfig{
		Common:              defaultCommon(),
		MinLen:              10,
		MaxLen:              15,
		AllowedCountryCodes: []string{"*"},
		RequireCountryCode:  true,
	}
}

func DefaultAddressConfig() AddressConfig {
	return AddressConfig{
		Common:               defaultCommon(),
		MinLen:               5,
		MaxLen:               255,
		AllowedSpChars:       CharList("#", ",", "."),
		ProperCapitalization: true,
		NoConsecutiveSpaces:  true,
	}
}

func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		Common:              defaultCommon(),
		MinLen:              8,
		MaxLen:              99,
		RequireSpChars:      CharFlag(false),
		RequireUpper:        true,
		RequireLower:        true,
		NoConsecutiveSpaces: true,
	}
}

func DefaultIPConfig() IPConfig {
	return IPConfig{
		Common:  defaultCommon(),
		Version: IPAny,
	}
}

func DefaultUsernameConfig() UsernameConfig {
	return UsernameConfig{
		Common:            defaultCommon(),
		MinLen:            3,
		MaxLen:            30,
		AllowNumbers:      true,
		AllowUnderscores:  true,
		AllowDashes:       true,
		AllowSpecialChars: CharFlag(false),
		AllowUppercase:    true,
	}
}

func DefaultDateConfig() DateConfig {
	return DateConfig{
		Common:           defaultCommon(),
		Format:           LayoutYMD,
		AllowFutureDates: true,
		AllowPastDates:   true,
	}
}

func DefaultCardConfig() CardConfig {
	return CardConfig{Common: defaultCommon()}
}

// domainDefaults is the full set of per-domain configuration held by a
// Validator. Field prefixes map environment variables to domains.
type domainDefaults struct {
	Name     NameConfig     `envPrefix:"NAME_"`
	Email    EmailConfig    `envPrefix:"EMAIL_"`
	Phone    PhoneConfig    `envPrefix:"PHONE_"`
	Address  AddressConfig  `envPrefix:"ADDRESS_"`
	Password PasswordConfig `envPrefix:"PASSWORD_"`
	IP       IPConfig       `envPrefix:"IP_"`
	Username UsernameConfig `envPrefix:"USERNAME_"`
	Date     DateConfig     `envPrefix:"DATE_"`
	Card     CardConfig     `envPrefix:"CARD_"`
}

func builtinDefaults() domainDefaults {
	return domainDefaults{
		Name:     DefaultNameConfig(),
		Email:    DefaultEmailConfig(),
		Phone:    DefaultPhoneConfig(),
		Address:  DefaultAddressConfig(),
		Password: DefaultPasswordConfig(),
		IP:       DefaultIPConfig(),
		Username: DefaultUsernameConfig(),
		Date:     DefaultDateConfig(),
		Card:     DefaultCardConfig(),
	}
}

// clone returns a deep copy so staged changes never alias live defaults.
func (d domainDefaults) clone() domainDefaults {
	return domainDefaults{
		Name:     d.Name.clone(),
		Email:    d.Email.clone(),
		Phone:    d.Phone.clone(),
		Address:  d.Address.clone(),
		Password: d.Password.clone(),
		IP:       d.IP.clone(),
		Username: d.Username.clone(),
		Date:     d.Date.clone(),
		Card:     d.Card.clone(),
	}
}

// lookup returns the configuration of domain d and its shared options.
func (d *domainDefaults) lookup(domain Domain) (any, *Common, error) {
	switch domain {
	case DomainName:
		return &d.Name, &d.Name.Common, nil
	case DomainEmail:
		return &d.Email, &d.Email.Common, nil
	case DomainPhone:
		return &d.Phone, &d.Phone.Common, nil
	case DomainAddress:
		return &d.Address, &d.Address.Common, nil
	case DomainPassword:
		return &d.Password, &d.Password.Common, nil
	case DomainIP:
		return &d.IP, &d.IP.Common, nil
	case DomainUsername:
		return &d.Username, &d.Username.Common, nil
	case DomainDate:
		return &d.Date, &d.Date.Common, nil
	case DomainCard:
		return &d.Card, &d.Card.Common, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
}
