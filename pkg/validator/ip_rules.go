package validator

// IP versions accepted by IPConfig.Version.
const (
	IPAny = "*"
	IPv4  = "v4"
	IPv6  = "v6"
)

// IPConfig configures ValidateIP.
type IPConfig struct {
	Common `yaml:",inline"`

	Version       string `yaml:"version" json:"version" env:"VERSION" validate:"oneof=* v4 v6"`
	AllowPrivate  bool   `yaml:"allowPrivate" json:"allowPrivate" env:"ALLOW_PRIVATE"`
	AllowLoopback bool   `yaml:"allowLoopback" json:"allowLoopback" env:"ALLOW_LOOPBACK"`
}

func (c IPConfig) clone() IPConfig {
	c.Common = c.Common.clone()
	return c
}

// ValidateIP checks an IPv4 or uncompressed IPv6 address.
func ValidateIP(ip string, cfg IPConfig) (Result, error) {
	return Apply(cfg.options(DomainIP), ipRules(ip, cfg)...)
}

func ipRules(ip string, cfg IPConfig) []Rule {
	v4, v6 := IsIPv4(ip), IsIPv6(ip)

	return []Rule{
		{
			Key: "version",
			Check: func() bool {
				switch cfg.Version {
				case IPv4:
					return v4
				case IPv6:
					return v6
				}
				return true
			},
			Message: "Invalid IP address version. Allowed versions are IPv4 or IPv6.",
		},
		{
			Key: "format",
			Check: func() bool {
				return cfg.Version == IPv4 || cfg.Version == IPv6 || v4 || v6
			},
			Message: "Invalid IP Address.",
		},
		{
			Key:     "allowPrivate",
			Check:   func() bool { return cfg.AllowPrivate || !v4 || !IsPrivateIPv4(ip) },
			Message: "Private IP addresses are not allowed.",
		},
		{
			Key:     "allowLoopback",
			Check:   func() bool { return cfg.AllowLoopback || !IsLoopbackIP(ip) },
			Message: "Loopback IP addresses are not allowed.",
		},
	}
}
