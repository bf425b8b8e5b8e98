package constants

// Session storage key formats
const (
	KeySessionToken        = "%s:token"         // Format: {prefix}:token
	KeySessionGroomerData  = "%s:groomer_data"  // Format: {prefix}:groomer_data
	KeySessionRefreshToken = "%s:refresh_token" // Format: {prefix}:refresh_token
)

// DefaultSessionPrefix namespaces the session keys on a device
const DefaultSessionPrefix = "petgroomers"
