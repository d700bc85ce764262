package constvars

const (
	// RegexClockTime matches strict zero-padded 24-hour "HH:mm".
	RegexClockTime   = `^([01][0-9]|2[0-3]):[0-5][0-9]$`
	RegexObjectIDHex = `^[a-f0-9]{24}$`
)
