package cli

// Exit codes.
const (
	ExitOK       = 0
	ExitCodecErr = 1 // a message failed to decode or encode
	ExitUsageErr = 2
	ExitInternal = 3
)
