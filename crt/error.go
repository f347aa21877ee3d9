package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table is full and can't take more keys
type TableFull struct {
	msg string
}

// Error - Used to notify that table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// KeyExists - Custom error to inform that the key is already stored in the table
type KeyExists struct {
	msg string
}

// Error - Used to notify that the key already exists
func (E KeyExists) Error() string {
	if E.msg == "" {
		return "key already exists"
	}
	return E.msg
}

// CustomHashFailure - Custom error to inform that a custom hash function failed and a fallback was used
type CustomHashFailure struct {
	Cause string
}

// Error - Used to notify that a custom hash function failed
func (C CustomHashFailure) Error() string {
	if C.Cause == "" {
		return "custom hash function failed, division method used instead"
	}
	return "custom hash function failed (" + C.Cause + "), division method used instead"
}

// Is - Matches any CustomHashFailure regardless of cause
func (C CustomHashFailure) Is(target error) bool {
	_, ok := target.(CustomHashFailure)
	return ok
}
