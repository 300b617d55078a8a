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

// CapacityExhausted - Custom error to inform that the hash map is full, or that the probing sequence
// reached the maximum number of collision attempts without finding an empty or matching slot
type CapacityExhausted struct {
	msg string
}

// Error - Used to notify that the hash map can't take more records
func (C CapacityExhausted) Error() string {
	if C.msg == "" {
		return "hash map is full or maximum collision attempts reached"
	}
	return C.msg
}

// SlotOutOfRange - Custom error to inform that a slot index outside the storage capacity was given
type SlotOutOfRange struct {
	msg string
}

// Error - Used to notify that a slot index is outside permitted range
func (S SlotOutOfRange) Error() string {
	if S.msg == "" {
		return "slot index outside permitted range"
	}
	return S.msg
}
