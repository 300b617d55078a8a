package crt

// OpenAddressing - Collision Resolution Technique where every slot holds at most one entry and collisions are
// resolved by probing other slots in the same fixed size array. The probe sequence is given by the hash function.
const OpenAddressing int = 0

// SeparateChaining - Collision Resolution Technique where every slot (bucket) holds a list of entries
const SeparateChaining int = 1

// Name - Returns a readable name of the given collision resolution technique
func Name(technique int) string {
	switch technique {
	case OpenAddressing:
		return "OpenAddressing"
	case SeparateChaining:
		return "SeparateChaining"
	default:
		return "Unknown"
	}
}
