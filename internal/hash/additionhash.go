package hash

// SimpleAdditionHash - The default hash function. The hash code is the sum of the byte values of the (UTF-8) key,
// and collisions are handled by adding the attempt number to that sum, which after compression with modulo capacity
// becomes Linear Probing.
type SimpleAdditionHash struct{}

// NewSimpleAdditionHash - Returns a pointer to a new SimpleAdditionHash instance
func NewSimpleAdditionHash() *SimpleAdditionHash {
	return &SimpleAdditionHash{}
}

// HashKey - Returns the sum of the bytes in key
func (S *SimpleAdditionHash) HashKey(key string) int64 {
	var sum int64
	for i := 0; i < len(key); i++ {
		sum += int64(key[i])
	}

	return sum
}

// HandleCollision - Implements Linear Probing
func (S *SimpleAdditionHash) HandleCollision(key string, attempt int64) int64 {
	return S.HashKey(key) + attempt
}
