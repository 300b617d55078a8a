package utils

// Mod - Returns a modulo b as a value between 0 and b - 1, also for negative a.
// b must be a positive value.
func Mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}

	return m
}

// RoundUp2 - Returns the nearest exponent of 2 that is equal to or higher than a
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	a--
	a |= a >> 1
	a |= a >> 2
	a |= a >> 4
	a |= a >> 8
	a |= a >> 16
	a |= a >> 32
	a++

	return a
}

// IsPowerOf2 - Returns true if a is an exponent of 2
func IsPowerOf2(a int64) bool {
	return a > 0 && a&(a-1) == 0
}

// IsPrime - Returns true if a is a prime number
func IsPrime(a int64) bool {
	if a == 2 || a == 3 {
		return true
	}

	if a <= 1 || a%2 == 0 || a%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= a; i += 6 {
		if a%i == 0 || a%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the nearest prime number that is equal to or higher than a
func NextPrime(a int64) int64 {
	for !IsPrime(a) {
		a++
	}

	return a
}
