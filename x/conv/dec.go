package conv

// Utoa writes n in decimal at the end of buf and returns the written tail.
// 20 bytes hold any uint64. A short buffer keeps the low digits only.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf
	}
	for {
		i--
		buf[i] = '0' + byte(n%10)
		n /= 10
		if n == 0 || i == 0 {
			return buf[i:]
		}
	}
}

// Itoa is Utoa with a leading '-' for negative n. MinInt64 is handled by
// negating in unsigned space.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	s := Utoa(buf, -uint64(n))
	i := len(buf) - len(s)
	if i == 0 {
		return s
	}
	buf[i-1] = '-'
	return buf[i-1:]
}
