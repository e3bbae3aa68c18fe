package engine

// CompareFold compares two strings byte by byte after ASCII case folding
// and returns -1, 0 or 1. When one string is a strict prefix of the other
// the shorter one sorts first. There is no locale collation: non-ASCII
// bytes are compared raw and their ordering is unspecified.
func CompareFold(a, b string) int {

	for i := 0; i < len(a) && i < len(b); i++ {
		ca := foldByte(a[i])
		cb := foldByte(b[i])
		if ca == cb {
			continue
		}
		if ca < cb {
			return -1
		}
		return 1
	}

	switch {
	case len(a) == len(b):
		return 0
	case len(a) < len(b):
		return -1
	}
	return 1
}

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
