package storage

// defines a database writing operation (put or delete)
type writeOp struct {
	Key, Value []byte
	Del        bool
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// inRange reports whether key lies in [start, limit), nil bounds being open.
func inRange(key string, start, limit []byte) bool {
	if start != nil && key < string(start) {
		return false
	}
	if limit != nil && key >= string(limit) {
		return false
	}
	return true
}
