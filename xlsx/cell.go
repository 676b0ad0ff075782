package xlsx

import "strconv"

// IndexToColumn converts a 0-indexed column number to its letter name.
// 0=A, 25=Z, 26=AA.
func IndexToColumn(index int) string {
	if index < 0 {
		return ""
	}

	// Letters come out least significant first
	var letters []byte
	for index >= 0 {
		letters = append(letters, byte('A'+index%26))
		index = index/26 - 1
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

// CellRef builds an A1-style reference from 0-indexed column and row.
func CellRef(col, row int) string {
	return IndexToColumn(col) + strconv.Itoa(row+1)
}
