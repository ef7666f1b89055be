//go:build rippledebug

package water

import "fmt"

func checkIndex(n, i, j int) {
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(fmt.Sprintf("water: cell (%d, %d) outside %dx%d field", i, j, n, n))
	}
}
