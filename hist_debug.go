//go:build hist_debug

package hist

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
