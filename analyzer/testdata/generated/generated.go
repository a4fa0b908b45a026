// Code generated by hand. DO NOT EDIT.

package generated

func generated(s []int) {
	for i := 0; i < len(s); i++ {
		println(s[i])
	}
}
