package match_test

import (
	"fmt"

	"github.com/jonwraymond/supervisorlookup/match"
)

func ExamplePlainMatch() {
	fmt.Println(match.PlainMatch("peking", "Peking University"))
	fmt.Println(match.PlainMatch("", "Peking University"))
	// Output:
	// true
	// false
}

func ExampleMatcher_IdentityMatch() {
	m := match.NewMatcher(nil)

	fmt.Println(m.IdentityMatch("何凯明", "Kaiming He"))
	fmt.Println(m.IdentityMatch("Kaiming He", "何凯明"))
	// Output:
	// true
	// false
}
