package casefold_test

import (
	"fmt"

	"github.com/coregx/casefold"
)

func ExampleFind() {
	start, length := casefold.Find([]byte("Die STRASSE ist lang"), []byte("straße"))
	fmt.Println(start, length)
	// Output: 4 7
}

func ExampleFind_expansion() {
	// The matched byte length follows the haystack, not the needle: the
	// single codepoint ß covers the needle's "ss".
	start, length := casefold.Find([]byte("groß"), []byte("GROSS"))
	fmt.Println(start, length)
	// Output: 0 5
}

func ExampleCompile() {
	s := casefold.Compile([]byte("мир"))
	for _, doc := range []string{"ПРИВЕТ, МИР!", "миру мир", "peace"} {
		fmt.Println(s.Contains([]byte(doc)))
	}
	// Output:
	// true
	// true
	// false
}

func ExampleSearcher_FindAll() {
	s := casefold.Compile([]byte("ab"))
	for _, m := range s.FindAll([]byte("ab AB aB"), -1) {
		fmt.Println(m.Start, m.Len)
	}
	// Output:
	// 0 2
	// 3 2
	// 6 2
}

func ExampleEqualFold() {
	fmt.Println(casefold.EqualFold([]byte("Weiß"), []byte("WEISS")))
	fmt.Println(casefold.EqualFold([]byte("weis"), []byte("weiss")))
	// Output:
	// true
	// false
}

func ExampleFold() {
	fmt.Printf("%s\n", casefold.Fold([]byte("Straße")))
	// Output: strasse
}

func ExampleCompileMulti() {
	m, err := casefold.CompileMulti([][]byte{
		[]byte("error"),
		[]byte("ошибка"),
	})
	if err != nil {
		panic(err)
	}
	hit, ok := m.Find([]byte("log: ОШИБКА 42"))
	fmt.Println(ok, hit.Start, hit.Pattern)
	// Output: true 5 1
}
