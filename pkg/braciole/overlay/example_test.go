package overlay_test

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/overlay"
)

// Example demonstrates presenting an overlay and popping it with a deferred
// action. The host runs OnResult first, then invokes func() results.
func Example() {
	o := overlay.New()

	o.Present(&overlay.Route{
		Name: "context-menu",
		OnResult: func(result any) {
			fmt.Println("menu closed")
		},
	})

	fmt.Println("depth:", o.Depth())

	o.Pop(func() {
		fmt.Println("action ran")
	})

	fmt.Println("depth:", o.Depth())

	// Output:
	// depth: 1
	// menu closed
	// action ran
	// depth: 0
}

// Example_nested shows that only the topmost route resolves on Pop.
func Example_nested() {
	o := overlay.New()

	o.Present(&overlay.Route{Name: "menu"})
	o.Present(&overlay.Route{
		Name: "submenu",
		OnResult: func(result any) {
			fmt.Println("submenu closed with:", result)
		},
	})

	o.Pop("selected")

	fmt.Println("depth:", o.Depth())

	// Output:
	// submenu closed with: selected
	// depth: 1
}
