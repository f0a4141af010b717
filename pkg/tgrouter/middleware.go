package tgrouter

// Middleware wraps a Handler, running before and after it in the chain.
type Middleware func(Handler) Handler

func assert1(guard bool, text string) {
	if !guard {
		panic(text)
	}
}
