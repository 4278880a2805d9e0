package analysis

// Sample returns the builtin analysis snapshot used when an eval config does
// not reference an analysis file. It mirrors a typical storefront search page.
func Sample() *UIAnalysis {
	return &UIAnalysis{
		URL:   "https://demo.example.com/",
		Title: "Example Store",
		Elements: []Element{
			{Tag: "input", ID: "search-input", Placeholder: "Search for products...", InputType: "text"},
			{Tag: "button", ID: "search-button", Text: "Search"},
			{Tag: "a", Text: "Products", Href: "/products"},
			{Tag: "a", Text: "Cart", Href: "/cart"},
			{Tag: "button", ID: "login-button", Text: "Log in"},
			{Tag: "input", ID: "newsletter-email", Placeholder: "Your email address", InputType: "email"},
			{Tag: "button", ID: "newsletter-subscribe", Text: "Subscribe"},
		},
	}
}
