// Package content holds the page copy for the Essenza marketing site.
//
// Everything here is literal data: the sections are fixed at startup and the
// templates render them as-is. Testimonials may be replaced by rows from the
// database at boot, but the sequence never changes while the server runs.
package content

import "github.com/essenza-parfums/web/internal/domain"

type Page struct {
	Brand        string
	Tagline      string
	Hero         Hero
	Products     []Product
	Features     []Feature
	Testimonials []domain.Testimonial
	Newsletter   Newsletter
	Footer       Footer
}

type Hero struct {
	Headline string
	Subline  string
	CTALabel string
	CTAHref  string
}

type Product struct {
	Name  string
	Notes string
	Price string
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type Newsletter struct {
	Title       string
	Blurb       string
	Placeholder string
	Button      string
}

type Footer struct {
	Groups  []LinkGroup
	Socials []string
}

type LinkGroup struct {
	Title string
	Links []string
}

// Default returns the built-in page copy. Used directly when no testimonials
// are stored in the database.
func Default() Page {
	return Page{
		Brand:   "Essenza",
		Tagline: "Fragrance, distilled.",
		Hero: Hero{
			Headline: "Find the scent that remembers you",
			Subline:  "Small-batch perfumes composed from natural essences, bottled in Grasse and delivered to your door.",
			CTALabel: "Explore the collection",
			CTAHref:  "#collection",
		},
		Products: []Product{
			{Name: "Nuit d'Ambre", Notes: "amber, vanilla, cedarwood", Price: "€120"},
			{Name: "Jardin Blanc", Notes: "jasmine, neroli, white musk", Price: "€95"},
			{Name: "Vetiver Sauvage", Notes: "vetiver, bergamot, smoke", Price: "€110"},
			{Name: "Aube Marine", Notes: "sea salt, fig leaf, driftwood", Price: "€85"},
		},
		Features: []Feature{
			{Icon: "leaf", Title: "Natural essences", Description: "Every composition starts from sustainably sourced absolutes and essential oils."},
			{Icon: "truck", Title: "Free shipping", Description: "Complimentary tracked delivery on all orders within the EU."},
			{Icon: "rabbit", Title: "Cruelty free", Description: "We never test on animals, and neither do our suppliers."},
			{Icon: "gift", Title: "Gift wrapping", Description: "Hand-wrapped in linen paper with a wax seal, on request."},
		},
		Testimonials: []domain.Testimonial{
			{Quote: "Nuit d'Ambre is the first perfume strangers stop me on the street to ask about.", Author: "Claire M.", Origin: "Lyon"},
			{Quote: "The samples arrived with handwritten notes on each blend. You can tell people care here.", Author: "Jonas K.", Origin: "Hamburg"},
			{Quote: "I have worn Vetiver Sauvage every day for a year and I am still not tired of it.", Author: "Sofia R.", Origin: "Porto"},
		},
		Newsletter: Newsletter{
			Title:       "From the atelier",
			Blurb:       "One letter a month: new blends, restocks, and notes from the perfumers. No noise.",
			Placeholder: "your@email.com",
			Button:      "Subscribe",
		},
		Footer: Footer{
			Groups: []LinkGroup{
				{Title: "Shop", Links: []string{"Collection", "Discovery sets", "Gift cards"}},
				{Title: "House", Links: []string{"Our story", "The atelier", "Journal"}},
				{Title: "Help", Links: []string{"Shipping", "Returns", "Contact"}},
			},
			Socials: []string{"Instagram", "Pinterest", "Newsletter"},
		},
	}
}
