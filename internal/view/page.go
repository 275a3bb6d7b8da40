package view

import (
	"artgie-web/internal/carousel"
	"artgie-web/internal/category"
	"artgie-web/internal/product"
	"artgie-web/internal/theme"
)

const SiteName = "Artgie"

// Layout is the data shared by every page: the navbar, the footer and the
// state carried by every form on the page.
type Layout struct {
	Title    string
	Path     string
	Theme    theme.Theme
	Navbar   NavbarState
	NavItems []NavItem
	Hidden   []HiddenField
	Footer   Footer
}

type Social struct {
	Name string
	Icon string
	Href string
}

type Footer struct {
	Company string
	Blurb   string
	Phone   string
	Email   string
	Address string
	Socials []Social
	Year    int
}

func NewFooter(year int) Footer {
	return Footer{
		Company: SiteName,
		Blurb:   "Custom signs in corroplast and metal. Single or double-sided options available in multiple sizes.",
		Phone:   "(555) 123-4567",
		Email:   "info@artgie.com",
		Address: "123 Main Street, City, ST 12345",
		Socials: []Social{
			{Name: "Facebook", Icon: "facebook", Href: "#"},
			{Name: "Instagram", Icon: "instagram", Href: "#"},
			{Name: "Twitter", Icon: "twitter", Href: "#"},
		},
		Year: year,
	}
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

var Features = []Feature{
	{Icon: "award", Title: "Premium Quality", Description: "High-grade corroplast and metal materials for long-lasting durability"},
	{Icon: "zap", Title: "Fast Production", Description: "Quick turnaround times without compromising on quality"},
	{Icon: "tag", Title: "Best Value", Description: "Competitive pricing on all custom signs - single or double-sided"},
}

type CarouselView struct {
	State    carousel.State
	Cards    []Card
	CanLeft  bool
	CanRight bool
}

type HomePage struct {
	Layout
	HeroImage string
	Carousel  CarouselView
	Features  []Feature
}

// NewHomePage marks the cards inside the viewport window as visible.
func NewHomePage(l Layout, s HomeState, layout carousel.Layout, featured []product.Product) HomePage {
	cards := MapCards(featured)
	first, last := layout.Visible(s.Carousel, len(cards))
	for i := range cards {
		cards[i].Visible = i >= first && i < last
	}

	l.Navbar = s.Navbar
	l.Hidden = s.Hidden()
	return HomePage{
		Layout:    l,
		HeroImage: "/hero.jpg",
		Carousel: CarouselView{
			State:    s.Carousel,
			Cards:    cards,
			CanLeft:  s.Carousel.CanScrollLeft(),
			CanRight: s.Carousel.CanScrollRight(),
		},
		Features: Features,
	}
}

type CategoryOption struct {
	Name    string
	Checked bool
}

type SortOption struct {
	Value    string
	Label    string
	Selected bool
}

type ProductsPage struct {
	Layout
	State         ProductsState
	Categories    []CategoryOption
	SortOptions   []SortOption
	Cards         []Card
	CountLabel    string
	ActiveFilters int
	HasFilters    bool
	Metadata      *product.FilterMetadata
}

func NewProductsPage(l Layout, s ProductsState, labels []string, result *product.ListResult, meta *product.FilterMetadata) ProductsPage {
	options := make([]CategoryOption, 0, len(labels))
	for _, c := range category.Checklist(labels) {
		options = append(options, CategoryOption{Name: c, Checked: s.Filter.HasCategory(c)})
	}

	current := s.Sort
	if current == "" {
		current = product.SortDefault
	}
	sorts := make([]SortOption, 0, len(product.SortModes()))
	for _, m := range product.SortModes() {
		sorts = append(sorts, SortOption{Value: string(m), Label: m.Label(), Selected: m == current})
	}

	l.Navbar = s.Navbar
	l.Hidden = s.Hidden()
	return ProductsPage{
		Layout:        l,
		State:         s,
		Categories:    options,
		SortOptions:   sorts,
		Cards:         MapCards(result.Items),
		CountLabel:    CountLabel(result.TotalCount),
		ActiveFilters: s.Filter.ActiveCount(),
		HasFilters:    !s.Filter.IsEmpty(),
		Metadata:      meta,
	}
}

type NotFoundPage struct {
	Layout
}
